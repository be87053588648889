// file: internals/features/transport/model/vehicle_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vehicle struct {
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`

	VehicleNumber string  `json:"vehicle_number" gorm:"column:vehicle_number;type:varchar(40);not null;uniqueIndex:uq_vehicles_number"`
	VehicleType   *string `json:"vehicle_type,omitempty" gorm:"column:vehicle_type;type:varchar(40)"`
	Capacity      *int    `json:"capacity,omitempty" gorm:"column:capacity;type:int"`

	DriverName    string  `json:"driver_name" gorm:"column:driver_name;type:varchar(120);not null"`
	DriverPhone   string  `json:"driver_phone" gorm:"column:driver_phone;type:varchar(20);not null"`
	DriverLicense *string `json:"driver_license,omitempty" gorm:"column:driver_license;type:varchar(40)"`
	HelperName    *string `json:"helper_name,omitempty" gorm:"column:helper_name;type:varchar(120)"`
	HelperPhone   *string `json:"helper_phone,omitempty" gorm:"column:helper_phone;type:varchar(20)"`

	RegistrationNumber *string    `json:"registration_number,omitempty" gorm:"column:registration_number;type:varchar(40)"`
	InsuranceExpiry    *time.Time `json:"insurance_expiry,omitempty" gorm:"column:insurance_expiry"`
	FitnessExpiry      *time.Time `json:"fitness_expiry,omitempty" gorm:"column:fitness_expiry"`

	IsActive bool `json:"is_active" gorm:"column:is_active;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (Vehicle) TableName() string { return "vehicles" }

func (m *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
