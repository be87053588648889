// file: internals/features/transport/model/pickup_point_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PickupPoint struct {
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`

	Name    string `json:"name" gorm:"column:name;type:varchar(120);not null"`
	Address string `json:"address" gorm:"column:address;type:varchar(255);not null"`

	Latitude  *float64 `json:"latitude,omitempty" gorm:"column:latitude;type:numeric(10,7)"`
	Longitude *float64 `json:"longitude,omitempty" gorm:"column:longitude;type:numeric(10,7)"`
	Landmark  *string  `json:"landmark,omitempty" gorm:"column:landmark;type:varchar(160)"`

	IsActive bool `json:"is_active" gorm:"column:is_active;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (PickupPoint) TableName() string { return "pickup_points" }

func (m *PickupPoint) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
