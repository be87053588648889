// file: internals/features/transport/model/route_vehicle_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RouteVehicleAssignment is the time-bounded link between a vehicle and a
// route, optionally partitioned by shift (morning/evening/both).
type RouteVehicleAssignment struct {
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`

	RouteID   uuid.UUID `json:"route_id" gorm:"column:route_id;type:uuid;not null;index:idx_route_vehicle_assignments_route"`
	VehicleID uuid.UUID `json:"vehicle_id" gorm:"column:vehicle_id;type:uuid;not null;index:idx_route_vehicle_assignments_vehicle"`

	ValidFrom *time.Time `json:"valid_from,omitempty" gorm:"column:valid_from"`
	ValidTo   *time.Time `json:"valid_to,omitempty" gorm:"column:valid_to"`
	Shift     *string    `json:"shift,omitempty" gorm:"column:shift;type:varchar(20)"`

	IsActive bool `json:"is_active" gorm:"column:is_active;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`

	Route   *Route   `json:"route,omitempty" gorm:"foreignKey:RouteID"`
	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}

func (RouteVehicleAssignment) TableName() string { return "route_vehicle_assignments" }

func (m *RouteVehicleAssignment) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
