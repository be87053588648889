// file: internals/features/transport/model/route_pickup_point_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoutePickupPoint is the ordered join between a route and its stops.
type RoutePickupPoint struct {
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`

	RouteID       uuid.UUID `json:"route_id" gorm:"column:route_id;type:uuid;not null;index:idx_route_pickup_points_route"`
	PickupPointID uuid.UUID `json:"pickup_point_id" gorm:"column:pickup_point_id;type:uuid;not null"`

	SequenceOrder int     `json:"sequence_order" gorm:"column:sequence_order;type:int;not null"`
	EstimatedTime *string `json:"estimated_time,omitempty" gorm:"column:estimated_time;type:varchar(10)"` // "07:45"

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`

	Route       *Route       `json:"route,omitempty" gorm:"foreignKey:RouteID"`
	PickupPoint *PickupPoint `json:"pickup_point,omitempty" gorm:"foreignKey:PickupPointID"`
}

func (RoutePickupPoint) TableName() string { return "route_pickup_points" }

func (m *RoutePickupPoint) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
