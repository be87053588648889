// file: internals/features/transport/model/route_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Route struct {
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`

	RouteName string  `json:"route_name" gorm:"column:route_name;type:varchar(120);not null;uniqueIndex:uq_routes_name"`
	RouteCode *string `json:"route_code,omitempty" gorm:"column:route_code;type:varchar(20);uniqueIndex:uq_routes_code"`

	StartPoint string `json:"start_point" gorm:"column:start_point;type:varchar(160);not null"`
	EndPoint   string `json:"end_point" gorm:"column:end_point;type:varchar(160);not null"`

	Distance          *float64 `json:"distance,omitempty" gorm:"column:distance;type:numeric(6,2)"`            // km
	EstimatedDuration *int     `json:"estimated_duration,omitempty" gorm:"column:estimated_duration;type:int"` // minutes

	IsActive bool `json:"is_active" gorm:"column:is_active;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (Route) TableName() string { return "routes" }

func (m *Route) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
