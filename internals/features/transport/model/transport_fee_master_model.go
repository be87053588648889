// file: internals/features/transport/model/transport_fee_master_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransportFeeMaster is the monthly rate for one route (or a zone) in one
// academic year. At most one active row per (route, academic_year); enforced
// by the controller's pre-check, not a DB constraint.
type TransportFeeMaster struct {
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`

	RouteID  *uuid.UUID `json:"route_id,omitempty" gorm:"column:route_id;type:uuid;index:idx_transport_fee_masters_route_year,priority:1"`
	ZoneName *string    `json:"zone_name,omitempty" gorm:"column:zone_name;type:varchar(80)"`

	MonthlyFee  float64 `json:"monthly_fee" gorm:"column:monthly_fee;type:numeric(10,2);not null"`
	Description *string `json:"description,omitempty" gorm:"column:description;type:varchar(255)"`

	AcademicYear string `json:"academic_year" gorm:"column:academic_year;type:varchar(20);not null;index:idx_transport_fee_masters_route_year,priority:2"`

	IsActive bool `json:"is_active" gorm:"column:is_active;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`

	Route *Route `json:"route,omitempty" gorm:"foreignKey:RouteID"`
}

func (TransportFeeMaster) TableName() string { return "transport_fee_masters" }

func (m *TransportFeeMaster) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
