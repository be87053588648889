// file: internals/features/transport/model/student_transport_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM assignment status ---------------------------------------------------
type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "ACTIVE"
	AssignmentInactive  AssignmentStatus = "INACTIVE"
	AssignmentSuspended AssignmentStatus = "SUSPENDED"
)

// StudentTransportAssignment binds one student to one route and one of its
// pickup points. MonthlyFee is a snapshot of the fee master at creation time,
// not a live reference: historical assignments keep the fee in effect when
// they were created. At most one ACTIVE row per student.
type StudentTransportAssignment struct {
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`

	StudentID     uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;not null;index:idx_student_transport_assignments_student"`
	RouteID       uuid.UUID `json:"route_id" gorm:"column:route_id;type:uuid;not null;index:idx_student_transport_assignments_route"`
	PickupPointID uuid.UUID `json:"pickup_point_id" gorm:"column:pickup_point_id;type:uuid;not null"`

	ValidFrom time.Time  `json:"valid_from" gorm:"column:valid_from;not null"`
	ValidTo   *time.Time `json:"valid_to,omitempty" gorm:"column:valid_to"`
	Shift     *string    `json:"shift,omitempty" gorm:"column:shift;type:varchar(20)"`

	MonthlyFee float64          `json:"monthly_fee" gorm:"column:monthly_fee;type:numeric(10,2);not null"`
	Status     AssignmentStatus `json:"status" gorm:"column:status;type:varchar(12);not null;default:'ACTIVE';index:idx_student_transport_assignments_status"`

	CreatedBy *uuid.UUID `json:"created_by,omitempty" gorm:"column:created_by;type:uuid"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`

	Student     *Student     `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Route       *Route       `json:"route,omitempty" gorm:"foreignKey:RouteID"`
	PickupPoint *PickupPoint `json:"pickup_point,omitempty" gorm:"foreignKey:PickupPointID"`
}

func (StudentTransportAssignment) TableName() string { return "student_transport_assignments" }

func (m *StudentTransportAssignment) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
