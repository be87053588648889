// file: internals/features/finance/fees/model/student_fee_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM fee status ----------------------------------------------------------
type FeeStatus string

const (
	FeePending FeeStatus = "PENDING"
	FeePaid    FeeStatus = "PAID"
	FeeOverdue FeeStatus = "OVERDUE"
	FeeWaived  FeeStatus = "WAIVED"
)

// StudentFeeAssignment is one billing line: one student, one month/year,
// derived from a fee master. At most one per (student, fee_master, month,
// year) — the generator skips silently when the line already exists.
type StudentFeeAssignment struct {
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`

	StudentID   uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;not null;index:idx_student_fee_assignments_student"`
	FeeMasterID uuid.UUID `json:"fee_master_id" gorm:"column:fee_master_id;type:uuid;not null"`

	Amount float64 `json:"amount" gorm:"column:amount;type:numeric(10,2);not null"`
	Month  int     `json:"month" gorm:"column:month;type:int;not null"`
	Year   int     `json:"year" gorm:"column:year;type:int;not null"`

	DueDate time.Time `json:"due_date" gorm:"column:due_date;not null"`
	Status  FeeStatus `json:"status" gorm:"column:status;type:varchar(12);not null;default:'PENDING'"`

	CreatedBy *uuid.UUID `json:"created_by,omitempty" gorm:"column:created_by;type:uuid"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`

	FeeMaster *FeeMaster `json:"fee_master,omitempty" gorm:"foreignKey:FeeMasterID"`
}

func (StudentFeeAssignment) TableName() string { return "student_fee_assignments" }

func (m *StudentFeeAssignment) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
