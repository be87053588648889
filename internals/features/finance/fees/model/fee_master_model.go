// file: internals/features/finance/fees/model/fee_master_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeeMaster is the per-type, per-academic-year rate definition on the billing
// side. The transport workflow shares one row per academic year across all
// routes; its amount is whatever the first creating route wrote. Per-student
// billing amounts are snapshotted separately and stay correct.
type FeeMaster struct {
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`

	FeeTypeID    uuid.UUID `json:"fee_type_id" gorm:"column:fee_type_id;type:uuid;not null;index:idx_fee_masters_type_year,priority:1"`
	Amount       float64   `json:"amount" gorm:"column:amount;type:numeric(10,2);not null"`
	AcademicYear string    `json:"academic_year" gorm:"column:academic_year;type:varchar(20);not null;index:idx_fee_masters_type_year,priority:2"`

	IsActive bool `json:"is_active" gorm:"column:is_active;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`

	FeeType *FeeType `json:"fee_type,omitempty" gorm:"foreignKey:FeeTypeID"`
}

func (FeeMaster) TableName() string { return "fee_masters" }

func (m *FeeMaster) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
