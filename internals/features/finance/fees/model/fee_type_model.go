// file: internals/features/finance/fees/model/fee_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeeType is the fee catalog shared with the broader fee module. Transport
// billing rides on the canonical "Transport Fee" row (upserted by name).
type FeeType struct {
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`

	Name        string  `json:"name" gorm:"column:name;type:varchar(80);not null;uniqueIndex:uq_fee_types_name"`
	Description *string `json:"description,omitempty" gorm:"column:description;type:varchar(255)"`
	Category    *string `json:"category,omitempty" gorm:"column:category;type:varchar(40)"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (FeeType) TableName() string { return "fee_types" }

func (m *FeeType) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TransportFeeTypeName is the canonical catalog entry used by the assignment
// workflow.
const TransportFeeTypeName = "Transport Fee"
