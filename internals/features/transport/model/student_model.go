// file: internals/features/transport/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`

	AdmissionNumber string `json:"admission_number" gorm:"column:admission_number;type:varchar(40);not null;uniqueIndex:uq_students_admission_number"`
	FirstName       string `json:"first_name" gorm:"column:first_name;type:varchar(80);not null"`
	LastName        string `json:"last_name" gorm:"column:last_name;type:varchar(80);not null"`

	Email *string `json:"email,omitempty" gorm:"column:email;type:varchar(160)"`
	Phone *string `json:"phone,omitempty" gorm:"column:phone;type:varchar(20)"`

	Class      string  `json:"class" gorm:"column:class;type:varchar(40);not null"`
	Section    *string `json:"section,omitempty" gorm:"column:section;type:varchar(10)"`
	RollNumber *string `json:"roll_number,omitempty" gorm:"column:roll_number;type:varchar(20)"`

	ParentName  *string `json:"parent_name,omitempty" gorm:"column:parent_name;type:varchar(120)"`
	ParentPhone *string `json:"parent_phone,omitempty" gorm:"column:parent_phone;type:varchar(20)"`
	Address     *string `json:"address,omitempty" gorm:"column:address;type:varchar(255)"`

	IsActive bool `json:"is_active" gorm:"column:is_active;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (Student) TableName() string { return "students" }

func (m *Student) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
