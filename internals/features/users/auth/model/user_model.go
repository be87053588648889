// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`

	Email    string `json:"email" gorm:"column:email;type:varchar(160);not null;uniqueIndex:uq_users_email"`
	Password string `json:"-" gorm:"column:password;type:varchar(100);not null"` // bcrypt hash

	FirstName string `json:"first_name" gorm:"column:first_name;type:varchar(80);not null"`
	LastName  string `json:"last_name" gorm:"column:last_name;type:varchar(80);not null"`

	Role string `json:"role" gorm:"column:role;type:varchar(20);not null;default:'STAFF'"`

	IsActive bool `json:"is_active" gorm:"column:is_active;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (User) TableName() string { return "users" }

func (m *User) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
