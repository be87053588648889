// file: internals/features/transport/dto/student_dto.go
package dto

import (
	"strings"

	"schooltrans_backend/internals/features/transport/model"
)

type CreateStudentRequest struct {
	AdmissionNumber string `json:"admission_number" validate:"required,min=2,max=40"`
	FirstName       string `json:"first_name" validate:"required,min=1,max=80"`
	LastName        string `json:"last_name" validate:"required,min=1,max=80"`

	Email *string `json:"email" validate:"omitempty,email,max=160"`
	Phone *string `json:"phone" validate:"omitempty,min=6,max=20"`

	Class      string  `json:"class" validate:"required,min=1,max=40"`
	Section    *string `json:"section" validate:"omitempty,max=10"`
	RollNumber *string `json:"roll_number" validate:"omitempty,max=20"`

	ParentName  *string `json:"parent_name" validate:"omitempty,max=120"`
	ParentPhone *string `json:"parent_phone" validate:"omitempty,min=6,max=20"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
}

func (r *CreateStudentRequest) Normalize() {
	r.AdmissionNumber = strings.TrimSpace(r.AdmissionNumber)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Class = strings.TrimSpace(r.Class)
	trimPtr(&r.Email)
	trimPtr(&r.Phone)
	trimPtr(&r.Section)
	trimPtr(&r.RollNumber)
	trimPtr(&r.ParentName)
	trimPtr(&r.ParentPhone)
	trimPtr(&r.Address)
}

func (r CreateStudentRequest) ToModel() model.Student {
	return model.Student{
		AdmissionNumber: r.AdmissionNumber,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		Class:           r.Class,
		Section:         r.Section,
		RollNumber:      r.RollNumber,
		ParentName:      r.ParentName,
		ParentPhone:     r.ParentPhone,
		Address:         r.Address,
		IsActive:        true,
	}
}

type UpdateStudentRequest struct {
	AdmissionNumber *string `json:"admission_number" validate:"omitempty,min=2,max=40"`
	FirstName       *string `json:"first_name" validate:"omitempty,min=1,max=80"`
	LastName        *string `json:"last_name" validate:"omitempty,min=1,max=80"`

	Email *string `json:"email" validate:"omitempty,email,max=160"`
	Phone *string `json:"phone" validate:"omitempty,min=6,max=20"`

	Class      *string `json:"class" validate:"omitempty,min=1,max=40"`
	Section    *string `json:"section" validate:"omitempty,max=10"`
	RollNumber *string `json:"roll_number" validate:"omitempty,max=20"`

	ParentName  *string `json:"parent_name" validate:"omitempty,max=120"`
	ParentPhone *string `json:"parent_phone" validate:"omitempty,min=6,max=20"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
}

func (r *UpdateStudentRequest) Normalize() {
	trimPtr(&r.AdmissionNumber)
	trimPtr(&r.FirstName)
	trimPtr(&r.LastName)
	trimPtr(&r.Email)
	trimPtr(&r.Phone)
	trimPtr(&r.Class)
	trimPtr(&r.Section)
	trimPtr(&r.RollNumber)
	trimPtr(&r.ParentName)
	trimPtr(&r.ParentPhone)
	trimPtr(&r.Address)
}

func (r UpdateStudentRequest) Apply(m *model.Student) {
	if r.AdmissionNumber != nil {
		m.AdmissionNumber = *r.AdmissionNumber
	}
	if r.FirstName != nil {
		m.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.LastName = *r.LastName
	}
	if r.Email != nil {
		m.Email = r.Email
	}
	if r.Phone != nil {
		m.Phone = r.Phone
	}
	if r.Class != nil {
		m.Class = *r.Class
	}
	if r.Section != nil {
		m.Section = r.Section
	}
	if r.RollNumber != nil {
		m.RollNumber = r.RollNumber
	}
	if r.ParentName != nil {
		m.ParentName = r.ParentName
	}
	if r.ParentPhone != nil {
		m.ParentPhone = r.ParentPhone
	}
	if r.Address != nil {
		m.Address = r.Address
	}
}
