// file: internals/features/transport/dto/fee_master_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schooltrans_backend/internals/features/transport/model"
)

type CreateFeeMasterRequest struct {
	// Either route_id or zone_name must be provided; the controller checks.
	RouteID  *uuid.UUID `json:"route_id" validate:"omitempty"`
	ZoneName *string    `json:"zone_name" validate:"omitempty,min=2,max=80"`

	MonthlyFee  float64 `json:"monthly_fee" validate:"required,gt=0"`
	Description *string `json:"description" validate:"omitempty,max=255"`

	AcademicYear string `json:"academic_year" validate:"required,min=4,max=20"`
}

func (r *CreateFeeMasterRequest) Normalize() {
	r.AcademicYear = strings.TrimSpace(r.AcademicYear)
	trimPtr(&r.ZoneName)
	trimPtr(&r.Description)
}

func (r CreateFeeMasterRequest) ToModel() model.TransportFeeMaster {
	return model.TransportFeeMaster{
		RouteID:      r.RouteID,
		ZoneName:     r.ZoneName,
		MonthlyFee:   r.MonthlyFee,
		Description:  r.Description,
		AcademicYear: r.AcademicYear,
		IsActive:     true,
	}
}

type UpdateFeeMasterRequest struct {
	ZoneName     *string  `json:"zone_name" validate:"omitempty,min=2,max=80"`
	MonthlyFee   *float64 `json:"monthly_fee" validate:"omitempty,gt=0"`
	Description  *string  `json:"description" validate:"omitempty,max=255"`
	AcademicYear *string  `json:"academic_year" validate:"omitempty,min=4,max=20"`
}

func (r *UpdateFeeMasterRequest) Normalize() {
	trimPtr(&r.ZoneName)
	trimPtr(&r.Description)
	trimPtr(&r.AcademicYear)
}

func (r UpdateFeeMasterRequest) Apply(m *model.TransportFeeMaster) {
	if r.ZoneName != nil {
		m.ZoneName = r.ZoneName
	}
	if r.MonthlyFee != nil {
		m.MonthlyFee = *r.MonthlyFee
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.AcademicYear != nil {
		m.AcademicYear = *r.AcademicYear
	}
}
