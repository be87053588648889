// file: internals/features/transport/dto/vehicle_dto.go
package dto

import (
	"strings"

	helper "schooltrans_backend/internals/helpers"

	"schooltrans_backend/internals/features/transport/model"
)

type CreateVehicleRequest struct {
	VehicleNumber string  `json:"vehicle_number" validate:"required,min=4,max=40"`
	VehicleType   *string `json:"vehicle_type" validate:"omitempty,max=40"`
	Capacity      *int    `json:"capacity" validate:"omitempty,gt=0"`

	DriverName    string  `json:"driver_name" validate:"required,min=2,max=120"`
	DriverPhone   string  `json:"driver_phone" validate:"required,min=6,max=20"`
	DriverLicense *string `json:"driver_license" validate:"omitempty,max=40"`
	HelperName    *string `json:"helper_name" validate:"omitempty,max=120"`
	HelperPhone   *string `json:"helper_phone" validate:"omitempty,max=20"`

	RegistrationNumber *string `json:"registration_number" validate:"omitempty,max=40"`
	InsuranceExpiry    *string `json:"insurance_expiry"` // lenient date, see helpers.ParseFlexibleTime
	FitnessExpiry      *string `json:"fitness_expiry"`
}

func (r *CreateVehicleRequest) Normalize() {
	r.VehicleNumber = strings.ToUpper(strings.TrimSpace(r.VehicleNumber))
	r.DriverName = strings.TrimSpace(r.DriverName)
	r.DriverPhone = strings.TrimSpace(r.DriverPhone)
	trimPtr(&r.VehicleType)
	trimPtr(&r.DriverLicense)
	trimPtr(&r.HelperName)
	trimPtr(&r.HelperPhone)
	trimPtr(&r.RegistrationNumber)
}

func (r CreateVehicleRequest) ToModel() model.Vehicle {
	m := model.Vehicle{
		VehicleNumber:      r.VehicleNumber,
		VehicleType:        r.VehicleType,
		Capacity:           r.Capacity,
		DriverName:         r.DriverName,
		DriverPhone:        r.DriverPhone,
		DriverLicense:      r.DriverLicense,
		HelperName:         r.HelperName,
		HelperPhone:        r.HelperPhone,
		RegistrationNumber: r.RegistrationNumber,
		IsActive:           true,
	}
	if r.InsuranceExpiry != nil {
		m.InsuranceExpiry = helper.ParseFlexibleTime(*r.InsuranceExpiry)
	}
	if r.FitnessExpiry != nil {
		m.FitnessExpiry = helper.ParseFlexibleTime(*r.FitnessExpiry)
	}
	return m
}

type UpdateVehicleRequest struct {
	VehicleNumber *string `json:"vehicle_number" validate:"omitempty,min=4,max=40"`
	VehicleType   *string `json:"vehicle_type" validate:"omitempty,max=40"`
	Capacity      *int    `json:"capacity" validate:"omitempty,gt=0"`

	DriverName    *string `json:"driver_name" validate:"omitempty,min=2,max=120"`
	DriverPhone   *string `json:"driver_phone" validate:"omitempty,min=6,max=20"`
	DriverLicense *string `json:"driver_license" validate:"omitempty,max=40"`
	HelperName    *string `json:"helper_name" validate:"omitempty,max=120"`
	HelperPhone   *string `json:"helper_phone" validate:"omitempty,max=20"`

	RegistrationNumber *string `json:"registration_number" validate:"omitempty,max=40"`
	InsuranceExpiry    *string `json:"insurance_expiry"`
	FitnessExpiry      *string `json:"fitness_expiry"`
}

func (r *UpdateVehicleRequest) Normalize() {
	if r.VehicleNumber != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.VehicleNumber))
		if v == "" {
			r.VehicleNumber = nil
		} else {
			r.VehicleNumber = &v
		}
	}
	trimPtr(&r.VehicleType)
	trimPtr(&r.DriverName)
	trimPtr(&r.DriverPhone)
	trimPtr(&r.DriverLicense)
	trimPtr(&r.HelperName)
	trimPtr(&r.HelperPhone)
	trimPtr(&r.RegistrationNumber)
}

func (r UpdateVehicleRequest) Apply(m *model.Vehicle) {
	if r.VehicleNumber != nil {
		m.VehicleNumber = *r.VehicleNumber
	}
	if r.VehicleType != nil {
		m.VehicleType = r.VehicleType
	}
	if r.Capacity != nil {
		m.Capacity = r.Capacity
	}
	if r.DriverName != nil {
		m.DriverName = *r.DriverName
	}
	if r.DriverPhone != nil {
		m.DriverPhone = *r.DriverPhone
	}
	if r.DriverLicense != nil {
		m.DriverLicense = r.DriverLicense
	}
	if r.HelperName != nil {
		m.HelperName = r.HelperName
	}
	if r.HelperPhone != nil {
		m.HelperPhone = r.HelperPhone
	}
	if r.RegistrationNumber != nil {
		m.RegistrationNumber = r.RegistrationNumber
	}
	if r.InsuranceExpiry != nil {
		if t := helper.ParseFlexibleTime(*r.InsuranceExpiry); t != nil {
			m.InsuranceExpiry = t
		}
	}
	if r.FitnessExpiry != nil {
		if t := helper.ParseFlexibleTime(*r.FitnessExpiry); t != nil {
			m.FitnessExpiry = t
		}
	}
}
