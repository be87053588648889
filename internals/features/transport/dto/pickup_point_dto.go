// file: internals/features/transport/dto/pickup_point_dto.go
package dto

import (
	"strings"

	"schooltrans_backend/internals/features/transport/model"
)

type CreatePickupPointRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Address string `json:"address" validate:"required,min=2,max=255"`

	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Landmark  *string  `json:"landmark" validate:"omitempty,max=160"`
}

func (r *CreatePickupPointRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = strings.TrimSpace(r.Address)
	trimPtr(&r.Landmark)
}

func (r CreatePickupPointRequest) ToModel() model.PickupPoint {
	return model.PickupPoint{
		Name:      r.Name,
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Landmark:  r.Landmark,
		IsActive:  true,
	}
}

type UpdatePickupPointRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=120"`
	Address *string `json:"address" validate:"omitempty,min=2,max=255"`

	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Landmark  *string  `json:"landmark" validate:"omitempty,max=160"`
}

func (r *UpdatePickupPointRequest) Normalize() {
	trimPtr(&r.Name)
	trimPtr(&r.Address)
	trimPtr(&r.Landmark)
}

func (r UpdatePickupPointRequest) Apply(m *model.PickupPoint) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Address != nil {
		m.Address = *r.Address
	}
	if r.Latitude != nil {
		m.Latitude = r.Latitude
	}
	if r.Longitude != nil {
		m.Longitude = r.Longitude
	}
	if r.Landmark != nil {
		m.Landmark = r.Landmark
	}
}
