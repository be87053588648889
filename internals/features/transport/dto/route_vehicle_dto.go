// file: internals/features/transport/dto/route_vehicle_dto.go
package dto

import (
	"github.com/google/uuid"

	"schooltrans_backend/internals/features/transport/model"
	helper "schooltrans_backend/internals/helpers"
)

type AssignVehicleToRouteRequest struct {
	RouteID   uuid.UUID `json:"route_id" validate:"required"`
	VehicleID uuid.UUID `json:"vehicle_id" validate:"required"`

	ValidFrom *string `json:"valid_from"` // lenient date
	ValidTo   *string `json:"valid_to"`
	Shift     *string `json:"shift" validate:"omitempty,oneof=morning evening both"`
}

func (r *AssignVehicleToRouteRequest) Normalize() {
	trimPtr(&r.Shift)
}

func (r AssignVehicleToRouteRequest) ToModel() model.RouteVehicleAssignment {
	m := model.RouteVehicleAssignment{
		RouteID:   r.RouteID,
		VehicleID: r.VehicleID,
		Shift:     r.Shift,
		IsActive:  true,
	}
	if r.ValidFrom != nil {
		m.ValidFrom = helper.ParseFlexibleTime(*r.ValidFrom)
	}
	if r.ValidTo != nil {
		m.ValidTo = helper.ParseFlexibleTime(*r.ValidTo)
	}
	return m
}
