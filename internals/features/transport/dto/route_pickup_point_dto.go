// file: internals/features/transport/dto/route_pickup_point_dto.go
package dto

import (
	"github.com/google/uuid"

	"schooltrans_backend/internals/features/transport/model"
)

type AddPickupPointToRouteRequest struct {
	RouteID       uuid.UUID `json:"route_id" validate:"required"`
	PickupPointID uuid.UUID `json:"pickup_point_id" validate:"required"`

	SequenceOrder int     `json:"sequence_order" validate:"required,gt=0"`
	EstimatedTime *string `json:"estimated_time" validate:"omitempty,max=10"`
}

func (r *AddPickupPointToRouteRequest) Normalize() {
	trimPtr(&r.EstimatedTime)
}

func (r AddPickupPointToRouteRequest) ToModel() model.RoutePickupPoint {
	return model.RoutePickupPoint{
		RouteID:       r.RouteID,
		PickupPointID: r.PickupPointID,
		SequenceOrder: r.SequenceOrder,
		EstimatedTime: r.EstimatedTime,
	}
}

type UpdateRoutePickupPointRequest struct {
	SequenceOrder *int    `json:"sequence_order" validate:"omitempty,gt=0"`
	EstimatedTime *string `json:"estimated_time" validate:"omitempty,max=10"`
}

func (r *UpdateRoutePickupPointRequest) Normalize() {
	trimPtr(&r.EstimatedTime)
}

func (r UpdateRoutePickupPointRequest) Apply(m *model.RoutePickupPoint) {
	if r.SequenceOrder != nil {
		m.SequenceOrder = *r.SequenceOrder
	}
	if r.EstimatedTime != nil {
		m.EstimatedTime = r.EstimatedTime
	}
}
