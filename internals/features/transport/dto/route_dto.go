// file: internals/features/transport/dto/route_dto.go
package dto

import (
	"strings"

	"schooltrans_backend/internals/features/transport/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateRouteRequest struct {
	RouteName string  `json:"route_name" validate:"required,min=3,max=120"`
	RouteCode *string `json:"route_code" validate:"omitempty,min=2,max=20"`

	StartPoint string `json:"start_point" validate:"required,min=2,max=160"`
	EndPoint   string `json:"end_point" validate:"required,min=2,max=160"`

	Distance          *float64 `json:"distance" validate:"omitempty,gt=0"`
	EstimatedDuration *int     `json:"estimated_duration" validate:"omitempty,gt=0"`
}

func (r *CreateRouteRequest) Normalize() {
	r.RouteName = strings.TrimSpace(r.RouteName)
	r.StartPoint = strings.TrimSpace(r.StartPoint)
	r.EndPoint = strings.TrimSpace(r.EndPoint)
	trimPtr(&r.RouteCode)
}

func (r CreateRouteRequest) ToModel() model.Route {
	return model.Route{
		RouteName:         r.RouteName,
		RouteCode:         r.RouteCode,
		StartPoint:        r.StartPoint,
		EndPoint:          r.EndPoint,
		Distance:          r.Distance,
		EstimatedDuration: r.EstimatedDuration,
		IsActive:          true,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateRouteRequest struct {
	RouteName *string `json:"route_name" validate:"omitempty,min=3,max=120"`
	RouteCode *string `json:"route_code" validate:"omitempty,min=2,max=20"`

	StartPoint *string `json:"start_point" validate:"omitempty,min=2,max=160"`
	EndPoint   *string `json:"end_point" validate:"omitempty,min=2,max=160"`

	Distance          *float64 `json:"distance" validate:"omitempty,gt=0"`
	EstimatedDuration *int     `json:"estimated_duration" validate:"omitempty,gt=0"`
}

func (r *UpdateRouteRequest) Normalize() {
	trimPtr(&r.RouteName)
	trimPtr(&r.RouteCode)
	trimPtr(&r.StartPoint)
	trimPtr(&r.EndPoint)
}

func (r UpdateRouteRequest) Apply(m *model.Route) {
	if r.RouteName != nil {
		m.RouteName = *r.RouteName
	}
	if r.RouteCode != nil {
		m.RouteCode = r.RouteCode
	}
	if r.StartPoint != nil {
		m.StartPoint = *r.StartPoint
	}
	if r.EndPoint != nil {
		m.EndPoint = *r.EndPoint
	}
	if r.Distance != nil {
		m.Distance = r.Distance
	}
	if r.EstimatedDuration != nil {
		m.EstimatedDuration = r.EstimatedDuration
	}
}

// trimPtr trims a *string in place; empty after trim becomes nil.
func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
