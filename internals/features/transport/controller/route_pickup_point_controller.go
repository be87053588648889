// file: internals/features/transport/controller/route_pickup_point_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooltrans_backend/internals/features/transport/dto"
	"schooltrans_backend/internals/features/transport/model"
	helper "schooltrans_backend/internals/helpers"
)

type RoutePickupPointController struct {
	DB *gorm.DB
}

func NewRoutePickupPointController(db *gorm.DB) *RoutePickupPointController {
	return &RoutePickupPointController{DB: db}
}

// POST /api/transport/route-pickup-points
func (ctl *RoutePickupPointController) Add(c *fiber.Ctx) error {
	var req dto.AddPickupPointToRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if handled, err := helper.ValidateStruct(c, req); handled {
		return err
	}

	var route model.Route
	if err := ctl.DB.First(&route, "id = ?", req.RouteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Route not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	var point model.PickupPoint
	if err := ctl.DB.First(&point, "id = ?", req.PickupPointID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pickup point not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	var dup int64
	if err := ctl.DB.Model(&model.RoutePickupPoint{}).
		Where("route_id = ? AND pickup_point_id = ?", req.RouteID, req.PickupPointID).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Pickup point is already on this route")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Pickup point is already on this route")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonCreated(c, "Pickup point added to route successfully", m)
}

// GET /api/transport/route-pickup-points/route/:routeId — the route's stops in
// boarding order.
func (ctl *RoutePickupPointController) ListByRoute(c *fiber.Ctx) error {
	routeID, handled, err := parseUUIDParam(c, "routeId")
	if handled {
		return err
	}

	var route model.Route
	if err := ctl.DB.First(&route, "id = ?", routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Route not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	var rows []model.RoutePickupPoint
	if err := ctl.DB.
		Preload("PickupPoint").
		Where("route_id = ?", routeID).
		Order("sequence_order ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonOK(c, "Route pickup points fetched successfully", rows)
}

// PUT /api/transport/route-pickup-points/:id
func (ctl *RoutePickupPointController) Update(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var req dto.UpdateRoutePickupPointRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if handled, err := helper.ValidateStruct(c, req); handled {
		return err
	}

	var m model.RoutePickupPoint
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Route pickup point not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonUpdated(c, "Route pickup point updated successfully", m)
}

// DELETE /api/transport/route-pickup-points/:id — blocked while students hold
// an active assignment boarding at this stop on this route.
func (ctl *RoutePickupPointController) Remove(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var m model.RoutePickupPoint
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Route pickup point not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	var boarding int64
	if err := ctl.DB.Model(&model.StudentTransportAssignment{}).
		Where("route_id = ? AND pickup_point_id = ? AND status = ?",
			m.RouteID, m.PickupPointID, model.AssignmentActive).
		Count(&boarding).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	if boarding > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Cannot remove pickup point with active student assignments on this route")
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonDeleted(c, "Pickup point removed from route successfully", m)
}
