// file: internals/features/transport/controller/route_vehicle_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooltrans_backend/internals/features/transport/dto"
	"schooltrans_backend/internals/features/transport/model"
	helper "schooltrans_backend/internals/helpers"
)

type RouteVehicleController struct {
	DB *gorm.DB
}

func NewRouteVehicleController(db *gorm.DB) *RouteVehicleController {
	return &RouteVehicleController{DB: db}
}

// POST /api/transport/route-vehicles
func (ctl *RouteVehicleController) Assign(c *fiber.Ctx) error {
	var req dto.AssignVehicleToRouteRequest
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
	var vehicle model.Vehicle
	if err := ctl.DB.First(&vehicle, "id = ?", req.VehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Vehicle not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	// same (route, vehicle, shift) can only be active once
	dupQ := ctl.DB.Model(&model.RouteVehicleAssignment{}).
		Where("route_id = ? AND vehicle_id = ? AND is_active = ?", req.RouteID, req.VehicleID, true)
	if req.Shift != nil {
		dupQ = dupQ.Where("shift = ?", *req.Shift)
	} else {
		dupQ = dupQ.Where("shift IS NULL")
	}
	var dup int64
	if err := dupQ.Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict,
			"Vehicle is already assigned to this route for this shift")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonCreated(c, "Vehicle assigned to route successfully", m)
}

// GET /api/transport/route-vehicles?page=&limit=&route_id=&vehicle_id=&is_active=
func (ctl *RouteVehicleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.Model(&model.RouteVehicleAssignment{})
	if routeID := c.Query("route_id"); routeID != "" {
		q = q.Where("route_id = ?", routeID)
	}
	if vehicleID := c.Query("vehicle_id"); vehicleID != "" {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	if active := boolQuery(c, "is_active"); active != nil {
		q = q.Where("is_active = ?", *active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	var rows []model.RouteVehicleAssignment
	if err := q.Preload("Route").Preload("Vehicle").
		Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	return helper.JsonList(c, "Route vehicle assignments fetched successfully", rows,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

// PUT /api/transport/route-vehicles/:id/deactivate
func (ctl *RouteVehicleController) Deactivate(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var m model.RouteVehicleAssignment
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Route vehicle assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	now := time.Now()
	m.IsActive = false
	m.ValidTo = &now
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonDeleted(c, "Vehicle unassigned from route successfully", m)
}
