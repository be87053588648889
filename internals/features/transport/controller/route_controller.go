// file: internals/features/transport/controller/route_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooltrans_backend/internals/features/transport/dto"
	"schooltrans_backend/internals/features/transport/model"
	helper "schooltrans_backend/internals/helpers"
)

type RouteController struct {
	DB *gorm.DB
}

func NewRouteController(db *gorm.DB) *RouteController {
	return &RouteController{DB: db}
}

// POST /api/transport/routes
func (ctl *RouteController) Create(c *fiber.Ctx) error {
	var req dto.CreateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if handled, err := helper.ValidateStruct(c, req); handled {
		return err
	}

	// pre-check duplicate name / code
	var dup int64
	q := ctl.DB.Model(&model.Route{}).Where("route_name = ?", req.RouteName)
	if req.RouteCode != nil {
		q = q.Or("route_code = ?", *req.RouteCode)
	}
	if err := q.Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Route with this name or code already exists")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Route with this name or code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonCreated(c, "Route created successfully", m)
}

// GET /api/transport/routes?page=&limit=&search=&is_active=
func (ctl *RouteController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.Model(&model.Route{})
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		q = q.Where("LOWER(route_name) LIKE LOWER(?) OR LOWER(route_code) LIKE LOWER(?)", pattern, pattern)
	}
	if active := boolQuery(c, "is_active"); active != nil {
		q = q.Where("is_active = ?", *active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	var rows []model.Route
	if err := q.Order("route_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	return helper.JsonList(c, "Routes fetched successfully", rows,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/transport/routes/:id
func (ctl *RouteController) GetByID(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var m model.Route
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Route not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonOK(c, "Route fetched successfully", m)
}

// PUT /api/transport/routes/:id
func (ctl *RouteController) Update(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var req dto.UpdateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if handled, err := helper.ValidateStruct(c, req); handled {
		return err
	}

	var m model.Route
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Route not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	if req.RouteName != nil && *req.RouteName != m.RouteName {
		var dup int64
		if err := ctl.DB.Model(&model.Route{}).
			Where("route_name = ? AND id <> ?", *req.RouteName, id).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "")
		}
		if dup > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Route with this name already exists")
		}
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Route with this name or code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonUpdated(c, "Route updated successfully", m)
}

// DELETE /api/transport/routes/:id — soft deactivate; blocked while students
// still ride this route.
func (ctl *RouteController) Deactivate(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var m model.Route
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Route not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	var riders int64
	if err := ctl.DB.Model(&model.StudentTransportAssignment{}).
		Where("route_id = ? AND status = ?", id, model.AssignmentActive).
		Count(&riders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	if riders > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Cannot deactivate route with active student assignments")
	}

	m.IsActive = false
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonDeleted(c, "Route deactivated successfully", m)
}
