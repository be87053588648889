// file: internals/features/transport/controller/pickup_point_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooltrans_backend/internals/features/transport/dto"
	"schooltrans_backend/internals/features/transport/model"
	helper "schooltrans_backend/internals/helpers"
)

type PickupPointController struct {
	DB *gorm.DB
}

func NewPickupPointController(db *gorm.DB) *PickupPointController {
	return &PickupPointController{DB: db}
}

// POST /api/transport/pickup-points
func (ctl *PickupPointController) Create(c *fiber.Ctx) error {
	var req dto.CreatePickupPointRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if handled, err := helper.ValidateStruct(c, req); handled {
		return err
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonCreated(c, "Pickup point created successfully", m)
}

// GET /api/transport/pickup-points?page=&limit=&search=&is_active=
func (ctl *PickupPointController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.Model(&model.PickupPoint{})
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) OR LOWER(address) LIKE LOWER(?)", pattern, pattern)
	}
	if active := boolQuery(c, "is_active"); active != nil {
		q = q.Where("is_active = ?", *active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	var rows []model.PickupPoint
	if err := q.Order("name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	return helper.JsonList(c, "Pickup points fetched successfully", rows,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/transport/pickup-points/:id
func (ctl *PickupPointController) GetByID(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var m model.PickupPoint
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pickup point not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonOK(c, "Pickup point fetched successfully", m)
}

// PUT /api/transport/pickup-points/:id
func (ctl *PickupPointController) Update(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var req dto.UpdatePickupPointRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if handled, err := helper.ValidateStruct(c, req); handled {
		return err
	}

	var m model.PickupPoint
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pickup point not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonUpdated(c, "Pickup point updated successfully", m)
}

// DELETE /api/transport/pickup-points/:id — soft deactivate; blocked while the
// point is still attached to any route.
func (ctl *PickupPointController) Deactivate(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var m model.PickupPoint
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pickup point not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	var attached int64
	if err := ctl.DB.Model(&model.RoutePickupPoint{}).
		Where("pickup_point_id = ?", id).
		Count(&attached).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	if attached > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Cannot deactivate pickup point that is attached to a route")
	}

	m.IsActive = false
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonDeleted(c, "Pickup point deactivated successfully", m)
}
