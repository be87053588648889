// file: internals/features/transport/controller/fee_master_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooltrans_backend/internals/features/transport/dto"
	"schooltrans_backend/internals/features/transport/model"
	helper "schooltrans_backend/internals/helpers"
)

type FeeMasterController struct {
	DB *gorm.DB
}

func NewFeeMasterController(db *gorm.DB) *FeeMasterController {
	return &FeeMasterController{DB: db}
}

// POST /api/transport/fee-master
// Either route_id or zone_name is required; one active fee per
// (route, academic_year).
func (ctl *FeeMasterController) Create(c *fiber.Ctx) error {
	var req dto.CreateFeeMasterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if handled, err := helper.ValidateStruct(c, req); handled {
		return err
	}

	if req.RouteID == nil && req.ZoneName == nil {
		return helper.JsonValidationError(c, []helper.FieldError{
			{Field: "route_id", Message: "either route_id or zone_name is required"},
		})
	}

	if req.RouteID != nil {
		var route model.Route
		if err := ctl.DB.First(&route, "id = ?", *req.RouteID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Route not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "")
		}

		var dup int64
		if err := ctl.DB.Model(&model.TransportFeeMaster{}).
			Where("route_id = ? AND academic_year = ? AND is_active = ?", *req.RouteID, req.AcademicYear, true).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "")
		}
		if dup > 0 {
			return helper.JsonError(c, fiber.StatusConflict,
				"An active fee structure already exists for this route and academic year")
		}
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonCreated(c, "Transport fee structure created successfully", m)
}

// GET /api/transport/fee-master?page=&limit=&route_id=&academic_year=&is_active=
func (ctl *FeeMasterController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.Model(&model.TransportFeeMaster{})
	if routeID := c.Query("route_id"); routeID != "" {
		q = q.Where("route_id = ?", routeID)
	}
	if year := c.Query("academic_year"); year != "" {
		q = q.Where("academic_year = ?", year)
	}
	if active := boolQuery(c, "is_active"); active != nil {
		q = q.Where("is_active = ?", *active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	var rows []model.TransportFeeMaster
	if err := q.Preload("Route").
		Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	return helper.JsonList(c, "Transport fee structures fetched successfully", rows,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/transport/fee-master/:id
func (ctl *FeeMasterController) GetByID(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var m model.TransportFeeMaster
	if err := ctl.DB.Preload("Route").First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Transport fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonOK(c, "Transport fee structure fetched successfully", m)
}

// PUT /api/transport/fee-master/:id
func (ctl *FeeMasterController) Update(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var req dto.UpdateFeeMasterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if handled, err := helper.ValidateStruct(c, req); handled {
		return err
	}

	var m model.TransportFeeMaster
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Transport fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonUpdated(c, "Transport fee structure updated successfully", m)
}

// DELETE /api/transport/fee-master/:id — soft deactivate. Existing assignments
// keep their snapshotted monthly fee, so no guard is needed here.
func (ctl *FeeMasterController) Deactivate(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var m model.TransportFeeMaster
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Transport fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	m.IsActive = false
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonDeleted(c, "Transport fee structure deactivated successfully", m)
}
