// file: internals/features/transport/controller/vehicle_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooltrans_backend/internals/features/transport/dto"
	"schooltrans_backend/internals/features/transport/model"
	helper "schooltrans_backend/internals/helpers"
)

type VehicleController struct {
	DB *gorm.DB
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{DB: db}
}

// POST /api/transport/vehicles
func (ctl *VehicleController) Create(c *fiber.Ctx) error {
	var req dto.CreateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if handled, err := helper.ValidateStruct(c, req); handled {
		return err
	}

	var dup int64
	if err := ctl.DB.Model(&model.Vehicle{}).
		Where("vehicle_number = ?", req.VehicleNumber).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Vehicle with this number already exists")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Vehicle with this number already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonCreated(c, "Vehicle created successfully", m)
}

// GET /api/transport/vehicles?page=&limit=&search=&is_active=
func (ctl *VehicleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.Model(&model.Vehicle{})
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		q = q.Where("LOWER(vehicle_number) LIKE LOWER(?) OR LOWER(driver_name) LIKE LOWER(?)", pattern, pattern)
	}
	if active := boolQuery(c, "is_active"); active != nil {
		q = q.Where("is_active = ?", *active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	var rows []model.Vehicle
	if err := q.Order("vehicle_number ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	return helper.JsonList(c, "Vehicles fetched successfully", rows,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/transport/vehicles/:id
func (ctl *VehicleController) GetByID(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var m model.Vehicle
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Vehicle not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonOK(c, "Vehicle fetched successfully", m)
}

// PUT /api/transport/vehicles/:id
func (ctl *VehicleController) Update(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var req dto.UpdateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if handled, err := helper.ValidateStruct(c, req); handled {
		return err
	}

	var m model.Vehicle
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Vehicle not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	if req.VehicleNumber != nil && *req.VehicleNumber != m.VehicleNumber {
		var dup int64
		if err := ctl.DB.Model(&model.Vehicle{}).
			Where("vehicle_number = ? AND id <> ?", *req.VehicleNumber, id).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "")
		}
		if dup > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Vehicle with this number already exists")
		}
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Vehicle with this number already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonUpdated(c, "Vehicle updated successfully", m)
}

// DELETE /api/transport/vehicles/:id — soft deactivate; blocked while the
// vehicle is still assigned to a route.
func (ctl *VehicleController) Deactivate(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var m model.Vehicle
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Vehicle not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	var assigned int64
	if err := ctl.DB.Model(&model.RouteVehicleAssignment{}).
		Where("vehicle_id = ? AND is_active = ?", id, true).
		Count(&assigned).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	if assigned > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Cannot deactivate vehicle with active route assignments")
	}

	m.IsActive = false
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonDeleted(c, "Vehicle deactivated successfully", m)
}
