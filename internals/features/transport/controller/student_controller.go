// file: internals/features/transport/controller/student_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooltrans_backend/internals/features/transport/dto"
	"schooltrans_backend/internals/features/transport/model"
	helper "schooltrans_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// POST /api/transport/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if handled, err := helper.ValidateStruct(c, req); handled {
		return err
	}

	var dup int64
	if err := ctl.DB.Model(&model.Student{}).
		Where("admission_number = ?", req.AdmissionNumber).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Student with this admission number already exists")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Student with this admission number already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonCreated(c, "Student created successfully", m)
}

// GET /api/transport/students?page=&limit=&search=&class=&is_active=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.Model(&model.Student{})
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		q = q.Where(
			"LOWER(admission_number) LIKE LOWER(?) OR LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?)",
			pattern, pattern, pattern)
	}
	if class := c.Query("class"); class != "" {
		q = q.Where("class = ?", class)
	}
	if active := boolQuery(c, "is_active"); active != nil {
		q = q.Where("is_active = ?", *active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	var rows []model.Student
	if err := q.Order("admission_number ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	return helper.JsonList(c, "Students fetched successfully", rows,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/transport/students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var m model.Student
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonOK(c, "Student fetched successfully", m)
}

// PUT /api/transport/students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if handled, err := helper.ValidateStruct(c, req); handled {
		return err
	}

	var m model.Student
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	if req.AdmissionNumber != nil && *req.AdmissionNumber != m.AdmissionNumber {
		var dup int64
		if err := ctl.DB.Model(&model.Student{}).
			Where("admission_number = ? AND id <> ?", *req.AdmissionNumber, id).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "")
		}
		if dup > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Student with this admission number already exists")
		}
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Student with this admission number already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonUpdated(c, "Student updated successfully", m)
}

// DELETE /api/transport/students/:id — soft deactivate; blocked while the
// student holds an active transport assignment.
func (ctl *StudentController) Deactivate(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var m model.Student
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	var active int64
	if err := ctl.DB.Model(&model.StudentTransportAssignment{}).
		Where("student_id = ? AND status = ?", id, model.AssignmentActive).
		Count(&active).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	if active > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Cannot deactivate student with an active transport assignment")
	}

	m.IsActive = false
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonDeleted(c, "Student deactivated successfully", m)
}
