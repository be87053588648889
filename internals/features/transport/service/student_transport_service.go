// file: internals/features/transport/service/student_transport_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	financeModel "schooltrans_backend/internals/features/finance/fees/model"
	"schooltrans_backend/internals/features/transport/dto"
	"schooltrans_backend/internals/features/transport/model"
	helper "schooltrans_backend/internals/helpers"
)

// StudentTransportService runs the assignment workflow: validate the
// student/route/pickup-point state, then atomically create the assignment and
// the first month's billing line. AcademicYear is injected so callers (and
// tests) can vary it instead of reading a hidden global.
type StudentTransportService struct {
	DB           *gorm.DB
	AcademicYear string

	// Now is the clock used for defaults and billing month resolution;
	// nil means time.Now.
	Now func() time.Time
}

func (s *StudentTransportService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

/* =======================================================
   ASSIGN — preconditions then one atomic transaction
======================================================= */

func (s *StudentTransportService) Assign(req dto.AssignStudentTransportRequest) (*dto.AssignStudentTransportResponse, error) {
	// 1) student exists & active
	var student model.Student
	if err := s.DB.First(&student, "id = ?", req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, err
	}
	if !student.IsActive {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Student is not active")
	}

	// 2) route exists & active
	var route model.Route
	if err := s.DB.First(&route, "id = ?", req.RouteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Route not found")
		}
		return nil, err
	}
	if !route.IsActive {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Route is not active")
	}

	// 3) pickup point must be one of the route's configured stops
	var onRoute int64
	if err := s.DB.Model(&model.RoutePickupPoint{}).
		Where("route_id = ? AND pickup_point_id = ?", req.RouteID, req.PickupPointID).
		Count(&onRoute).Error; err != nil {
		return nil, err
	}
	if onRoute == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Selected pickup point is not part of this route")
	}

	// 4) single active assignment per student
	var existing int64
	if err := s.DB.Model(&model.StudentTransportAssignment{}).
		Where("student_id = ? AND status = ?", req.StudentID, model.AssignmentActive).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, fiber.NewError(fiber.StatusConflict,
			"Student already has an active transport assignment. Please deactivate it first.")
	}

	// 5) active fee master for (route, academic year)
	var transportFee model.TransportFeeMaster
	if err := s.DB.
		Where("route_id = ? AND academic_year = ? AND is_active = ?", req.RouteID, s.AcademicYear, true).
		First(&transportFee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound,
				"No transport fee structure found for this route and academic year")
		}
		return nil, err
	}

	now := s.now()
	var fromInput *time.Time
	if req.ValidFrom != nil {
		fromInput = helper.ParseFlexibleTime(*req.ValidFrom)
	}
	validFrom := helper.FirstOr(fromInput, now)
	var validTo *time.Time
	if req.ValidTo != nil {
		validTo = helper.ParseFlexibleTime(*req.ValidTo)
	}

	resp := &dto.AssignStudentTransportResponse{}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// a) canonical "Transport Fee" fee type (idempotent upsert by name)
		feeType, err := ensureTransportFeeType(tx)
		if err != nil {
			return err
		}

		// b) the assignment, monthly fee snapshotted from the fee master
		assignment := model.StudentTransportAssignment{
			StudentID:     req.StudentID,
			RouteID:       req.RouteID,
			PickupPointID: req.PickupPointID,
			ValidFrom:     validFrom,
			ValidTo:       validTo,
			Shift:         req.Shift,
			MonthlyFee:    transportFee.MonthlyFee,
			Status:        model.AssignmentActive,
			CreatedBy:     req.CreatedBy,
		}
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}

		// c) shared billing fee master for (feeType, academicYear); amount is
		// whatever the first creating route wrote — per-student lines below
		// always use this route's fee, so they stay correct either way
		feeMaster, err := s.ensureFeeMaster(tx, feeType.ID, transportFee.MonthlyFee)
		if err != nil {
			return err
		}

		// d) first month's billing line, unless this month is already billed
		month := int(now.Month())
		year := now.Year()

		var billed int64
		if err := tx.Model(&financeModel.StudentFeeAssignment{}).
			Where("student_id = ? AND fee_master_id = ? AND month = ? AND year = ?",
				req.StudentID, feeMaster.ID, month, year).
			Count(&billed).Error; err != nil {
			return err
		}
		if billed == 0 {
			feeLine := financeModel.StudentFeeAssignment{
				StudentID:   req.StudentID,
				FeeMasterID: feeMaster.ID,
				Amount:      transportFee.MonthlyFee,
				Month:       month,
				Year:        year,
				DueDate:     helper.MonthDueDate(year, now.Month()),
				Status:      financeModel.FeePending,
				CreatedBy:   req.CreatedBy,
			}
			if err := tx.Create(&feeLine).Error; err != nil {
				return err
			}
			resp.FeeAssignment = &feeLine
		}

		resp.Assignment = assignment
		return nil
	})
	if err != nil {
		return nil, err
	}

	// hydrate relations for the response; the row is committed, so a reload
	// failure only costs the embedded relations
	if err := s.DB.Preload("Student").Preload("Route").Preload("PickupPoint").
		First(&resp.Assignment, "id = ?", resp.Assignment.ID).Error; err != nil {
		log.Printf("assignment reload err id=%s: %v", resp.Assignment.ID, err)
	}

	return resp, nil
}

func ensureTransportFeeType(tx *gorm.DB) (financeModel.FeeType, error) {
	var feeType financeModel.FeeType
	err := tx.Where("name = ?", financeModel.TransportFeeTypeName).First(&feeType).Error
	if err == nil {
		return feeType, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return financeModel.FeeType{}, err
	}

	desc := "Monthly transport fee"
	cat := "Transport"
	feeType = financeModel.FeeType{
		Name:        financeModel.TransportFeeTypeName,
		Description: &desc,
		Category:    &cat,
	}
	if err := tx.Create(&feeType).Error; err != nil {
		return financeModel.FeeType{}, err
	}
	return feeType, nil
}

func (s *StudentTransportService) ensureFeeMaster(tx *gorm.DB, feeTypeID uuid.UUID, amount float64) (financeModel.FeeMaster, error) {
	var feeMaster financeModel.FeeMaster
	err := tx.
		Where("fee_type_id = ? AND academic_year = ? AND is_active = ?", feeTypeID, s.AcademicYear, true).
		First(&feeMaster).Error
	if err == nil {
		return feeMaster, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return financeModel.FeeMaster{}, err
	}

	feeMaster = financeModel.FeeMaster{
		FeeTypeID:    feeTypeID,
		Amount:       amount,
		AcademicYear: s.AcademicYear,
		IsActive:     true,
	}
	if err := tx.Create(&feeMaster).Error; err != nil {
		return financeModel.FeeMaster{}, err
	}
	return feeMaster, nil
}

/* =======================================================
   THIN OPERATIONS
======================================================= */

type AssignmentFilters struct {
	StudentID *uuid.UUID
	RouteID   *uuid.UUID
	Status    *string
	Page      int
	Limit     int
}

func (s *StudentTransportService) List(f AssignmentFilters) ([]model.StudentTransportAssignment, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 10
	}

	q := s.DB.Model(&model.StudentTransportAssignment{})
	if f.StudentID != nil {
		q = q.Where("student_id = ?", *f.StudentID)
	}
	if f.RouteID != nil {
		q = q.Where("route_id = ?", *f.RouteID)
	}
	if f.Status != nil && strings.TrimSpace(*f.Status) != "" {
		q = q.Where("status = ?", strings.ToUpper(strings.TrimSpace(*f.Status)))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.StudentTransportAssignment
	if err := q.
		Preload("Student").Preload("Route").Preload("PickupPoint").
		Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).Limit(f.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *StudentTransportService) GetByID(id uuid.UUID) (*model.StudentTransportAssignment, error) {
	var m model.StudentTransportAssignment
	if err := s.DB.
		Preload("Student").Preload("Route").Preload("PickupPoint").
		First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Transport assignment not found")
		}
		return nil, err
	}
	return &m, nil
}

// Update changes the mutable fields only (pickup point, shift, valid_to).
// Route membership of the new pickup point is NOT re-validated here; that is
// the observed behavior of the assign-time check being a creation rule.
func (s *StudentTransportService) Update(id uuid.UUID, req dto.UpdateStudentTransportRequest) (*model.StudentTransportAssignment, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.PickupPointID != nil {
		m.PickupPointID = *req.PickupPointID
	}
	if req.Shift != nil {
		m.Shift = req.Shift
	}
	if req.ValidTo != nil {
		if t := helper.ParseFlexibleTime(*req.ValidTo); t != nil {
			m.ValidTo = t
		}
	}

	if err := s.DB.Save(m).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Deactivate sets status=INACTIVE and stamps valid_to. Safe to call twice;
// the second call just restamps valid_to.
func (s *StudentTransportService) Deactivate(id uuid.UUID) (*model.StudentTransportAssignment, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	m.Status = model.AssignmentInactive
	m.ValidTo = &now
	if err := s.DB.Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// SearchStudents is the typeahead: case-insensitive partial match on
// admission number / first / last name, active students only, capped at 10.
func (s *StudentTransportService) SearchStudents(query string) ([]dto.StudentSearchResult, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	var rows []dto.StudentSearchResult
	if err := s.DB.Model(&model.Student{}).
		Select("id, admission_number, first_name, last_name, class, section, roll_number").
		Where("is_active = ?", true).
		Where("LOWER(admission_number) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
			pattern, pattern, pattern).
		Limit(10).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
