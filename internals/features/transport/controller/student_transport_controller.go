// file: internals/features/transport/controller/student_transport_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schooltrans_backend/internals/events"
	"schooltrans_backend/internals/features/transport/dto"
	"schooltrans_backend/internals/features/transport/service"
	helper "schooltrans_backend/internals/helpers"
	"schooltrans_backend/internals/metrics"
)

// StudentTransportController is the HTTP face of the assignment workflow.
// Metrics and Events may be nil (tests, seed tooling).
type StudentTransportController struct {
	Service *service.StudentTransportService
	Metrics *metrics.Collector
	Events  *events.Publisher
}

func NewStudentTransportController(svc *service.StudentTransportService, m *metrics.Collector, ev *events.Publisher) *StudentTransportController {
	return &StudentTransportController{Service: svc, Metrics: m, Events: ev}
}

// POST /api/transport/student-transport/assign
func (ctl *StudentTransportController) Assign(c *fiber.Ctx) error {
	var req dto.AssignStudentTransportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if handled, err := helper.ValidateStruct(c, req); handled {
		return err
	}
	if req.CreatedBy == nil {
		req.CreatedBy = actorID(c)
	}

	resp, err := ctl.Service.Assign(req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if ctl.Metrics != nil {
		ctl.Metrics.AssignmentsCreated.Inc()
		if resp.FeeAssignment != nil {
			ctl.Metrics.FeeLinesCreated.Inc()
		}
	}
	ctl.Events.Publish(events.SubjectAssignmentCreated, events.AssignmentEvent{
		AssignmentID:  resp.Assignment.ID.String(),
		StudentID:     resp.Assignment.StudentID.String(),
		RouteID:       resp.Assignment.RouteID.String(),
		PickupPointID: resp.Assignment.PickupPointID.String(),
		MonthlyFee:    resp.Assignment.MonthlyFee,
		Status:        string(resp.Assignment.Status),
		Timestamp:     time.Now(),
	})

	return helper.JsonCreated(c, "Student assigned to transport successfully", resp)
}

// GET /api/transport/student-transport?page=&limit=&student_id=&route_id=&status=
func (ctl *StudentTransportController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	filters := service.AssignmentFilters{Page: paging.Page, Limit: paging.Limit}
	if raw := c.Query("student_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filters.StudentID = &id
		}
	}
	if raw := c.Query("route_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filters.RouteID = &id
		}
	}
	if status := c.Query("status"); status != "" {
		filters.Status = &status
	}

	rows, total, err := ctl.Service.List(filters)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Transport assignments fetched successfully", rows,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/transport/student-transport/:id
func (ctl *StudentTransportController) GetByID(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	m, err := ctl.Service.GetByID(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Transport assignment fetched successfully", m)
}

// PUT /api/transport/student-transport/:id
func (ctl *StudentTransportController) Update(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	var req dto.UpdateStudentTransportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if handled, err := helper.ValidateStruct(c, req); handled {
		return err
	}

	m, err := ctl.Service.Update(id, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Transport assignment updated successfully", m)
}

// PUT /api/transport/student-transport/:id/deactivate
func (ctl *StudentTransportController) Deactivate(c *fiber.Ctx) error {
	id, handled, err := parseUUIDParam(c, "id")
	if handled {
		return err
	}

	m, err := ctl.Service.Deactivate(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if ctl.Metrics != nil {
		ctl.Metrics.AssignmentsDeactivated.Inc()
	}
	ctl.Events.Publish(events.SubjectAssignmentDeactivated, events.AssignmentEvent{
		AssignmentID:  m.ID.String(),
		StudentID:     m.StudentID.String(),
		RouteID:       m.RouteID.String(),
		PickupPointID: m.PickupPointID.String(),
		MonthlyFee:    m.MonthlyFee,
		Status:        string(m.Status),
		Timestamp:     time.Now(),
	})

	return helper.JsonDeleted(c, "Transport assignment deactivated successfully", m)
}

// GET /api/transport/students/search?q=
func (ctl *StudentTransportController) SearchStudents(c *fiber.Ctx) error {
	query := c.Query("q")
	if len(query) < 2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Search query must be at least 2 characters")
	}

	rows, err := ctl.Service.SearchStudents(query)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Students fetched successfully", rows)
}
