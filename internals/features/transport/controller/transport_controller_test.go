// file: internals/features/transport/controller/transport_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "schooltrans_backend/internals/databases"
	"schooltrans_backend/internals/features/transport/model"
	"schooltrans_backend/internals/features/transport/service"
)

// test app with controllers mounted directly; auth and role gates have their
// own tests in the middlewares package
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.MigrateAll(db))

	svc := &service.StudentTransportService{
		DB:           db,
		AcademicYear: "2024-2025",
		Now:          func() time.Time { return time.Date(2024, 9, 10, 8, 0, 0, 0, time.UTC) },
	}

	routeCtl := NewRouteController(db)
	pointCtl := NewPickupPointController(db)
	feeCtl := NewFeeMasterController(db)
	rppCtl := NewRoutePickupPointController(db)
	assignCtl := NewStudentTransportController(svc, nil, nil)

	app := fiber.New()
	app.Post("/routes", routeCtl.Create)
	app.Get("/routes", routeCtl.List)
	app.Get("/routes/:id", routeCtl.GetByID)
	app.Delete("/routes/:id", routeCtl.Deactivate)
	app.Post("/pickup-points", pointCtl.Create)
	app.Post("/fee-master", feeCtl.Create)
	app.Post("/route-pickup-points", rppCtl.Add)
	app.Get("/route-pickup-points/route/:routeId", rppCtl.ListByRoute)
	app.Post("/student-transport/assign", assignCtl.Assign)
	app.Get("/students/search", assignCtl.SearchStudents)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (int, map[string]any) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func TestRouteCreateListAndDuplicate(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/routes", fiber.Map{
		"route_name":  "North Loop",
		"start_point": "School",
		"end_point":   "Depot",
	})
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	// same name again -> 409
	status, body = doJSON(t, app, "POST", "/routes", fiber.Map{
		"route_name":  "North Loop",
		"start_point": "School",
		"end_point":   "Depot",
	})
	require.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["error_code"])

	status, body = doJSON(t, app, "GET", "/routes?search=north", nil)
	require.Equal(t, fiber.StatusOK, status)
	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, pagination["total"])
}

func TestRouteValidationErrorShape(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/routes", fiber.Map{
		"route_name": "x", // too short, start/end missing
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, errs)
}

func TestRouteDeactivateBlockedByActiveAssignments(t *testing.T) {
	app, db := newTestApp(t)

	student := model.Student{AdmissionNumber: "ADM-1", FirstName: "A", LastName: "B", Class: "5", IsActive: true}
	require.NoError(t, db.Create(&student).Error)
	route := model.Route{RouteName: "Loop", StartPoint: "A", EndPoint: "B", IsActive: true}
	require.NoError(t, db.Create(&route).Error)
	point := model.PickupPoint{Name: "Stop", Address: "Street", IsActive: true}
	require.NoError(t, db.Create(&point).Error)
	require.NoError(t, db.Create(&model.RoutePickupPoint{RouteID: route.ID, PickupPointID: point.ID, SequenceOrder: 1}).Error)
	require.NoError(t, db.Create(&model.TransportFeeMaster{RouteID: &route.ID, MonthlyFee: 900, AcademicYear: "2024-2025", IsActive: true}).Error)

	status, _ := doJSON(t, app, "POST", "/student-transport/assign", fiber.Map{
		"student_id":      student.ID.String(),
		"route_id":        route.ID.String(),
		"pickup_point_id": point.ID.String(),
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doJSON(t, app, "DELETE", "/routes/"+route.ID.String(), nil)
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["message"], "active student assignments")
}

func TestAssignEndpointReturnsAssignmentAndFeeLine(t *testing.T) {
	app, db := newTestApp(t)

	student := model.Student{AdmissionNumber: "ADM-2", FirstName: "C", LastName: "D", Class: "6", IsActive: true}
	require.NoError(t, db.Create(&student).Error)
	route := model.Route{RouteName: "Loop 2", StartPoint: "A", EndPoint: "B", IsActive: true}
	require.NoError(t, db.Create(&route).Error)
	point := model.PickupPoint{Name: "Stop 2", Address: "Street", IsActive: true}
	require.NoError(t, db.Create(&point).Error)
	require.NoError(t, db.Create(&model.RoutePickupPoint{RouteID: route.ID, PickupPointID: point.ID, SequenceOrder: 1}).Error)
	require.NoError(t, db.Create(&model.TransportFeeMaster{RouteID: &route.ID, MonthlyFee: 1500, AcademicYear: "2024-2025", IsActive: true}).Error)

	status, body := doJSON(t, app, "POST", "/student-transport/assign", fiber.Map{
		"student_id":      student.ID.String(),
		"route_id":        route.ID.String(),
		"pickup_point_id": point.ID.String(),
	})
	require.Equal(t, fiber.StatusCreated, status)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assignment, ok := data["assignment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ACTIVE", assignment["status"])
	assert.EqualValues(t, 1500, assignment["monthly_fee"])

	feeLine, ok := data["fee_assignment"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 9, feeLine["month"])
	assert.Equal(t, "PENDING", feeLine["status"])
}

func TestAssignEndpointMissingFeeStructure(t *testing.T) {
	app, db := newTestApp(t)

	student := model.Student{AdmissionNumber: "ADM-3", FirstName: "E", LastName: "F", Class: "7", IsActive: true}
	require.NoError(t, db.Create(&student).Error)
	route := model.Route{RouteName: "Loop 3", StartPoint: "A", EndPoint: "B", IsActive: true}
	require.NoError(t, db.Create(&route).Error)
	point := model.PickupPoint{Name: "Stop 3", Address: "Street", IsActive: true}
	require.NoError(t, db.Create(&point).Error)
	require.NoError(t, db.Create(&model.RoutePickupPoint{RouteID: route.ID, PickupPointID: point.ID, SequenceOrder: 1}).Error)

	status, body := doJSON(t, app, "POST", "/student-transport/assign", fiber.Map{
		"student_id":      student.ID.String(),
		"route_id":        route.ID.String(),
		"pickup_point_id": point.ID.String(),
	})
	require.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body["message"], "No transport fee structure")
}

func TestRoutePickupPointsOrderedBySequence(t *testing.T) {
	app, db := newTestApp(t)

	route := model.Route{RouteName: "Ordered Loop", StartPoint: "A", EndPoint: "B", IsActive: true}
	require.NoError(t, db.Create(&route).Error)
	p1 := model.PickupPoint{Name: "Third", Address: "x", IsActive: true}
	p2 := model.PickupPoint{Name: "First", Address: "x", IsActive: true}
	p3 := model.PickupPoint{Name: "Second", Address: "x", IsActive: true}
	require.NoError(t, db.Create(&p1).Error)
	require.NoError(t, db.Create(&p2).Error)
	require.NoError(t, db.Create(&p3).Error)

	for _, pair := range []struct {
		point model.PickupPoint
		seq   int
	}{{p1, 3}, {p2, 1}, {p3, 2}} {
		status, _ := doJSON(t, app, "POST", "/route-pickup-points", fiber.Map{
			"route_id":        route.ID.String(),
			"pickup_point_id": pair.point.ID.String(),
			"sequence_order":  pair.seq,
		})
		require.Equal(t, fiber.StatusCreated, status)
	}

	// duplicate membership -> 409
	status, _ := doJSON(t, app, "POST", "/route-pickup-points", fiber.Map{
		"route_id":        route.ID.String(),
		"pickup_point_id": p1.ID.String(),
		"sequence_order":  9,
	})
	require.Equal(t, fiber.StatusConflict, status)

	status, body := doJSON(t, app, "GET", "/route-pickup-points/route/"+route.ID.String(), nil)
	require.Equal(t, fiber.StatusOK, status)

	rows, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 3)
	var seqs []float64
	for _, r := range rows {
		seqs = append(seqs, r.(map[string]any)["sequence_order"].(float64))
	}
	assert.Equal(t, []float64{1, 2, 3}, seqs)
}

func TestFeeMasterCreateRequiresRouteOrZone(t *testing.T) {
	app, db := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/fee-master", fiber.Map{
		"monthly_fee":   1000,
		"academic_year": "2024-2025",
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])

	route := model.Route{RouteName: "Fee Loop", StartPoint: "A", EndPoint: "B", IsActive: true}
	require.NoError(t, db.Create(&route).Error)

	status, _ = doJSON(t, app, "POST", "/fee-master", fiber.Map{
		"route_id":      route.ID.String(),
		"monthly_fee":   1000,
		"academic_year": "2024-2025",
	})
	require.Equal(t, fiber.StatusCreated, status)

	// second active fee for the same route+year -> 409
	status, _ = doJSON(t, app, "POST", "/fee-master", fiber.Map{
		"route_id":      route.ID.String(),
		"monthly_fee":   1200,
		"academic_year": "2024-2025",
	})
	require.Equal(t, fiber.StatusConflict, status)
}

func TestStudentSearchRequiresMinimumQuery(t *testing.T) {
	app, db := newTestApp(t)

	require.NoError(t, db.Create(&model.Student{
		AdmissionNumber: "ADM-9", FirstName: "Maya", LastName: "Iyer", Class: "4", IsActive: true,
	}).Error)

	status, _ := doJSON(t, app, "GET", "/students/search?q=m", nil)
	require.Equal(t, fiber.StatusBadRequest, status)

	status, body := doJSON(t, app, "GET", "/students/search?q=maya", nil)
	require.Equal(t, fiber.StatusOK, status)
	rows, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, "ADM-9", rows[0].(map[string]any)["admission_number"])
}
