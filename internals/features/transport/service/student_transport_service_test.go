// file: internals/features/transport/service/student_transport_service_test.go
package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "schooltrans_backend/internals/databases"
	financeModel "schooltrans_backend/internals/features/finance/fees/model"
	"schooltrans_backend/internals/features/transport/dto"
	"schooltrans_backend/internals/features/transport/model"
)

const testAcademicYear = "2024-2025"

var fixedNow = time.Date(2024, 9, 10, 8, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.MigrateAll(db))
	return db
}

func newTestService(db *gorm.DB) *StudentTransportService {
	return &StudentTransportService{
		DB:           db,
		AcademicYear: testAcademicYear,
		Now:          func() time.Time { return fixedNow },
	}
}

func makeStudent(t *testing.T, db *gorm.DB, admission string) model.Student {
	t.Helper()
	s := model.Student{
		AdmissionNumber: admission,
		FirstName:       "Asha",
		LastName:        "Verma",
		Class:           "5",
		IsActive:        true,
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func makeRouteWithStop(t *testing.T, db *gorm.DB, name string, fee float64) (model.Route, model.PickupPoint) {
	t.Helper()
	r := model.Route{
		RouteName:  name,
		StartPoint: "School",
		EndPoint:   "Depot",
		IsActive:   true,
	}
	require.NoError(t, db.Create(&r).Error)

	p := model.PickupPoint{
		Name:     name + " stop 1",
		Address:  "Main street",
		IsActive: true,
	}
	require.NoError(t, db.Create(&p).Error)

	require.NoError(t, db.Create(&model.RoutePickupPoint{
		RouteID:       r.ID,
		PickupPointID: p.ID,
		SequenceOrder: 1,
	}).Error)

	if fee > 0 {
		require.NoError(t, db.Create(&model.TransportFeeMaster{
			RouteID:      &r.ID,
			MonthlyFee:   fee,
			AcademicYear: testAcademicYear,
			IsActive:     true,
		}).Error)
	}
	return r, p
}

func assignReq(student model.Student, route model.Route, point model.PickupPoint) dto.AssignStudentTransportRequest {
	return dto.AssignStudentTransportRequest{
		StudentID:     student.ID,
		RouteID:       route.ID,
		PickupPointID: point.ID,
	}
}

func requireFiberStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	assert.Equal(t, status, fe.Code)
}

func TestAssignCreatesAssignmentAndFirstFeeLine(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	student := makeStudent(t, db, "ADM-001")
	route, point := makeRouteWithStop(t, db, "North Loop", 1500)

	resp, err := svc.Assign(assignReq(student, route, point))
	require.NoError(t, err)

	a := resp.Assignment
	assert.Equal(t, model.AssignmentActive, a.Status)
	assert.Equal(t, 1500.0, a.MonthlyFee, "monthly fee must be snapshotted from the fee master")
	assert.WithinDuration(t, fixedNow, a.ValidFrom, time.Second, "valid_from defaults to now")
	assert.Nil(t, a.ValidTo)

	require.NotNil(t, resp.FeeAssignment)
	fee := resp.FeeAssignment
	assert.Equal(t, student.ID, fee.StudentID)
	assert.Equal(t, 1500.0, fee.Amount)
	assert.Equal(t, 9, fee.Month)
	assert.Equal(t, 2024, fee.Year)
	assert.WithinDuration(t, time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC), fee.DueDate, time.Second)
	assert.Equal(t, financeModel.FeePending, fee.Status)

	// canonical fee type + shared fee master were materialized
	var feeType financeModel.FeeType
	require.NoError(t, db.First(&feeType, "name = ?", financeModel.TransportFeeTypeName).Error)
	var masters int64
	require.NoError(t, db.Model(&financeModel.FeeMaster{}).Count(&masters).Error)
	assert.EqualValues(t, 1, masters)
}

func TestAssignHonorsExplicitValidFrom(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	student := makeStudent(t, db, "ADM-002")
	route, point := makeRouteWithStop(t, db, "South Loop", 1200)

	req := assignReq(student, route, point)
	from := "2024-09-01"
	req.ValidFrom = &from

	resp, err := svc.Assign(req)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), resp.Assignment.ValidFrom, time.Second)
}

func TestAssignUnparseableDateFallsBackToNow(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	student := makeStudent(t, db, "ADM-003")
	route, point := makeRouteWithStop(t, db, "East Loop", 1200)

	req := assignReq(student, route, point)
	from := "next monday"
	req.ValidFrom = &from

	resp, err := svc.Assign(req)
	require.NoError(t, err)
	assert.WithinDuration(t, fixedNow, resp.Assignment.ValidFrom, time.Second)
}

func TestAssignStudentMissingOrInactive(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)
	route, point := makeRouteWithStop(t, db, "West Loop", 1000)

	ghost := model.Student{ID: uuid.New()}
	_, err := svc.Assign(assignReq(ghost, route, point))
	requireFiberStatus(t, err, fiber.StatusNotFound)

	inactive := makeStudent(t, db, "ADM-010")
	require.NoError(t, db.Model(&model.Student{}).
		Where("id = ?", inactive.ID).Update("is_active", false).Error)
	_, err = svc.Assign(assignReq(inactive, route, point))
	requireFiberStatus(t, err, fiber.StatusBadRequest)
}

func TestAssignRouteMissingOrInactive(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)
	student := makeStudent(t, db, "ADM-011")
	route, point := makeRouteWithStop(t, db, "Hill Loop", 1000)

	_, err := svc.Assign(assignReq(student, model.Route{ID: uuid.New()}, point))
	requireFiberStatus(t, err, fiber.StatusNotFound)

	require.NoError(t, db.Model(&model.Route{}).
		Where("id = ?", route.ID).Update("is_active", false).Error)
	_, err = svc.Assign(assignReq(student, route, point))
	requireFiberStatus(t, err, fiber.StatusBadRequest)
}

func TestAssignRejectsPickupPointOffRoute(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	student := makeStudent(t, db, "ADM-012")
	route, _ := makeRouteWithStop(t, db, "River Loop", 1000)
	_, otherPoint := makeRouteWithStop(t, db, "Lake Loop", 1000)

	_, err := svc.Assign(assignReq(student, route, otherPoint))
	requireFiberStatus(t, err, fiber.StatusBadRequest)
}

func TestAssignConflictsWithExistingActiveAssignment(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	student := makeStudent(t, db, "ADM-013")
	route, point := makeRouteWithStop(t, db, "Park Loop", 1000)

	_, err := svc.Assign(assignReq(student, route, point))
	require.NoError(t, err)

	_, err = svc.Assign(assignReq(student, route, point))
	requireFiberStatus(t, err, fiber.StatusConflict)
}

func TestAssignWithoutFeeStructureLeavesNoRows(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	student := makeStudent(t, db, "ADM-014")
	route, point := makeRouteWithStop(t, db, "Bare Loop", 0) // no fee master

	_, err := svc.Assign(assignReq(student, route, point))
	requireFiberStatus(t, err, fiber.StatusNotFound)

	var assignments, feeLines int64
	require.NoError(t, db.Model(&model.StudentTransportAssignment{}).Count(&assignments).Error)
	require.NoError(t, db.Model(&financeModel.StudentFeeAssignment{}).Count(&feeLines).Error)
	assert.Zero(t, assignments)
	assert.Zero(t, feeLines)
}

func TestAssignSkipsBillingWhenMonthAlreadyBilled(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	student := makeStudent(t, db, "ADM-015")
	route, point := makeRouteWithStop(t, db, "Loop A", 1500)

	first, err := svc.Assign(assignReq(student, route, point))
	require.NoError(t, err)
	require.NotNil(t, first.FeeAssignment)

	_, err = svc.Deactivate(first.Assignment.ID)
	require.NoError(t, err)

	second, err := svc.Assign(assignReq(student, route, point))
	require.NoError(t, err)
	assert.Nil(t, second.FeeAssignment, "same month must not be billed twice")

	var feeLines int64
	require.NoError(t, db.Model(&financeModel.StudentFeeAssignment{}).
		Where("student_id = ?", student.ID).Count(&feeLines).Error)
	assert.EqualValues(t, 1, feeLines)
}

func TestSharedFeeMasterAcrossRoutesKeepsPerRouteAmounts(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	s1 := makeStudent(t, db, "ADM-020")
	s2 := makeStudent(t, db, "ADM-021")
	r1, p1 := makeRouteWithStop(t, db, "Cheap Loop", 1000)
	r2, p2 := makeRouteWithStop(t, db, "Far Loop", 2500)

	resp1, err := svc.Assign(assignReq(s1, r1, p1))
	require.NoError(t, err)
	resp2, err := svc.Assign(assignReq(s2, r2, p2))
	require.NoError(t, err)

	// one shared fee master per academic year
	var masters int64
	require.NoError(t, db.Model(&financeModel.FeeMaster{}).Count(&masters).Error)
	assert.EqualValues(t, 1, masters)

	// but the billing lines carry each route's own fee
	require.NotNil(t, resp1.FeeAssignment)
	require.NotNil(t, resp2.FeeAssignment)
	assert.Equal(t, 1000.0, resp1.FeeAssignment.Amount)
	assert.Equal(t, 2500.0, resp2.FeeAssignment.Amount)
}

func TestDeactivateStampsValidToAndAllowsReassign(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	student := makeStudent(t, db, "ADM-030")
	route, point := makeRouteWithStop(t, db, "Loop B", 1500)

	resp, err := svc.Assign(assignReq(student, route, point))
	require.NoError(t, err)

	m, err := svc.Deactivate(resp.Assignment.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AssignmentInactive, m.Status)
	require.NotNil(t, m.ValidTo)
	assert.WithinDuration(t, fixedNow, *m.ValidTo, time.Second)

	// deactivating twice is harmless
	again, err := svc.Deactivate(resp.Assignment.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AssignmentInactive, again.Status)

	// the student can be assigned again now
	_, err = svc.Assign(assignReq(student, route, point))
	require.NoError(t, err)
}

func TestDeactivateUnknownAssignment(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	_, err := svc.Deactivate(uuid.New())
	requireFiberStatus(t, err, fiber.StatusNotFound)
}

func TestUpdateChangesMutableFieldsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	student := makeStudent(t, db, "ADM-040")
	route, point := makeRouteWithStop(t, db, "Loop C", 1500)

	resp, err := svc.Assign(assignReq(student, route, point))
	require.NoError(t, err)

	newPoint := model.PickupPoint{Name: "New stop", Address: "Side street", IsActive: true}
	require.NoError(t, db.Create(&newPoint).Error)

	shift := "evening"
	validTo := "2025-03-31"
	updated, err := svc.Update(resp.Assignment.ID, dto.UpdateStudentTransportRequest{
		PickupPointID: &newPoint.ID,
		Shift:         &shift,
		ValidTo:       &validTo,
	})
	require.NoError(t, err)

	assert.Equal(t, newPoint.ID, updated.PickupPointID)
	require.NotNil(t, updated.Shift)
	assert.Equal(t, "evening", *updated.Shift)
	require.NotNil(t, updated.ValidTo)
	assert.WithinDuration(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), *updated.ValidTo, time.Second)
	assert.Equal(t, 1500.0, updated.MonthlyFee, "fee snapshot must not change on update")
	assert.Equal(t, model.AssignmentActive, updated.Status)
}

func TestListFiltersByStudentRouteAndStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	s1 := makeStudent(t, db, "ADM-050")
	s2 := makeStudent(t, db, "ADM-051")
	r1, p1 := makeRouteWithStop(t, db, "Loop D", 1000)
	r2, p2 := makeRouteWithStop(t, db, "Loop E", 1000)

	resp1, err := svc.Assign(assignReq(s1, r1, p1))
	require.NoError(t, err)
	_, err = svc.Assign(assignReq(s2, r2, p2))
	require.NoError(t, err)
	_, err = svc.Deactivate(resp1.Assignment.ID)
	require.NoError(t, err)

	rows, total, err := svc.List(AssignmentFilters{StudentID: &s1.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, s1.ID, rows[0].StudentID)

	status := "active"
	rows, total, err = svc.List(AssignmentFilters{Status: &status})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, s2.ID, rows[0].StudentID)

	rows, total, err = svc.List(AssignmentFilters{RouteID: &r2.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, r2.ID, rows[0].RouteID)
}

func TestSearchStudentsIsCaseInsensitiveAndCapped(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	target := model.Student{
		AdmissionNumber: "ADM-100",
		FirstName:       "Priya",
		LastName:        "Nair",
		Class:           "6",
		IsActive:        true,
	}
	require.NoError(t, db.Create(&target).Error)

	hidden := model.Student{
		AdmissionNumber: "ADM-101",
		FirstName:       "Priyanka",
		LastName:        "Rao",
		Class:           "6",
		IsActive:        false,
	}
	require.NoError(t, db.Create(&hidden).Error)

	results, err := svc.SearchStudents("pRiYa")
	require.NoError(t, err)
	require.Len(t, results, 1, "inactive students must not appear")
	assert.Equal(t, "ADM-100", results[0].AdmissionNumber)

	for i := 0; i < 15; i++ {
		require.NoError(t, db.Create(&model.Student{
			AdmissionNumber: fmt.Sprintf("BULK-%02d", i),
			FirstName:       "Bulk",
			LastName:        "Student",
			Class:           "7",
			IsActive:        true,
		}).Error)
	}
	results, err = svc.SearchStudents("bulk")
	require.NoError(t, err)
	assert.Len(t, results, 10, "results are capped at 10")
}

func TestCreatedRowsReadBackFaithfully(t *testing.T) {
	db := newTestDB(t)

	// explicit inactive must survive the insert, and the timestamp columns
	// must scan back on every dialect the suite runs against
	s := model.Student{AdmissionNumber: "ADM-200", FirstName: "Idle", LastName: "Row", Class: "3", IsActive: false}
	require.NoError(t, db.Create(&s).Error)

	var gotStudent model.Student
	require.NoError(t, db.First(&gotStudent, "id = ?", s.ID).Error)
	assert.False(t, gotStudent.IsActive, "row created inactive must stay inactive")
	assert.False(t, gotStudent.CreatedAt.IsZero())
	assert.False(t, gotStudent.UpdatedAt.IsZero())

	r := model.Route{RouteName: "Parked Loop", StartPoint: "A", EndPoint: "B", IsActive: false}
	require.NoError(t, db.Create(&r).Error)
	var gotRoute model.Route
	require.NoError(t, db.First(&gotRoute, "id = ?", r.ID).Error)
	assert.False(t, gotRoute.IsActive)
}
