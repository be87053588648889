// file: internals/features/transport/route/transport_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooltrans_backend/internals/constants"
	"schooltrans_backend/internals/events"
	transportController "schooltrans_backend/internals/features/transport/controller"
	"schooltrans_backend/internals/features/transport/service"
	"schooltrans_backend/internals/metrics"
	authMw "schooltrans_backend/internals/middlewares/auth"
)

// role sets per concern; role mapping is configuration, kept here
var (
	transportManagers = []string{constants.RoleAdmin, constants.RoleTransportManager}
	feeManagers       = []string{constants.RoleAdmin, constants.RoleTransportManager, constants.RoleAccountant}
	transportReaders  = []string{constants.RoleAdmin, constants.RoleTransportManager, constants.RoleAccountant, constants.RoleStaff}
)

// TransportRoutes mounts everything under /api/transport behind JWT auth.
// Mutations require a manager role, reads additionally allow STAFF.
func TransportRoutes(api fiber.Router, db *gorm.DB, academicYear string, m *metrics.Collector, ev *events.Publisher) {
	svc := &service.StudentTransportService{DB: db, AcademicYear: academicYear}

	routeCtl := transportController.NewRouteController(db)
	pointCtl := transportController.NewPickupPointController(db)
	vehicleCtl := transportController.NewVehicleController(db)
	studentCtl := transportController.NewStudentController(db)
	feeCtl := transportController.NewFeeMasterController(db)
	rppCtl := transportController.NewRoutePickupPointController(db)
	rvCtl := transportController.NewRouteVehicleController(db)
	assignCtl := transportController.NewStudentTransportController(svc, m, ev)

	transport := api.Group("/transport", authMw.AuthMiddleware())

	read := authMw.OnlyRoles("", transportReaders...)
	manage := authMw.OnlyRoles("Only transport managers may modify transport data", transportManagers...)
	manageFees := authMw.OnlyRoles("Only transport or finance staff may modify fee structures", feeManagers...)

	// 🚌 routes
	routes := transport.Group("/routes")
	routes.Post("/", manage, routeCtl.Create)
	routes.Get("/", read, routeCtl.List)
	routes.Get("/:id", read, routeCtl.GetByID)
	routes.Put("/:id", manage, routeCtl.Update)
	routes.Delete("/:id", manage, routeCtl.Deactivate)

	// 📍 pickup points
	points := transport.Group("/pickup-points")
	points.Post("/", manage, pointCtl.Create)
	points.Get("/", read, pointCtl.List)
	points.Get("/:id", read, pointCtl.GetByID)
	points.Put("/:id", manage, pointCtl.Update)
	points.Delete("/:id", manage, pointCtl.Deactivate)

	// 🚐 vehicles
	vehicles := transport.Group("/vehicles")
	vehicles.Post("/", manage, vehicleCtl.Create)
	vehicles.Get("/", read, vehicleCtl.List)
	vehicles.Get("/:id", read, vehicleCtl.GetByID)
	vehicles.Put("/:id", manage, vehicleCtl.Update)
	vehicles.Delete("/:id", manage, vehicleCtl.Deactivate)

	// 🎒 students (transport registry view)
	students := transport.Group("/students")
	students.Get("/search", read, assignCtl.SearchStudents)
	students.Post("/", manage, studentCtl.Create)
	students.Get("/", read, studentCtl.List)
	students.Get("/:id", read, studentCtl.GetByID)
	students.Put("/:id", manage, studentCtl.Update)
	students.Delete("/:id", manage, studentCtl.Deactivate)

	// 💰 fee structures
	fees := transport.Group("/fee-master")
	fees.Post("/", manageFees, feeCtl.Create)
	fees.Get("/", read, feeCtl.List)
	fees.Get("/:id", read, feeCtl.GetByID)
	fees.Put("/:id", manageFees, feeCtl.Update)
	fees.Delete("/:id", manageFees, feeCtl.Deactivate)

	// 🔗 route ↔ pickup point
	rpp := transport.Group("/route-pickup-points")
	rpp.Post("/", manage, rppCtl.Add)
	rpp.Get("/route/:routeId", read, rppCtl.ListByRoute)
	rpp.Put("/:id", manage, rppCtl.Update)
	rpp.Delete("/:id", manage, rppCtl.Remove)

	// 🔗 route ↔ vehicle
	rv := transport.Group("/route-vehicles")
	rv.Post("/", manage, rvCtl.Assign)
	rv.Get("/", read, rvCtl.List)
	rv.Put("/:id/deactivate", manage, rvCtl.Deactivate)

	// 🧾 the assignment workflow
	st := transport.Group("/student-transport")
	st.Post("/assign", manage, assignCtl.Assign)
	st.Get("/", read, assignCtl.List)
	st.Get("/:id", read, assignCtl.GetByID)
	st.Put("/:id", manage, assignCtl.Update)
	st.Put("/:id/deactivate", manage, assignCtl.Deactivate)
}
