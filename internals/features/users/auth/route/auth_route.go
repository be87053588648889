// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooltrans_backend/internals/constants"
	authController "schooltrans_backend/internals/features/users/auth/controller"
	"schooltrans_backend/internals/middlewares"
	authMw "schooltrans_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth. Login carries its own tighter rate limit;
// register is ADMIN only.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/register",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Only administrators may register users", constants.RoleAdmin),
		ctl.Register)
	auth.Get("/me", authMw.AuthMiddleware(), ctl.Me)
}
