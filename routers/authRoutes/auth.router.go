package authRoutes

import (
	authController "github.com/TrinhDucTiep/Knowledge-Sharing/controllers/auth"
	"github.com/TrinhDucTiep/Knowledge-Sharing/middleware"
	authValidator "github.com/TrinhDucTiep/Knowledge-Sharing/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, env *middleware.Env) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidator.Register(), authController.Register(env))
	authGroup.Post("/login", authValidator.Login(), authController.Login(env))

	authGroup.Post("/validate", middleware.Handle(env,
		[]middleware.Guard{middleware.CheckToken},
		authController.ValidateToken))

	authGroup.Post("/logout", middleware.Handle(env,
		[]middleware.Guard{middleware.CheckToken},
		authController.Logout))

	authGroup.Post("/logout/all", middleware.Handle(env,
		[]middleware.Guard{middleware.CheckToken},
		authController.LogoutAll))
}
