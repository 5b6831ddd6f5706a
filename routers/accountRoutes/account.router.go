package accountRoutes

import (
	accountController "github.com/TrinhDucTiep/Knowledge-Sharing/controllers/account"
	"github.com/TrinhDucTiep/Knowledge-Sharing/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAccountRoutes(app *fiber.App, env *middleware.Env) {
	accountGroup := app.Group("/api/account")

	accountGroup.Get("/profile", middleware.Handle(env,
		[]middleware.Guard{middleware.CheckToken, middleware.CheckAccount},
		accountController.Profile))

	// Deposit re-checks the password like every money-moving operation.
	accountGroup.Post("/deposit", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckPassword,
			middleware.CheckAccount,
			middleware.CheckLimitLevelZero,
		},
		accountController.Deposit))

	accountGroup.Patch("/limit", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
			middleware.CheckAccountExisted,
		},
		accountController.SetLimitLevel))
}
