package courseRoutes

import (
	courseController "github.com/TrinhDucTiep/Knowledge-Sharing/controllers/course"
	"github.com/TrinhDucTiep/Knowledge-Sharing/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes declares the enrollment pipelines. Guard order is part of
// the contract: token checks run before rate limits, which run before
// existence lookups.
func SetupCourseRoutes(app *fiber.App, env *middleware.Env) {
	courseGroup := app.Group("/api/course")

	courseGroup.Post("/", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
			middleware.CheckLimitLevelZero,
		},
		courseController.CreateCourse))

	courseGroup.Get("/list", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
		},
		courseController.ListCourses))

	courseGroup.Get("/:courseid", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
			middleware.CheckCourseExisted,
		},
		courseController.GetCourse))

	courseGroup.Post("/lesson/:courseid", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
			middleware.CheckLimitLevelZero,
			middleware.CheckCourseExisted,
		},
		courseController.CreateLesson))

	courseGroup.Post("/register/:courseid", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
			middleware.CheckLimitLevelOne,
			middleware.CheckCourseExisted,
		},
		courseController.FreeRegister))

	courseGroup.Post("/pay/:courseid", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckPassword,
			middleware.CheckAccount,
			middleware.CheckLimitLevelOne,
			middleware.CheckCourseExisted,
		},
		courseController.Pay))

	courseGroup.Post("/request/:courseid", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
			middleware.CheckLimitLevelOne,
			middleware.CheckCourseExisted,
		},
		courseController.Request))

	courseGroup.Delete("/request/:requestid", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
			middleware.CheckLimitLevelZero,
			middleware.CheckRequestExisted,
		},
		courseController.ConfirmRequest))

	courseGroup.Post("/invite/:courseid", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
			middleware.CheckLimitLevelZero,
			middleware.CheckAccountExisted,
			middleware.CheckCourseExisted,
		},
		courseController.Invite))

	courseGroup.Delete("/invite/:requestid", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
			middleware.CheckLimitLevelZero,
			middleware.CheckRequestExisted,
		},
		courseController.ConfirmInvite))
}
