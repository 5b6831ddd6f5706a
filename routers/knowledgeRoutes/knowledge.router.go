package knowledgeRoutes

import (
	knowledgeController "github.com/TrinhDucTiep/Knowledge-Sharing/controllers/knowledge"
	"github.com/TrinhDucTiep/Knowledge-Sharing/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupKnowledgeRoutes(app *fiber.App, env *middleware.Env) {
	knGroup := app.Group("/api/knowledge")

	knGroup.Put("/score/:knid", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
			middleware.CheckLimitLevelOne,
			middleware.CheckKnowledgeExisted,
		},
		knowledgeController.ScoreKnowledge))

	knGroup.Post("/mark/:knid", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
			middleware.CheckLimitLevelOne,
			middleware.CheckKnowledgeExisted,
		},
		knowledgeController.MarkKnowledge))

	knGroup.Post("/comment/:knid", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
			middleware.CheckLimitLevelOne,
			middleware.CheckKnowledgeExisted,
		},
		knowledgeController.AddComment))

	knGroup.Get("/comments/:knid", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
			middleware.CheckKnowledgeExisted,
		},
		knowledgeController.ListComments))

	knGroup.Patch("/comment/:commentid", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
			middleware.CheckLimitLevelOne,
			middleware.CheckCommentExisted,
		},
		knowledgeController.UpdateComment))

	knGroup.Delete("/comment/:commentid", middleware.Handle(env,
		[]middleware.Guard{
			middleware.CheckToken,
			middleware.CheckAccount,
			middleware.CheckLimitLevelOne,
			middleware.CheckCommentExisted,
		},
		knowledgeController.DeleteComment))
}
