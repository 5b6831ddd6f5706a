package main

import (
	"log"

	"github.com/TrinhDucTiep/Knowledge-Sharing/config"
	"github.com/TrinhDucTiep/Knowledge-Sharing/database"
	"github.com/TrinhDucTiep/Knowledge-Sharing/middleware"
	"github.com/TrinhDucTiep/Knowledge-Sharing/routers/accountRoutes"
	"github.com/TrinhDucTiep/Knowledge-Sharing/routers/authRoutes"
	"github.com/TrinhDucTiep/Knowledge-Sharing/routers/courseRoutes"
	"github.com/TrinhDucTiep/Knowledge-Sharing/routers/knowledgeRoutes"
	"github.com/TrinhDucTiep/Knowledge-Sharing/store"
	"github.com/TrinhDucTiep/Knowledge-Sharing/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	stores := store.New(db)
	env := &middleware.Env{
		Cfg:     cfg,
		Stores:  stores,
		Payment: &store.BalanceCharger{DB: db},
		Mailer:  utils.NewMailer(cfg.SendGridKey, cfg.EmailSender),
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, env)
	accountRoutes.SetupAccountRoutes(app, env)
	courseRoutes.SetupCourseRoutes(app, env)
	knowledgeRoutes.SetupKnowledgeRoutes(app, env)

	utils.StartCleanupScheduler(stores)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
