package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/ieee-swc/ClubBack/api"
	"github.com/ieee-swc/ClubBack/config"
	"github.com/ieee-swc/ClubBack/db"
	"github.com/ieee-swc/ClubBack/discord"
	"github.com/ieee-swc/ClubBack/handlers"
	"github.com/ieee-swc/ClubBack/handlers/auth"
	"github.com/ieee-swc/ClubBack/supabase"
	"github.com/ieee-swc/ClubBack/utils"
	"github.com/joho/godotenv"
)

func main() {
	defer utils.HandlePanic()
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, relying on the environment.")
	}

	config.LoadConfig()
	cfg := config.GetConfig()

	utils.InitLogger(cfg.Debug)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10 MB
	})
	if cfg.Debug {
		utils.Info("Running in debug mode")
		app.Use(logger.New())
	}

	origin := cfg.CORSOrigin
	if origin == "" {
		origin = "https://ieee-swc.club"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Requested-With,X-Activity-Secret",
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowCredentials: true,
	}))

	// Optional collaborators: each one missing degrades a feature, never
	// the whole service.
	if cfg.HasScylla() {
		db.ConnectDB()
		db.ApplyMigrations(db.Session)
	} else {
		utils.Warn("No ScyllaDB configured, recent activity will use the fallback feed.")
	}
	if cfg.HasRedis() {
		utils.InitRedis()
	} else {
		utils.Warn("No Redis configured, widget responses will not be cached.")
	}
	if cfg.HasMinio() {
		utils.MinioInit()
	} else {
		utils.Warn("No object storage configured, uploads are disabled.")
	}
	if cfg.HasMailer() {
		utils.InitMailer()
	}
	if !cfg.HasSupabase() {
		utils.Warn("No auth backend configured, accounts are disabled.")
	}

	community := discord.New(cfg, nil, db.Session)
	sb := supabase.New(cfg, nil)

	api.SetupRoutes(app, api.Deps{
		Community: handlers.NewCommunityHandler(community),
		Auth:      auth.NewHandler(sb),
		Users:     handlers.NewUserHandler(sb),
		Content:   handlers.NewContentHandler(sb),
		SB:        sb,
	})

	port := cfg.Port
	if port == "" {
		port = "3000"
	}

	log.Fatal(app.Listen(":" + port))
}
