package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vanshika704/gdg/config"
	"github.com/vanshika704/gdg/database"
	routes "github.com/vanshika704/gdg/internal/app/http"
	"github.com/vanshika704/gdg/internal/logger"
	"github.com/vanshika704/gdg/internal/media"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger.Init(cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		return
	}
	slog.Info("connected to database")

	if err := database.SeedFirstAdmin(db, cfg.Admin); err != nil {
		slog.Error("failed to seed first admin", "error", err)
		return
	}

	uploader, err := media.NewS3Relay(context.Background(), cfg.Media)
	if err != nil {
		slog.Error("media relay init failed", "error", err)
		return
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	routes.RegisterRoutes(r, cfg, db, uploader)

	slog.Info("server starting", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		slog.Error("server stopped", "error", err)
	}
}
