package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"restaurant_manager/config"
	"restaurant_manager/database"
	"restaurant_manager/handler"
	"restaurant_manager/helper"
	"restaurant_manager/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("failed to run migrations: %v", err)
	}

	if cfg.SeedData {
		database.SeedData(db, cfg)
	}

	cld, err := helper.InitCloudinary(cfg)
	if err != nil {
		logrus.Fatalf("failed to init cloudinary: %v", err)
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	h := handler.New(db, cfg, cld)
	router.SetupRoutes(app, h)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logrus.Fatalf("server stopped: %v", err)
		}
	}()
	logrus.Infof("listening on port %s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("shutdown signal received")

	if err := app.ShutdownWithTimeout(15 * time.Second); err != nil {
		logrus.Errorf("forced shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	logrus.Info("server stopped")
}
