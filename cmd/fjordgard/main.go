package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/Sylviettee/fjordgard/internal/api/http"
	"github.com/Sylviettee/fjordgard/internal/config"
	"github.com/Sylviettee/fjordgard/internal/meteo"
	"github.com/Sylviettee/fjordgard/internal/scheduler"
	"github.com/Sylviettee/fjordgard/internal/store"
	"github.com/Sylviettee/fjordgard/internal/weather"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Open-Meteo client shared by the service and startup geocoding.
	client := meteo.NewClient(meteo.ClientConfig{
		APIKey:     cfg.MeteoAPIKey,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
	})

	// Resolve any configured place names to coordinates.
	locations := cfg.Locations
	if len(cfg.PlaceNames) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		resolved, err := weather.ResolveLocations(ctx, cfg.PlaceNames, cfg.GoogleGeocoderKey, client)
		cancel()
		if err != nil {
			log.Fatalf("failed to resolve locations: %v", err)
		}
		locations = append(locations, resolved...)
	}

	// In-memory store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// Core service fetching conditions and keeping snapshots.
	service := weather.NewService(memStore, client, locations)

	// Scheduler that periodically refreshes all locations.
	sched := scheduler.New(service, cfg.RefreshInterval, 2*time.Minute)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "fjordgard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "fjordgard",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
