package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"claims-insights/internal/config"
	"claims-insights/internal/database"
	"claims-insights/internal/handlers"
	appmiddleware "claims-insights/internal/middleware"
	"claims-insights/internal/repositories"
	"claims-insights/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	claimRepo := repositories.NewClaimRepository(db)
	metrics := services.NewPrometheusMetrics()
	volumeService := services.NewClaimVolumeService(claimRepo, metrics)
	generator := services.NewClaimGenerator()

	reportHandler := handlers.NewReportHandler(volumeService)
	healthHandler := handlers.NewHealthCheckHandler(db)
	devHandler := handlers.NewDevHandler(claimRepo, generator, metrics)

	e := echo.New()
	e.HideBanner = true

	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.SecurityHeaders())
	e.Use(appmiddleware.RateLimiterWithConfig(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	reports := api.Group("/reports")
	reports.GET("/encounter-volume", reportHandler.GetEncounterVolume)
	reports.GET("/service-category-volume", reportHandler.GetServiceCategoryVolume)
	reports.GET("/claim-type-volume", reportHandler.GetClaimTypeVolume)
	reports.GET("/financial-summary", reportHandler.GetFinancialSummary)

	// Seeding endpoints only exist outside production and require an admin
	// token even there.
	if !cfg.IsProduction() {
		dev := api.Group("/dev", appmiddleware.RequireAuth(cfg), appmiddleware.RequireAdmin())
		dev.POST("/claims/generate", devHandler.GenerateClaims)
	}

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("starting server",
			"addr", server.Addr,
			"environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown:", err)
	}
}
