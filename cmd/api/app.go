package main

import (
	"context"
	"log/slog"

	"iss-tracker/internal/config"
	"iss-tracker/internal/metrics"
	"iss-tracker/internal/providers/nominatim"
	"iss-tracker/internal/providers/wtia"
	"iss-tracker/internal/timezone"
	"iss-tracker/internal/track"
	"iss-tracker/internal/tracker"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "iss-tracker/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	cfg             *config.Config
	trackerService  *tracker.Service
	timezoneService *timezone.Service
	geocoder        *nominatim.Client
	registry        *prometheus.Registry
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Prometheus registry with the standard process/runtime collectors
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// Position provider and the polling service
	client := wtia.NewClientWithBaseURL(logger, cfg.Tracker.BaseURL)
	buffer := track.NewBuffer(cfg.Tracker.TrackCapacity)
	trackerSvc := tracker.NewService(client, buffer, cfg.Tracker.SatelliteID, cfg.Tracker.PollInterval, logger, m)

	// Nadir timezone lookup
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, err
	}

	app := &App{
		router:          router,
		logger:          logger,
		cfg:             cfg,
		trackerService:  trackerSvc,
		timezoneService: tzSvc,
		geocoder:        nominatim.NewClientWithBaseURL(logger, cfg.Tracker.GeocoderBaseURL),
		registry:        registry,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// StartTracker launches the polling loop on its own goroutine.
func (app *App) StartTracker(ctx context.Context) {
	go app.trackerService.Run(ctx)
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
