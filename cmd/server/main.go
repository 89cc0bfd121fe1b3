package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"aarohan/config"
	"aarohan/db"
	"aarohan/handlers"
	"aarohan/logging"
	"aarohan/middleware"
	"aarohan/models"
	"aarohan/services"
	"aarohan/services/jobs"
	"aarohan/services/visitor"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	defer logging.Sync()
	log := logging.L()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.Session{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Identity provider
	handlers.AuthService = services.NewAuthFlow(services.NewGoTrueProvider(cfg))

	// Per-browser state and its cleanup
	visitors := visitor.NewStore()
	visitorIdle := time.Duration(cfg.VisitorIdleMinutes) * time.Minute
	scheduler, err := jobs.StartScheduler(db.DB, visitors, visitorIdle)
	if err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	middleware.InitAssetVersions("static")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			if v.Error != nil {
				log.Warnw("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency, "ip", v.RemoteIP, "error", v.Error)
				return nil
			}
			log.Infow("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency, "ip", v.RemoteIP)
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit(cfg)))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	e.Use(middleware.CSRF(cfg))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.Visitor(visitors))
	e.Use(middleware.LoadSession())

	registerRoutes(e)

	// Start server
	go func() {
		log.Infof("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	<-scheduler.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
	}
	jobs.RunCleanup(db.DB, visitors, 0)
}

// bodyLimit leaves room for multipart overhead above the upload cap
func bodyLimit(cfg *config.Config) string {
	mb := cfg.MaxUploadBytes()>>20 + 1
	return strconv.FormatInt(mb, 10) + "M"
}
