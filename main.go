package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/askelund/huddle/internal/attendance"
	"github.com/askelund/huddle/internal/auth"
	"github.com/askelund/huddle/internal/config"
	"github.com/askelund/huddle/internal/database"
	"github.com/askelund/huddle/internal/gallery"
	server "github.com/askelund/huddle/internal/http"
	"github.com/askelund/huddle/internal/metrics"
	"github.com/askelund/huddle/internal/notifier/slack"
	"github.com/askelund/huddle/internal/roster"
	"github.com/askelund/huddle/internal/schedule"
	"github.com/charmbracelet/log"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	rosterStore := roster.New(db)
	eventStore := schedule.New(db)
	attendanceStore := attendance.New(db)
	galleryStore := gallery.New(db)

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, cfg.BaseURL, metricsSvc)
	authSvc := auth.New(rosterStore, metricsSvc)

	s := server.NewServer(
		rosterStore,
		eventStore,
		attendanceStore,
		galleryStore,
		authSvc,
		metricsSvc,
		metricsHandler,
		notifier,
		cfg,
	)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
