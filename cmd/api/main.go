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

	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/config"
	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/db"
	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/repo"
	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setupLogger(cfg.LogFormat)

	database, err := db.Connect(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	slog.Info("connected to database")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Statistics refresher runs in the background until shutdown.
	refresher := &scheduler.StatsRefresher{
		Donors: repo.NewDonorRepo(database),
		Posts:  repo.NewSupplyPostRepo(database),
		Stats:  repo.NewStatisticRepo(database),
	}
	go func() {
		if err := scheduler.Run(ctx, cfg.StatsRefreshSpec, refresher); err != nil {
			slog.Error("stats scheduler stopped", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(database, cfg),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
			slog.Info("server starting with TLS", "port", cfg.Port)
			serverErrors <- srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			slog.Info("server starting", "port", cfg.Port)
			serverErrors <- srv.ListenAndServe()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}

	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Fatalf("Graceful shutdown failed: %v", err)
		}
		slog.Info("server stopped gracefully")
	}
}

// setupLogger installs the process-wide slog handler per LOG_FORMAT.
func setupLogger(format string) {
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))
}
