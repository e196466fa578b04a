package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MiguelPimienta19/mcc-web/internal/app"
	"github.com/MiguelPimienta19/mcc-web/internal/clock"
	"github.com/MiguelPimienta19/mcc-web/internal/config"
	"github.com/MiguelPimienta19/mcc-web/internal/export"
	"github.com/MiguelPimienta19/mcc-web/internal/storage/postgres"
	transporthttp "github.com/MiguelPimienta19/mcc-web/internal/transport/http"
	"github.com/MiguelPimienta19/mcc-web/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := log.Default()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	weekStart, err := cfg.WeekStartDay()
	if err != nil {
		log.Fatalf("week start: %v", err)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(startupCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect to db: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		log.Fatalf("db ping: %v", err)
	}
	if err := migrations.Apply(startupCtx, pool); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	eventRepo := postgres.NewEventRepository(pool)
	allowlistRepo := postgres.NewAllowlistRepository(pool)

	eventSvc := app.NewEventService(eventRepo, clock.NewSystem())
	scheduleSvc := app.NewScheduleService(eventRepo, weekStart)
	gate := app.NewGate(allowlistRepo)
	allowlistSvc := app.NewAllowlistService(allowlistRepo)
	encoder := export.NewEncoder(cfg.SiteURL, clock.NewSystem())

	mux := http.NewServeMux()
	mux.HandleFunc("/health", transporthttp.HealthHandler)
	mux.Handle("/events", transporthttp.HandleEvents(scheduleSvc, eventSvc, gate, cfg.OpenEventCreation, logger))
	mux.Handle("/events/", transporthttp.HandleEventByID(eventSvc, encoder, gate, logger))
	mux.Handle("/admin/add", transporthttp.HandleAdminAdd(allowlistSvc, gate, logger))
	mux.Handle("/admin/remove", transporthttp.HandleAdminRemove(allowlistSvc, gate, logger))
	mux.Handle("/admin/list", transporthttp.HandleAdminList(allowlistSvc, gate, logger))
	mux.Handle("/auth/check", transporthttp.HandleAuthCheck(gate))
	mux.Handle("/", transporthttp.NotFoundHandler())

	handler := transporthttp.RequestLogger(transporthttp.CORS(cfg.CORSOrigins, mux), logger)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	log.Printf("api listening on :%s", cfg.Port)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
		}
	case <-stopCtx.Done():
		log.Printf("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("server shutdown error: %v", err)
	}
	log.Printf("server stopped")
}
