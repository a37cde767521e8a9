package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/vishnupriyaraya/hotel-reservation/config"
	"github.com/vishnupriyaraya/hotel-reservation/internal/app"
	"github.com/vishnupriyaraya/hotel-reservation/internal/clock"
	"github.com/vishnupriyaraya/hotel-reservation/internal/storage/postgres"
	transporthttp "github.com/vishnupriyaraya/hotel-reservation/internal/transport/http"
	"github.com/vishnupriyaraya/hotel-reservation/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := log.Default()

	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Printf("WARN: failed to load .env: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.ApplyEnv()

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		log.Fatalf("parse database url: %v", err)
	}
	poolCfg.MaxConns = cfg.Database.MaxConns

	pool, err := pgxpool.NewWithConfig(startupCtx, poolCfg)
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

	bookingRepo := postgres.NewBookingRepository(pool)
	bookingSvc := app.NewBookingService(bookingRepo, clock.NewSystem())
	catalogRepo := postgres.NewCatalogRepository(pool)
	catalogSvc := app.NewCatalogService(catalogRepo)
	reportRepo := postgres.NewReportRepository(pool)
	reportSvc := app.NewReportService(reportRepo)

	limit := rate.Limit(cfg.Server.RateLimitPerSec)
	burst := cfg.Server.RateLimitBurst

	mux := http.NewServeMux()
	mux.HandleFunc("/health", transporthttp.HealthHandler)
	mux.Handle("/rooms", transporthttp.RateLimit(limit, burst, transporthttp.HandleRooms(catalogSvc)))
	mux.Handle("/rooms/schedule", transporthttp.HandleRoomSchedule(reportSvc))
	mux.Handle("/availability", transporthttp.HandleAvailability(catalogSvc))
	mux.Handle("/bookings", transporthttp.RateLimit(limit, burst, transporthttp.HandleBookings(bookingSvc, reportSvc)))
	mux.Handle("/bookings/", transporthttp.RateLimit(limit, burst, transporthttp.HandleCancelBooking(bookingSvc)))
	mux.Handle("/", transporthttp.NotFoundHandler())

	handler := transporthttp.RequestLogger(transporthttp.CORS(cfg.Server.CORSOrigins, mux), logger)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: handler,
	}

	log.Printf("api listening on :%s", cfg.Server.Port)

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
