package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bento-order-system/internal/config"
	"bento-order-system/internal/database"
	"bento-order-system/internal/logger"
	"bento-order-system/internal/messaging"
	"bento-order-system/internal/models"
	"bento-order-system/internal/services/menu"
	"bento-order-system/internal/services/order"
)

func main() {
	var (
		port           = flag.Int("port", 0, "HTTP port (overrides PORT)")
		migrationsPath = flag.String("migrations", "migrations", "Path to SQL migration files")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
	}

	log := logger.New("bento-order-system")
	requestID := logger.GenerateRequestID()

	log.Info("service_started", "Starting bento order system", requestID, map[string]interface{}{
		"port": cfg.HTTP.Port,
	})

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		cancel()
	}()

	if err := run(ctx, cfg, log, *migrationsPath); err != nil {
		log.Error("service_failed", "Bento order system failed", requestID, err, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, migrationsPath string) error {
	requestID := logger.GenerateRequestID()

	// Initialize database
	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("db_connected", "Connected to PostgreSQL database", requestID, nil)

	// Run database migrations
	if err := db.RunMigrations(ctx, migrationsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed the default catalog on first run
	menuService := menu.NewService(db, log)
	if err := menuService.SeedIfEmpty(ctx, models.DefaultCatalog()); err != nil {
		return fmt.Errorf("failed to seed menu catalog: %w", err)
	}

	// Initialize messaging when a broker is configured
	var notifier order.Notifier
	if cfg.NotificationsEnabled() {
		conn, err := messaging.New(cfg, log)
		if err != nil {
			return fmt.Errorf("failed to initialize messaging: %w", err)
		}
		defer conn.Close()

		log.Info("rabbitmq_connected", "Connected to RabbitMQ", requestID, nil)
		notifier = messaging.NewPublisher(conn, log)
	}

	// Initialize services and handler
	orderService := order.NewService(db, notifier, log)
	handler := order.NewHandler(orderService, menuService, log, cfg.HTTP.StaticDir)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.SetupRoutes(),
	}

	go func() {
		log.Info("server_started", fmt.Sprintf("HTTP server listening on port %d", cfg.HTTP.Port), requestID, map[string]interface{}{
			"port": cfg.HTTP.Port,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", "HTTP server failed", requestID, err, nil)
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}
