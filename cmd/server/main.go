package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-booking-api/internal/config"
	"hospital-booking-api/internal/database"
	"hospital-booking-api/internal/middleware"
	"hospital-booking-api/internal/repository"
	"hospital-booking-api/internal/router"
	"hospital-booking-api/internal/service"
	"hospital-booking-api/pkg/cache"
	"hospital-booking-api/pkg/logger"
	"hospital-booking-api/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital-booking-api",
		Short: "Hospital directory and appointment booking API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(createAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck
			return database.Migrate(db, log)
		},
	}
}

func createAdminCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck
			initJWT(cfg)

			authService := service.NewAuthService(repository.NewUserRepo(db), repository.NewAuditRepo(db), log)
			admin, err := authService.CreateAdmin(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", admin.Username, admin.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "admin username")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// bootstrap loads configuration, builds the logger and opens the database
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	db, err := database.Connect(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, db, nil
}

func initJWT(cfg *config.Config) {
	utils.InitJWT(cfg.JWT.AccessSecret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
}

func runServer() error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck
	log.Info("Configuration loaded", zap.String("mode", cfg.Server.GinMode))

	initJWT(cfg)

	if err := database.Migrate(db, log); err != nil {
		return err
	}

	// Rate limiting is optional; without Redis the limiter stays nil
	var limiter middleware.RateLimiter
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			log.Warn("Redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			limiter = rdb
		}
	}

	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)

	services := router.Services{
		Hospitals:    service.NewHospitalService(hospitalRepo, auditRepo, log),
		Appointments: service.NewAppointmentService(appointmentRepo, hospitalRepo, log),
		Auth:         service.NewAuthService(userRepo, auditRepo, log),
		Exports:      service.NewExportService(hospitalRepo, appointmentRepo, log),
	}
	worker := service.NewTokenCleanupWorker(userRepo, cfg.Worker.TokenCleanupInterval, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go worker.Start(ctx)

	r := router.Setup(cfg, services, limiter, func() error { return database.Ping(db) }, log)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("port", cfg.Server.Port), zap.String("api_prefix", cfg.Server.APIPrefix))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("Server exited")
	return nil
}
