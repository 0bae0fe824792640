package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urlopy/urlopy-backend-go/internal/config"
	appHTTP "github.com/urlopy/urlopy-backend-go/internal/handler/http"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/cron"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/database"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/email"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/jwt"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/logger"
	"github.com/urlopy/urlopy-backend-go/internal/repository/postgresql"
	authService "github.com/urlopy/urlopy-backend-go/internal/service/auth"
	dashboardService "github.com/urlopy/urlopy-backend-go/internal/service/dashboard"
	leaveService "github.com/urlopy/urlopy-backend-go/internal/service/leave"
	userService "github.com/urlopy/urlopy-backend-go/internal/service/user"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	log := logger.New(os.Stdout, cfg.App.Env, cfg.App.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	userRepo := postgresql.NewUserRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	notifier, err := email.NewLeaveNotifier(cfg.SMTP)
	if err != nil {
		return fmt.Errorf("failed to initialize email notifier: %w", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.SecureCookie)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	userSvc := userService.NewUserService(userRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, userRepo, notifier)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, nil, nil)

	webHandler, err := appHTTP.NewWebHandler(JWTService, authSvc, userSvc, leaveSvc, dashboardSvc)
	if err != nil {
		return err
	}

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:           log,
		AllowedOrigins:   cfg.App.CORSAllowedOrigins,
		JWTService:       JWTService,
		AuthService:      authSvc,
		AuthHandler:      appHTTP.NewAuthHandler(JWTService, authSvc),
		UserHandler:      appHTTP.NewUserHandler(userSvc),
		LeaveHandler:     appHTTP.NewLeaveHandler(leaveSvc),
		DashboardHandler: appHTTP.NewDashboardHandler(dashboardSvc),
		WebHandler:       webHandler,
	})

	scheduler := cron.NewScheduler(ctx)
	cron.NewSessionJobs(JWTService).RegisterJobs(scheduler, time.Hour)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}
