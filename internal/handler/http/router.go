package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/urlopy/urlopy-backend-go/internal/domain/auth"
	"github.com/urlopy/urlopy-backend-go/internal/handler/http/middleware"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/jwt"
)

// RouterConfig carries the dependencies shared by every route group.
type RouterConfig struct {
	Logger           *slog.Logger
	AllowedOrigins   []string
	JWTService       jwt.Service
	AuthService      auth.AuthService
	AuthHandler      AuthHandler
	UserHandler      UserHandler
	LeaveHandler     LeaveHandler
	DashboardHandler DashboardHandler
	WebHandler       WebHandler
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	verifier := jwtauth.Verifier(cfg.JWTService.JWTAuth())

	r.Route("/api/v1", func(r chi.Router) {
		allowedOrigins := cfg.AllowedOrigins
		if len(allowedOrigins) == 0 {
			allowedOrigins = []string{"http://localhost:3000"}
		}
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowCredentials: true,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			MaxAge:           300,
		}))
		r.Use(chiMiddleware.AllowContentType("application/json"))

		r.Post("/auth/login", cfg.AuthHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(verifier)
			r.Use(middleware.AuthRequired(cfg.JWTService, cfg.AuthService))

			r.Post("/auth/logout", cfg.AuthHandler.Logout)
			r.Get("/me", cfg.AuthHandler.Me)
			r.Get("/dashboard", cfg.DashboardHandler.Get)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", cfg.UserHandler.List)
				r.With(middleware.AdminOnly).Post("/", cfg.UserHandler.Create)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", cfg.LeaveHandler.List)
				r.Post("/", cfg.LeaveHandler.Create)
				r.Get("/my", cfg.LeaveHandler.ListMine)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", cfg.LeaveHandler.Get)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Put("/", cfg.LeaveHandler.Update)
						r.Delete("/", cfg.LeaveHandler.Delete)
						r.Post("/approve", cfg.LeaveHandler.Approve)
						r.Post("/reject", cfg.LeaveHandler.Reject)
					})
				})
			})
		})
	})

	// HTML pages
	r.Group(func(r chi.Router) {
		r.Get("/login", cfg.WebHandler.LoginPage)
		r.Post("/login", cfg.WebHandler.Login)
		r.With(verifier).Post("/logout", cfg.WebHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(verifier)
			r.Use(middleware.SessionRequired(cfg.JWTService, cfg.AuthService, "/login"))

			r.Get("/dashboard", cfg.WebHandler.Dashboard)
			r.Get("/leaves/html", cfg.WebHandler.Leaves)
			r.Get("/leaves/my", cfg.WebHandler.MyLeaves)
			r.Get("/leaves/form", cfg.WebHandler.LeaveForm)
			r.Post("/leaves/form", cfg.WebHandler.SubmitLeave)
			r.Get("/leaves/{id}/edit", cfg.WebHandler.EditLeaveForm)
			r.Post("/leaves/{id}/edit", cfg.WebHandler.EditLeave)
			r.Post("/leaves/{id}/delete", cfg.WebHandler.DeleteLeave)
			r.Post("/leaves/{id}/approve", cfg.WebHandler.ApproveLeave)
			r.Post("/leaves/{id}/reject", cfg.WebHandler.RejectLeave)
		})
	})

	return r
}
