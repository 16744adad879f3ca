package http

import (
	"log/slog"
	"os"

	"github.com/chafiq1992/attendance-app/internal/handler/http/middleware"
	"github.com/chafiq1992/attendance-app/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	attendanceHandler AttendanceHandler,
	eventHandler EventHandler,
	ledgerHandler LedgerHandler,
	adminHandler AdminHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-app"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Kiosk and employee surfaces are open: the terminal on the shop
		// floor has no credentials.
		r.Route("/attendance", func(r chi.Router) {
			r.Post("/punch", attendanceHandler.Punch)
			r.Get("/today/{employeeID}", attendanceHandler.Today)
			r.Get("/overview", attendanceHandler.Overview)
			r.Get("/directory", attendanceHandler.Directory)
			r.Get("/sheet/{employeeID}", attendanceHandler.MonthlySheet)
			r.Get("/summary/{employeeID}", attendanceHandler.Summary)
			r.Get("/periods/{employeeID}", attendanceHandler.Periods)
		})

		r.Post("/admin/login", adminHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Route("/events", func(r chi.Router) {
				r.Get("/", eventHandler.List)
				r.Post("/", eventHandler.Create)
				r.Patch("/{id}", eventHandler.Update)
				r.Delete("/{id}", eventHandler.Delete)
			})

			r.Route("/ledger", func(r chi.Router) {
				r.Get("/", ledgerHandler.List)
				r.Post("/advance", ledgerHandler.RecordAdvance)
				r.Post("/order", ledgerHandler.RecordOrder)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Get("/settings", adminHandler.GetSettings)
				r.Post("/settings", adminHandler.UpdateSetting)
				r.Get("/users", adminHandler.ListUsers)
				r.Post("/users", adminHandler.CreateUser)
				r.Delete("/users/{id}", adminHandler.DeleteUser)
				r.Get("/logs", adminHandler.Logs)
			})
		})
	})
	return r
}
