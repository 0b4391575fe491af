package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/geoattend/geoattend-backend-go/internal/config"
	"github.com/geoattend/geoattend-backend-go/internal/handler/http/middleware"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	scheduleHandler ScheduleHandler,
	geofenceHandler GeofenceHandler,
	networkHandler NetworkHandler,
	attendanceHandler AttendanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "geoattend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/register", attendanceHandler.Register)
				r.Get("/today", attendanceHandler.TodayStatus)
				r.Get("/history", attendanceHandler.MyHistory)

				// Supervisors and admins
				r.Group(func(r chi.Router) {
					r.Use(middleware.ReviewerOnly)
					r.Get("/history/{userId}", attendanceHandler.UserHistory)
					r.Get("/report", attendanceHandler.Report)
					r.Get("/incidences", attendanceHandler.ListIncidences)
					r.Post("/incidences/justification", attendanceHandler.CreateJustification)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/my", scheduleHandler.MySchedules)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", scheduleHandler.Create)
					r.Put("/{id}", scheduleHandler.Update)
					r.Delete("/{id}", scheduleHandler.Delete)
					r.Get("/user/{userId}", scheduleHandler.ListByUser)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", userHandler.List)
					r.Post("/", userHandler.Create)
					r.Get("/{id}", userHandler.Get)
					r.Put("/{id}", userHandler.Update)
					r.Delete("/{id}", userHandler.Deactivate)
				})

				r.Route("/geofences", func(r chi.Router) {
					r.Get("/", geofenceHandler.List)
					r.Post("/", geofenceHandler.Create)
					r.Put("/{id}", geofenceHandler.Update)
					r.Delete("/{id}", geofenceHandler.Delete)
				})

				r.Route("/networks", func(r chi.Router) {
					r.Get("/", networkHandler.List)
					r.Post("/", networkHandler.Create)
					r.Put("/{id}", networkHandler.Update)
					r.Delete("/{id}", networkHandler.Delete)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return r
}
