package main

import (
	"fmt"
	"net/http"

	"github.com/geoattend/geoattend-backend-go/internal/config"
	appHTTP "github.com/geoattend/geoattend-backend-go/internal/handler/http"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/database"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/jwt"
	"github.com/geoattend/geoattend-backend-go/internal/repository/postgresql"
	attendanceService "github.com/geoattend/geoattend-backend-go/internal/service/attendance"
	authService "github.com/geoattend/geoattend-backend-go/internal/service/auth"
	geofenceService "github.com/geoattend/geoattend-backend-go/internal/service/geofence"
	networkService "github.com/geoattend/geoattend-backend-go/internal/service/network"
	scheduleService "github.com/geoattend/geoattend-backend-go/internal/service/schedule"
	userService "github.com/geoattend/geoattend-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	geofenceRepo := postgresql.NewGeofenceRepository(db)
	networkRepo := postgresql.NewNetworkRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	incidenceRepo := postgresql.NewIncidenceRepository(db)
	txRunner := postgresql.NewTxRunner(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	userSvc := userService.NewUserService(userRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo)
	geofenceSvc := geofenceService.NewGeofenceService(geofenceRepo)
	networkSvc := networkService.NewNetworkService(networkRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		txRunner,
		eventRepo,
		incidenceRepo,
		geofenceRepo,
		networkRepo,
		scheduleRepo,
		userRepo,
		cfg.Attendance,
	)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	geofenceHandler := appHTTP.NewGeofenceHandler(geofenceSvc)
	networkHandler := appHTTP.NewNetworkHandler(networkSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		authHandler,
		userHandler,
		scheduleHandler,
		geofenceHandler,
		networkHandler,
		attendanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
