package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/geoattend/geoattend-backend-go/internal/config"
	"github.com/geoattend/geoattend-backend-go/internal/domain/geofence"
	"github.com/geoattend/geoattend-backend-go/internal/domain/network"
	"github.com/geoattend/geoattend-backend-go/internal/domain/user"
	"github.com/geoattend/geoattend-backend-go/internal/fixtures"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/database"
	"github.com/geoattend/geoattend-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the reference data a fresh deployment needs: the starter
// geofence, the authorized network registry, and an initial admin
// account. Safe to run repeatedly; existing rows are left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()

	seedNetworks(ctx, postgresql.NewNetworkRepository(db))
	seedGeofence(ctx, postgresql.NewGeofenceRepository(db))
	seedAdmin(ctx, postgresql.NewUserRepository(db))
}

func seedNetworks(ctx context.Context, repo network.NetworkRepository) {
	for _, n := range fixtures.GetDefaultNetworks() {
		_, err := repo.Create(ctx, n)
		switch {
		case err == nil:
			fmt.Printf("Network created: %s (SSID %s, BSSID %s)\n", n.Name, n.SSID, n.BSSID)
		case errors.Is(err, network.ErrBSSIDExists):
			fmt.Printf("Network already exists: %s\n", n.Name)
		default:
			log.Fatal("Error seeding network: ", err)
		}
	}
}

func seedGeofence(ctx context.Context, repo geofence.GeofenceRepository) {
	_, err := repo.GetActive(ctx)
	if err == nil {
		fmt.Println("Active geofence already present, skipping")
		return
	}
	if !errors.Is(err, geofence.ErrNoActiveGeofence) {
		log.Fatal("Error checking geofence: ", err)
	}

	g := fixtures.GetDefaultGeofence()
	if _, err := repo.Create(ctx, g); err != nil {
		log.Fatal("Error seeding geofence: ", err)
	}
	fmt.Printf("Geofence created: %s (%.4f, %.4f) r=%.0fm\n", g.Name, g.CenterLat, g.CenterLng, g.RadiusMeters)
}

func seedAdmin(ctx context.Context, repo user.UserRepository) {
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error hashing password: ", err)
	}

	_, err = repo.Create(ctx, user.User{
		ID:           uuid.New().String(),
		Name:         "Administrator",
		Email:        "admin@geoattend.local",
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
		Active:       true,
	})
	switch {
	case err == nil:
		fmt.Println("Admin user created: admin@geoattend.local (change the password)")
	case errors.Is(err, user.ErrEmailExists):
		fmt.Println("Admin user already exists, skipping")
	default:
		log.Fatal("Error seeding admin user: ", err)
	}
}
