package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/petsphere/petsphere-api/internal/auth"
	"github.com/petsphere/petsphere-api/internal/handlers"
	"github.com/petsphere/petsphere-api/internal/routes"
	"github.com/petsphere/petsphere-api/internal/store"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "pet-sphere-secret"
		log.Println("WARNING: SESSION_SECRET is not set, using the development default.")
	}

	// --- Store Setup ---
	// All state is in-memory and lives for the lifetime of the process.
	db := store.New()
	db.SeedDemoCatalog()
	log.Println("In-memory store initialized with demo catalog")

	// --- Session Setup ---
	sessions := auth.NewSessionManager([]byte(secret), auth.DefaultSessionTTL)
	gateway := &auth.Gateway{Store: db, Sessions: sessions}

	// --- Background Worker ---
	// Prune expired session records once a day, off the request path.
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if n := sessions.PruneExpired(); n > 0 {
				log.Printf("Session pruning removed %d expired sessions", n)
			}
		}
	}()

	// --- Application Setup ---
	app := &handlers.Handlers{
		Store: db,
		Auth:  gateway,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, gateway)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting PetSphere API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
