package main

import (
    "log"
    "net/http"

    "rentadmin-go/config"
    "rentadmin-go/database"
    "rentadmin-go/handlers"
    "rentadmin-go/middleware"
    "rentadmin-go/utils"

    "github.com/gorilla/mux"
    "github.com/joho/godotenv"
)

func main() {
    // Load environment variables
    if err := godotenv.Load(); err != nil {
        log.Println("No .env file found")
    }

    // Initialize config
    cfg := config.Load()
    config.ValidateConfig(cfg)

    // Initialize JWT
    if err := utils.InitializeJWT(cfg.JWTSecret); err != nil {
        log.Fatal("Failed to initialize JWT:", err)
    }

    // Initialize database
    db, err := database.Initialize(cfg.DatabaseURL)
    if err != nil {
        log.Fatal("Failed to initialize database:", err)
    }

    if err := database.SeedAdmin(db, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
        log.Fatal("Failed to seed admin user:", err)
    }
    if cfg.Environment == "development" {
        if err := database.SeedTestListings(db); err != nil {
            log.Fatal("Failed to seed test listings:", err)
        }
    }

    // Initialize handlers with config
    h := handlers.NewHandlers(db, cfg)

    // Initialize router
    r := mux.NewRouter()

    // Apply global middleware
    r.Use(middleware.CORS)
    r.Use(middleware.RateLimit)

    // Public routes
    r.HandleFunc("/api/auth/login", h.Login).Methods("POST")
    r.HandleFunc("/api/auth/logout", h.Logout).Methods("POST")
    r.HandleFunc("/api/health", h.HealthCheck).Methods("GET")

    // Protected routes
    protected := r.PathPrefix("/api").Subrouter()
    protected.Use(middleware.JWTAuth)
    protected.HandleFunc("/auth/me", h.Me).Methods("GET")

    // Admin routes: listing moderation and audit trail
    admin := protected.NewRoute().Subrouter()
    admin.Use(middleware.AdminAuth)
    admin.HandleFunc("/listings", h.GetListings).Methods("GET")
    admin.HandleFunc("/listings/{id}", h.GetListing).Methods("GET")
    admin.HandleFunc("/listings/{id}", h.UpdateListing).Methods("PUT")
    admin.HandleFunc("/listings/{id}", h.DeleteListing).Methods("DELETE")
    admin.HandleFunc("/listings/{id}/approve", h.ApproveListing).Methods("POST")
    admin.HandleFunc("/listings/{id}/reject", h.RejectListing).Methods("POST")
    admin.HandleFunc("/audit", h.GetAuditLogs).Methods("GET")

    port := cfg.Port
    if port == "" {
        port = "8080"
    }

    log.Printf("Server starting on port %s", port)
    log.Printf("Environment: %s", cfg.Environment)
    log.Printf("Database: %s", cfg.DatabaseURL)
    log.Fatal(http.ListenAndServe(":"+port, r))
}
