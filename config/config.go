package config

import (
    "log"
    "os"
)

type Config struct {
    DatabaseURL   string
    JWTSecret     string
    Port          string
    Environment   string
    AdminUsername string
    AdminEmail    string
    AdminPassword string
}

func Load() *Config {
    return &Config{
        DatabaseURL:   getEnv("DATABASE_URL", "rentadmin.db"),
        JWTSecret:     getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-in-production"),
        Port:          getEnv("PORT", "8080"),
        Environment:   getEnv("ENVIRONMENT", "development"),
        AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
        AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
        AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
    }
}

func getEnv(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

func ValidateConfig(cfg *Config) {
    if len(cfg.JWTSecret) < 32 {
        log.Printf("WARNING: JWT_SECRET should be at least 32 characters for security")
    }
    if cfg.Environment == "production" && cfg.AdminPassword == "admin123" {
        log.Printf("WARNING: Change ADMIN_PASSWORD in production environment")
    }
}
