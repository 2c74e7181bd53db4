package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseDSN      string
	JWTSecret        string
	TokenLifetime    time.Duration
	RefreshLifetime  time.Duration
	CORSAllowOrigins string
	OpenTime         string
	CloseTime        string
	SeedData         bool
	AdminUsername    string
	AdminEmail       string
	AdminPassword    string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	Version string
}

// Load reads .env when present and resolves the full runtime configuration.
// JWT_SECRET has no default on purpose.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:             envOrDefault("PORT", "8003"),
		DatabaseDSN:      resolvePostgresDSN(),
		JWTSecret:        strings.TrimSpace(os.Getenv("JWT_SECRET")),
		CORSAllowOrigins: envOrDefault("CORS_ALLOW_ORIGINS", "http://localhost, http://127.0.0.1"),
		OpenTime:         envOrDefault("OPEN_TIME", "10:00"),
		CloseTime:        envOrDefault("CLOSE_TIME", "23:00"),
		AdminUsername:    envOrDefault("ADMIN_USERNAME", "admin"),
		AdminEmail:       envOrDefault("ADMIN_EMAIL", "admin@restaurant.local"),
		AdminPassword:    envOrDefault("ADMIN_PASSWORD", "Admin@123"),

		CloudinaryCloudName: strings.TrimSpace(os.Getenv("CLOUDINARY_CLOUD_NAME")),
		CloudinaryAPIKey:    strings.TrimSpace(os.Getenv("CLOUDINARY_API_KEY")),
		CloudinaryAPISecret: strings.TrimSpace(os.Getenv("CLOUDINARY_API_SECRET")),

		Version: envOrDefault("VERSION", "0.1.0"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	tokenMinutes, err := envOrDefaultInt("TOKEN_LIFETIME_MINUTES", 60)
	if err != nil {
		return nil, err
	}
	cfg.TokenLifetime = time.Duration(tokenMinutes) * time.Minute

	refreshHours, err := envOrDefaultInt("REFRESH_LIFETIME_HOURS", 168)
	if err != nil {
		return nil, err
	}
	cfg.RefreshLifetime = time.Duration(refreshHours) * time.Hour

	cfg.SeedData = envOrDefault("SEED_DATA", "true") == "true"

	if _, err := time.Parse("15:04", cfg.OpenTime); err != nil {
		return nil, fmt.Errorf("OPEN_TIME must be HH:MM: %w", err)
	}
	if _, err := time.Parse("15:04", cfg.CloseTime); err != nil {
		return nil, fmt.Errorf("CLOSE_TIME must be HH:MM: %w", err)
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envOrDefaultInt(key string, def int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return n, nil
}

func resolvePostgresDSN() string {
	raw := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if raw != "" {
		return raw
	}

	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "5432")
	user := envOrDefault("DB_USER", "postgres")
	pass := envOrDefault("DB_PASSWORD", "postgres")
	name := envOrDefault("DB_NAME", "restaurant_db")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name,
	)
}
