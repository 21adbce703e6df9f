package config

import "os"

// Config carries everything the server wires at startup. DatabaseURL and
// RedisAddr are optional; the service falls back to in-memory carts and
// uncached upstream fetches when they are empty.
type Config struct {
	Addr          string
	UpstreamURL   string
	JWTSecret     string
	DatabaseURL   string
	RedisAddr     string
	CloudinaryURL string
	AllowOrigins  string
}

func Load() Config {
	return Config{
		Addr:          envOr("DAMBODY_ADDR", ":8080"),
		UpstreamURL:   envOr("UPSTREAM_API_URL", "http://localhost:5001"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		AllowOrigins:  envOr("ALLOW_ORIGINS", "*"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
