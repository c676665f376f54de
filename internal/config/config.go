package config

import (
	"os"
	"strconv"
)

// Config holds every runtime setting the server reads from the environment.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string

	AdminUser string
	AdminPass string

	CORSOrigins string

	RazorpayKeyID     string
	RazorpayKeySecret string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

func Load() Config {
	return Config{
		Addr:        get("CITY_ROOTS_ADDR", ":8080"),
		DatabaseURL: get("DATABASE_URL", ""),
		JWTSecret:   get("JWT_SECRET", ""),

		AdminUser: get("ADMIN_USER", ""),
		AdminPass: get("ADMIN_PASS", ""),

		CORSOrigins: get("CORS_ORIGINS", "*"),

		RazorpayKeyID:     get("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: get("RAZORPAY_KEY_SECRET", ""),

		SMTPHost: get("SMTP_HOST", ""),
		SMTPPort: getInt("SMTP_PORT", 587),
		SMTPUser: get("SMTP_USER", ""),
		SMTPPass: get("SMTP_PASS", ""),
		SMTPFrom: get("SMTP_FROM", "orders@cityroots.in"),
	}
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
