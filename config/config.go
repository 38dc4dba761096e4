package config

import (
	"encoding/base64"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	MONGOSTRING   string
	PASETO_SECRET string
	Timezone      string
}

// LoadConfig loads configuration from .env file
func LoadConfig() *AppConfig {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file (might not exist in production): %v", err)
	}

	secretBase64 := getEnv("PASETO_SECRET", "")
	if secretBase64 == "" {
		log.Fatal("PASETO_SECRET belum di setting di env. coba setting dulu")
	}

	// Lakukan decoding untuk validasi panjang byte
	secretBytes, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		log.Fatalf("PASETO_SECRET in .env is not a valid Base64 URL-encoded string: %v", err)
	}

	if len(secretBytes) != 32 {
		log.Fatalf("PASETO_SECRET (decoded) must be exactly 32 bytes long. Current length: %d", len(secretBytes))
	}

	return &AppConfig{
		Port:          getEnv("PORT", "3000"),
		MONGOSTRING:   getEnv("MONGOSTRING", ""),
		PASETO_SECRET: secretBase64,
		Timezone:      getEnv("TIMEZONE", "Asia/Jakarta"),
	}
}

// Location mengembalikan zona waktu kerja yang dipakai untuk jendela harian
// absensi dan batas jam 09:00 / 17:00.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Warning: timezone %q tidak dikenal, fallback ke waktu lokal server: %v", c.Timezone, err)
		return time.Local
	}
	return loc
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
