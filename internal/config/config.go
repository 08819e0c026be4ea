// Package config collects process configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost string
	DBUser string
	DBPass string
	DBName string
	DBPort string

	JWTSecret  string
	ListenAddr string
}

// Load reads the .env file if present and builds the config from the
// environment. Missing database settings or JWT secret are fatal for the
// caller; Load just reports them.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: .env file not found, using system environment variables")
	}

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPass:     os.Getenv("DB_PASS"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		ListenAddr: os.Getenv("LISTEN_ADDR"),
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBPass == "" || cfg.DBName == "" || cfg.DBPort == "" {
		return nil, errors.New("database env missing — check .env file")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is missing in .env")
	}
	return cfg, nil
}
