package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Store driver names
const (
	StoreDriverCSV      = "csv"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	Port        string
	FrontendURL string
	// Record store selection
	StoreDriver string // csv | sqlite | postgres
	DataDir     string // csv backend: directory holding the collection files
	SQLitePath  string // sqlite backend: database file
	DBUrl       string // postgres backend: connection string
}

func LoadConfig() (*Config, error) {
	// .env is a local convenience; absent in production.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		StoreDriver: getEnv("STORE_DRIVER", StoreDriverCSV),
		DataDir:     getEnv("DATA_DIR", "./data"),
		SQLitePath:  getEnv("SQLITE_PATH", "./jobboard.db"),
		DBUrl:       getEnv("DATABASE_URL", ""),
	}

	if cfg.StoreDriver == StoreDriverPostgres && cfg.DBUrl == "" {
		log.Println("WARNING: STORE_DRIVER is postgres but DATABASE_URL is missing. Startup will fail.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
