package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	CatalogPath    string
	LedgerDBPath   string
	InvoiceDir     string
	LogLevel       string
	ReportCacheTTL time.Duration
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	reportCacheTTLStr := getEnv("REPORT_CACHE_TTL", "15m")
	reportCacheTTL, err := time.ParseDuration(reportCacheTTLStr)
	if err != nil {
		log.Printf("WARNING: Invalid REPORT_CACHE_TTL format '%s'. Using default 15m. Error: %v", reportCacheTTLStr, err)
		reportCacheTTL = 15 * time.Minute
	}

	Cfg = &AppConfig{
		CatalogPath:    getEnv("CATALOG_PATH", "./products.txt"),
		LedgerDBPath:   getEnv("LEDGER_DB_PATH", "./wecare.db"),
		InvoiceDir:     getEnv("INVOICE_DIR", "."),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ReportCacheTTL: reportCacheTTL,
	}

	log.Printf("Configuration loaded: CatalogPath=%s, LedgerDBPath=%s, InvoiceDir=%s, LogLevel=%s",
		Cfg.CatalogPath, Cfg.LedgerDBPath, Cfg.InvoiceDir, Cfg.LogLevel)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}
