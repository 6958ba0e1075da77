package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string // empty disables the HTTP surface
	DBPath        string
	RulesPath     string
	LogPath       string
	XLSXPath      string
	PriceURL      string
	PriceSelector string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:          get("PORT", ""),
		DBPath:        get("DB_PATH", "agromon.db"),
		RulesPath:     get("RULES_PATH", "loss_rules.json"),
		LogPath:       get("LOG_PATH", "registro_monitoramento.txt"),
		XLSXPath:      get("XLSX_PATH", "relatorio_perdas.xlsx"),
		PriceURL:      get("PRICE_URL", ""),
		PriceSelector: get("PRICE_SELECTOR", ".price-per-ton"),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
