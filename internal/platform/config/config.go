package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Dolphin external ledger API.
	DolphinBaseURL   string
	DolphinPageIndex string // base64 login blob, keep in env
	DolphinUsername  string
	DolphinCmpSeq    int
	DolphinTimeout   time.Duration

	// Legacy SQL warehouse for the other companies' trial balance.
	WarehouseDatabaseURL string

	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DOLPHIN_BASE_URL", "")
	viper.SetDefault("DOLPHIN_PAGEINDEX", "")
	viper.SetDefault("DOLPHIN_USERNAME", "MagedS")
	viper.SetDefault("DOLPHIN_CMPSEQ", 0)
	viper.SetDefault("DOLPHIN_TIMEOUT", "60s")
	viper.SetDefault("WAREHOUSE_PGSQL_URL", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.DolphinBaseURL = viper.GetString("DOLPHIN_BASE_URL")
	if cfg.DolphinBaseURL == "" {
		log.Println("Warning: DOLPHIN_BASE_URL not set. Trial-balance sync will fail until configured.")
	}
	cfg.DolphinPageIndex = viper.GetString("DOLPHIN_PAGEINDEX")
	if cfg.DolphinPageIndex == "" {
		log.Println("Warning: DOLPHIN_PAGEINDEX not set. Dolphin login will fail until configured.")
	}
	cfg.DolphinUsername = viper.GetString("DOLPHIN_USERNAME")
	cfg.DolphinCmpSeq = viper.GetInt("DOLPHIN_CMPSEQ")

	timeoutStr := viper.GetString("DOLPHIN_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 60 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for DOLPHIN_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.DolphinTimeout = timeout

	cfg.WarehouseDatabaseURL = viper.GetString("WAREHOUSE_PGSQL_URL")
	if cfg.WarehouseDatabaseURL == "" {
		log.Println("Warning: WAREHOUSE_PGSQL_URL not set. Warehouse sync disabled.")
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
