package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// BalanceTolerance is the maximum absolute debit/credit imbalance an
	// entry may carry and still post.
	BalanceTolerance decimal.Decimal

	// ReconMatchWindowDays is how far apart a bank line and a book
	// transaction may be dated and still auto-match. Zero means same-day.
	ReconMatchWindowDays int

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("BALANCE_TOLERANCE", "0.01")
	viper.SetDefault("RECON_MATCH_WINDOW_DAYS", 0)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	toleranceStr := viper.GetString("BALANCE_TOLERANCE")
	tolerance, err := decimal.NewFromString(toleranceStr)
	if err != nil || tolerance.IsNegative() {
		tolerance = decimal.NewFromFloat(0.01)
		log.Printf("Warning: Invalid value for BALANCE_TOLERANCE ('%s'). Defaulting to %s.\n", toleranceStr, tolerance.String())
	}
	cfg.BalanceTolerance = tolerance

	cfg.ReconMatchWindowDays = viper.GetInt("RECON_MATCH_WINDOW_DAYS")
	if cfg.ReconMatchWindowDays < 0 {
		log.Printf("Warning: Negative RECON_MATCH_WINDOW_DAYS (%d). Defaulting to same-day matching.\n", cfg.ReconMatchWindowDays)
		cfg.ReconMatchWindowDays = 0
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
