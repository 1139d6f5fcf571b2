package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// IdentityHeader is the request header carrying the access proxy's
	// identity assertion JWT.
	IdentityHeader string

	// CapacityHours is the billable capacity per utilization window.
	CapacityHours decimal.Decimal
	// UtilizationWindowDays is the trailing billing window; 7 or 30.
	UtilizationWindowDays int

	// RateLimit is a ulule/limiter formatted rate, e.g. "120-M".
	RateLimit string

	// AllowedOrigins is the CORS allow-list for the dashboard frontend.
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("IDENTITY_HEADER", "Cf-Access-Jwt-Assertion")
	viper.SetDefault("CAPACITY_HOURS", "160")
	viper.SetDefault("UTILIZATION_WINDOW_DAYS", 30)
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173"})

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.IdentityHeader = viper.GetString("IDENTITY_HEADER")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")

	capacity, err := decimal.NewFromString(viper.GetString("CAPACITY_HOURS"))
	if err != nil || !capacity.IsPositive() {
		return nil, fmt.Errorf("invalid CAPACITY_HOURS %q: must be a positive decimal", viper.GetString("CAPACITY_HOURS"))
	}
	cfg.CapacityHours = capacity

	cfg.UtilizationWindowDays = viper.GetInt("UTILIZATION_WINDOW_DAYS")
	if cfg.UtilizationWindowDays != 7 && cfg.UtilizationWindowDays != 30 {
		return nil, fmt.Errorf("invalid UTILIZATION_WINDOW_DAYS %d: must be 7 or 30", cfg.UtilizationWindowDays)
	}

	return cfg, nil
}
