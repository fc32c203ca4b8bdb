// Package config provides configuration management functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/peekport/planning-engine/internal/domain"
)

const defaultAPIToken = "dev-token"

// Config holds application configuration
type Config struct {
	GRPCPort  int
	HTTPPort  int
	APIToken  string
	DBConnStr string
	LogLevel  string
	LogPretty bool
	// SeedDemo creates the demo portfolio and goals at startup
	SeedDemo bool
	Engine   domain.EngineParams
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		GRPCPort:  getEnvAsInt("GRPC_PORT", 8080),
		HTTPPort:  getEnvAsInt("HTTP_PORT", 8081),
		APIToken:  getEnv("API_TOKEN", defaultAPIToken),
		DBConnStr: loadDBConnStr(),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("LOG_PRETTY", false),
		SeedDemo:  getEnvAsBool("SEED_DEMO", false),
	}

	engine, err := loadEngineParams()
	if err != nil {
		return nil, err
	}
	cfg.Engine = engine

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDBConnStr returns DB_CONN_STR, or builds it from individual vars (Docker friendly)
func loadDBConnStr() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "peekport"),
	)
}

// loadEngineParams starts from the reference parameters and applies env overrides
func loadEngineParams() (domain.EngineParams, error) {
	params := domain.DefaultEngineParams()

	rates := map[string]domain.RiskLevel{
		"RETURN_CONSERVATIVE": domain.RiskConservative,
		"RETURN_MODERATE":     domain.RiskModerate,
		"RETURN_AGGRESSIVE":   domain.RiskAggressive,
	}
	for key, level := range rates {
		value, ok, err := getEnvAsDecimal(key)
		if err != nil {
			return domain.EngineParams{}, err
		}
		if ok {
			params.ReturnRates[level] = value
		}
	}

	overrides := map[string]*decimal.Decimal{
		"REBALANCE_TOLERANCE":          &params.Rebalancing.ToleranceBand,
		"SEVERITY_MEDIUM":              &params.Rebalancing.SeverityMedium,
		"SEVERITY_HIGH":                &params.Rebalancing.SeverityHigh,
		"TRADING_FEE_RATE":             &params.Rebalancing.FeeRate,
		"DEFAULT_MONTHLY_CONTRIBUTION": &params.DefaultMonthlyContribution,
	}
	for key, target := range overrides {
		value, ok, err := getEnvAsDecimal(key)
		if err != nil {
			return domain.EngineParams{}, err
		}
		if ok {
			*target = value
		}
	}

	params.SimulationMonths = getEnvAsInt("SIMULATION_MONTHS", params.SimulationMonths)
	params.Rebalancing.Currency = getEnv("DISPLAY_CURRENCY", params.Rebalancing.Currency)

	return params, nil
}

// Validate rejects overrides that would make the engine meaningless
func (c *Config) Validate() error {
	one := decimal.NewFromInt(1)
	for level, rate := range c.Engine.ReturnRates {
		if rate.IsNegative() || rate.GreaterThanOrEqual(one) {
			return fmt.Errorf("annual return for %s must be in [0, 1), got %s", level, rate)
		}
	}

	rb := c.Engine.Rebalancing
	if rb.ToleranceBand.IsNegative() {
		return errors.New("rebalance tolerance cannot be negative")
	}
	if !rb.SeverityMedium.LessThan(rb.SeverityHigh) {
		return errors.New("medium severity threshold must be below the high threshold")
	}
	if rb.FeeRate.IsNegative() {
		return errors.New("trading fee rate cannot be negative")
	}
	if money.GetCurrency(rb.Currency) == nil {
		return fmt.Errorf("unknown display currency %q", rb.Currency)
	}
	if c.Engine.SimulationMonths < 0 {
		return errors.New("simulation months cannot be negative")
	}
	if c.Engine.SimulationMonths > domain.MaxSimulationMonths {
		return fmt.Errorf("simulation months cannot exceed %d", domain.MaxSimulationMonths)
	}
	if c.Engine.DefaultMonthlyContribution.IsNegative() {
		return errors.New("default monthly contribution cannot be negative")
	}
	if c.APIToken == "" {
		return errors.New("API token cannot be empty")
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDecimal reports ok=false when the variable is unset and an error when it is malformed
func getEnvAsDecimal(key string) (decimal.Decimal, bool, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return decimal.Zero, false, nil
	}
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, true, nil
}
