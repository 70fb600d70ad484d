package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"fundplanner/internal/domain"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Data   DataConfig   `yaml:"data"`
	Plan   PlanConfig   `yaml:"plan"`
	Export ExportConfig `yaml:"export"`
	Api    ApiConfig    `yaml:"api"`
}

type DataConfig struct {
	PricesPath string `yaml:"prices_path"`
}

// PlanConfig holds the defaults used when a run does not supply its
// own parameters
type PlanConfig struct {
	MonthlyInvestment float64 `yaml:"monthly_investment"`
	InterestRate      float64 `yaml:"interest_rate"`
	Horizons          string  `yaml:"horizons"`
	Currency          string  `yaml:"currency"`
}

type ExportConfig struct {
	AllocationPath string `yaml:"allocation_path"`
	StatisticsPath string `yaml:"statistics_path"`
	ChartDir       string `yaml:"chart_dir"`
}

type ApiConfig struct {
	Port int `yaml:"port"`
}

// LoadConfig reads the yaml config at path. A .env file is loaded first
// if present, and env vars override the file. A missing config file
// yields the defaults
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("FUNDPLAN_PRICES_PATH"); v != "" {
		cfg.Data.PricesPath = v
	}
	if v := os.Getenv("FUNDPLAN_CURRENCY"); v != "" {
		cfg.Plan.Currency = v
	}
	if v := os.Getenv("FUNDPLAN_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid FUNDPLAN_PORT %q: %w", v, err)
		}
		cfg.Api.Port = port
	}
	return nil
}

func setDefaults(cfg *Config) {
	if cfg.Data.PricesPath == "" {
		cfg.Data.PricesPath = "nifty50_closing_prices.csv"
	}
	if cfg.Plan.MonthlyInvestment <= 0 {
		cfg.Plan.MonthlyInvestment = domain.DefaultMonthlyInvestment
	}
	if cfg.Plan.InterestRate == 0 {
		cfg.Plan.InterestRate = domain.DefaultInterestRate
	}
	if cfg.Plan.Horizons == "" {
		cfg.Plan.Horizons = domain.DefaultHorizons
	}
	if cfg.Plan.Currency == "" {
		cfg.Plan.Currency = "INR"
	}
	if cfg.Export.AllocationPath == "" {
		cfg.Export.AllocationPath = "investment_ratios.csv"
	}
	if cfg.Export.StatisticsPath == "" {
		cfg.Export.StatisticsPath = "instrument_statistics.csv"
	}
	if cfg.Export.ChartDir == "" {
		cfg.Export.ChartDir = "charts"
	}
	if cfg.Api.Port == 0 {
		cfg.Api.Port = 3009
	}
}
