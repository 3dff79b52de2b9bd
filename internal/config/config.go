package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// PricingConfig holds the form defaults for the five model inputs.
type PricingConfig struct {
	Spot       float64 `yaml:"spot"`
	Strike     float64 `yaml:"strike"`
	Maturity   float64 `yaml:"maturity"`
	Volatility float64 `yaml:"volatility"`
	Rate       float64 `yaml:"rate"`
}

// SweepConfig holds the heatmap sweep defaults and limits.
type SweepConfig struct {
	MinSpot  float64 `yaml:"min_spot"`
	MaxSpot  float64 `yaml:"max_spot"`
	MinVol   float64 `yaml:"min_vol"`
	MaxVol   float64 `yaml:"max_vol"`
	Steps    int     `yaml:"steps"`
	MaxSteps int     `yaml:"max_steps"`
}

type Config struct {
	// Server settings
	Port string

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
	// Form defaults for the pricing inputs
	Pricing PricingConfig `yaml:"pricing"`
	// Heatmap sweep defaults
	Sweep SweepConfig `yaml:"sweep"`
}

type YAMLConfig struct {
	Port    string        `yaml:"port"`
	Logging LoggingConfig `yaml:"logging"`
	Pricing PricingConfig `yaml:"pricing"`
	Sweep   SweepConfig   `yaml:"sweep"`
}

// Load builds the config from environment variables, then overlays any
// values present in config.yaml. A missing file or bad YAML falls back to
// the environment/default values silently, same as a missing env var.
func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Logging: LoggingConfig{
			LogLevel: getEnv("LOG_LEVEL", "info"),
			LogFile:  getEnv("LOG_FILE", "tarpon.log"),
		},
		// Textbook defaults: ATM option, one year out, 20 vol, 5% rate
		Pricing: PricingConfig{
			Spot:       getEnvFloat("DEFAULT_SPOT", 100),
			Strike:     getEnvFloat("DEFAULT_STRIKE", 100),
			Maturity:   getEnvFloat("DEFAULT_MATURITY", 1),
			Volatility: getEnvFloat("DEFAULT_VOLATILITY", 0.2),
			Rate:       getEnvFloat("DEFAULT_RATE", 0.05),
		},
		Sweep: SweepConfig{
			MinSpot:  getEnvFloat("SWEEP_MIN_SPOT", 50),
			MaxSpot:  getEnvFloat("SWEEP_MAX_SPOT", 150),
			MinVol:   getEnvFloat("SWEEP_MIN_VOL", 0.1),
			MaxVol:   getEnvFloat("SWEEP_MAX_VOL", 0.5),
			Steps:    getEnvInt("SWEEP_STEPS", 10),
			MaxSteps: getEnvInt("SWEEP_MAX_STEPS", 50),
		},
	}

	if yamlCfg := loadYAMLConfig(); yamlCfg != nil {
		if yamlCfg.Port != "" {
			cfg.Port = yamlCfg.Port
		}
		if yamlCfg.Logging.LogLevel != "" {
			cfg.Logging.LogLevel = yamlCfg.Logging.LogLevel
		}
		if yamlCfg.Logging.LogFile != "" {
			cfg.Logging.LogFile = yamlCfg.Logging.LogFile
		}

		if yamlCfg.Pricing.Spot > 0 {
			cfg.Pricing.Spot = yamlCfg.Pricing.Spot
		}
		if yamlCfg.Pricing.Strike > 0 {
			cfg.Pricing.Strike = yamlCfg.Pricing.Strike
		}
		if yamlCfg.Pricing.Maturity > 0 {
			cfg.Pricing.Maturity = yamlCfg.Pricing.Maturity
		}
		if yamlCfg.Pricing.Volatility > 0 {
			cfg.Pricing.Volatility = yamlCfg.Pricing.Volatility
		}
		if yamlCfg.Pricing.Rate != 0 {
			cfg.Pricing.Rate = yamlCfg.Pricing.Rate
		}

		if yamlCfg.Sweep.MinSpot > 0 {
			cfg.Sweep.MinSpot = yamlCfg.Sweep.MinSpot
		}
		if yamlCfg.Sweep.MaxSpot > 0 {
			cfg.Sweep.MaxSpot = yamlCfg.Sweep.MaxSpot
		}
		if yamlCfg.Sweep.MinVol > 0 {
			cfg.Sweep.MinVol = yamlCfg.Sweep.MinVol
		}
		if yamlCfg.Sweep.MaxVol > 0 {
			cfg.Sweep.MaxVol = yamlCfg.Sweep.MaxVol
		}
		if yamlCfg.Sweep.Steps > 0 {
			cfg.Sweep.Steps = yamlCfg.Sweep.Steps
		}
		if yamlCfg.Sweep.MaxSteps > 0 {
			cfg.Sweep.MaxSteps = yamlCfg.Sweep.MaxSteps
		}
	}

	// The steps cap bounds per-request work; keep the default inside it.
	if cfg.Sweep.Steps > cfg.Sweep.MaxSteps {
		cfg.Sweep.Steps = cfg.Sweep.MaxSteps
	}

	return cfg
}

func loadYAMLConfig() *YAMLConfig {
	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil
	}

	var yamlCfg YAMLConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil
	}

	return &yamlCfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
