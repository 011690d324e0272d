package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
	LogFormatECS     = "ecs"
)

type Config struct {
	Env         string `mapstructure:"ENV"`
	DataFile    string `mapstructure:"DATA_FILE"`
	MaxPatients int    `mapstructure:"MAX_PATIENTS"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogFormat   string `mapstructure:"LOG_FORMAT"`
	MetricsFile string `mapstructure:"METRICS_FILE"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("DATA_FILE", "patients.csv")
	v.SetDefault("MAX_PATIENTS", 30)
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "") // auto-detect from ENV

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("DATA_FILE")
	v.BindEnv("MAX_PATIENTS")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("LOG_FORMAT")
	v.BindEnv("METRICS_FILE")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ResolvedLogFormat returns LOG_FORMAT if set, otherwise console output in
// development and JSON everywhere else.
func (c *Config) ResolvedLogFormat() string {
	if c.LogFormat != "" {
		return strings.ToLower(c.LogFormat)
	}
	if c.IsDev() {
		return LogFormatConsole
	}
	return LogFormatJSON
}

// Validate checks the configuration before any file is touched.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("DATA_FILE is required")
	}
	if c.MaxPatients < 0 {
		return fmt.Errorf("MAX_PATIENTS must be zero (unlimited) or positive, got %d", c.MaxPatients)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level: %w", c.LogLevel, err)
	}
	switch c.ResolvedLogFormat() {
	case LogFormatConsole, LogFormatJSON, LogFormatECS:
	default:
		return fmt.Errorf("LOG_FORMAT must be %q, %q, or %q, got %q",
			LogFormatConsole, LogFormatJSON, LogFormatECS, c.LogFormat)
	}
	return nil
}
