package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Logger     LoggerConfig     `mapstructure:"logger"`
	Purchasing PurchasingConfig `mapstructure:"purchasing"`
	Auth       AuthConfig       `mapstructure:"auth"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// PurchasingConfig holds purchase order form defaults
type PurchasingConfig struct {
	NumberPrefix         string  `mapstructure:"number_prefix"`
	DefaultDueDays       int     `mapstructure:"default_due_days"`
	DefaultTaxPercentage float64 `mapstructure:"default_tax_percentage"`
	SeedDemoData         bool    `mapstructure:"seed_demo_data"`
}

// AuthConfig holds the edit capability configuration. Callers presenting one
// of the editor keys may create orders and change statuses; with no keys
// configured every caller can (dev mode).
type AuthConfig struct {
	EditorKeys []string `mapstructure:"editor_keys"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "stdout")
	viper.SetDefault("logger.format", "console")

	viper.SetDefault("purchasing.number_prefix", "PO-")
	viper.SetDefault("purchasing.default_due_days", 30)
	viper.SetDefault("purchasing.default_tax_percentage", 18.0)
	viper.SetDefault("purchasing.seed_demo_data", false)
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Purchasing.NumberPrefix == "" {
		return fmt.Errorf("purchasing number prefix must not be empty")
	}
	if c.Purchasing.DefaultDueDays < 0 {
		return fmt.Errorf("purchasing default due days must not be negative, got %d", c.Purchasing.DefaultDueDays)
	}
	if c.Purchasing.DefaultTaxPercentage < 0 || c.Purchasing.DefaultTaxPercentage > 100 {
		return fmt.Errorf("purchasing default tax percentage must be between 0 and 100, got %v", c.Purchasing.DefaultTaxPercentage)
	}
	return nil
}
