// pkg/config/config.go

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type BusinessConfig struct {
	Name           string `mapstructure:"name"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

type InvoiceConfig struct {
	NumberPrefix string `mapstructure:"number_prefix"`
	SeedNumber   string `mapstructure:"seed_number"`
	OutputDir    string `mapstructure:"output_dir"`
}

type DatabaseConfig struct {
	// DSN is a SQLite file path, or a postgres:// URL for a shared
	// database.
	DSN string `mapstructure:"dsn"`
}

type Config struct {
	Business BusinessConfig `mapstructure:"business"`
	Invoice  InvoiceConfig  `mapstructure:"invoice"`
	Database DatabaseConfig `mapstructure:"database"`
}

// Load reads configuration from the given file path (e.g.
// "config.yaml"). A missing file is fine: every key has a default, and
// environment variables with the INVGEN prefix override both, e.g.
// INVGEN_DATABASE_DSN.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("business.name", "Brunch chef")
	v.SetDefault("business.currency_symbol", "£")
	v.SetDefault("invoice.number_prefix", "SG")
	v.SetDefault("invoice.seed_number", "SG7852")
	v.SetDefault("invoice.output_dir", "invoices")
	v.SetDefault("database.dsn", "invoices.db")

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("INVGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
