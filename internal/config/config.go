// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"skuforge/internal/core/types"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// DatabaseConfig holds PostgreSQL settings.
type DatabaseConfig struct {
	DSN      string `mapstructure:"dsn"`
	MaxConns int32  `mapstructure:"max_conns"`
	MinConns int32  `mapstructure:"min_conns"`
}

// AuthConfig holds admin authentication settings.
// A single admin account is sufficient for the editor API; full RBAC is
// intentionally out of scope.
type AuthConfig struct {
	JWTSecret         string `mapstructure:"jwt_secret"`
	TokenTTLMinutes   int    `mapstructure:"token_ttl_minutes"`
	AdminEmail        string `mapstructure:"admin_email"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"` // bcrypt
}

// PricingConfig holds the rates applied by the price pipeline.
// Rates are fractions, not percentages: 0.30 means +30%.
type PricingConfig struct {
	MarkupRate string `mapstructure:"markup_rate"`
	TaxRate    string `mapstructure:"tax_rate"`
}

// Rates parses the configured rates into decimal values.
func (c PricingConfig) Rates() (markup, tax types.Money, err error) {
	markup, err = types.NewMoneyFromString(c.MarkupRate)
	if err != nil {
		return markup, tax, fmt.Errorf("parse markup_rate %q: %w", c.MarkupRate, err)
	}
	tax, err = types.NewMoneyFromString(c.TaxRate)
	if err != nil {
		return markup, tax, fmt.Errorf("parse tax_rate %q: %w", c.TaxRate, err)
	}
	return markup, tax, nil
}

// Load reads configuration from the given file (optional) and environment.
// Environment variables use the SKUFORGE_ prefix with underscores,
// e.g. SKUFORGE_DATABASE_DSN overrides database.dsn.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("database.max_conns", 25)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("auth.token_ttl_minutes", 60)
	v.SetDefault("pricing.markup_rate", "0.30")
	v.SetDefault("pricing.tax_rate", "0.15")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("SKUFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database.dsn is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}

	return &cfg, nil
}
