package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// EnvPrefix is prepended to every environment variable, e.g. CAS_SERVER_PORT
const EnvPrefix = "CAS"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Cards     CardsConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CardsConfig controls card content and layout
type CardsConfig struct {
	PageSize    int      `mapstructure:"page_size"`
	StoreLabel  string   `mapstructure:"store_label"`
	Competitors []string `mapstructure:"competitors"`
	DefaultRows int      `mapstructure:"default_rows"`
	MaxRows     int      `mapstructure:"max_rows"`
}

// CacheConfig holds print sheet cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// Load loads configuration from .env, environment variables and config files
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path searches
// the default locations, where a missing file is not an error.
func LoadFile(path string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/compare-and-save/")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; environment variables and defaults apply
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads ./.env if present. Variables already set in the
// environment win over the file.
func loadEnvFile() error {
	err := gotenv.Load(".env")
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*", "http://127.0.0.1:*"})

	// Card defaults
	v.SetDefault("cards.page_size", 4)
	v.SetDefault("cards.store_label", "Super 1")
	v.SetDefault("cards.competitors", []string{"Winco", "Safeway/Albertsons"})
	v.SetDefault("cards.default_rows", 10)
	v.SetDefault("cards.max_rows", 100)

	// Print sheets only need to live long enough to open the print view
	v.SetDefault("cache.ttl", "1h")

	v.SetDefault("ratelimit.per_ip", 100)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cards.PageSize < 1 {
		return fmt.Errorf("cards page size must be at least 1, got: %d", config.Cards.PageSize)
	}

	if strings.TrimSpace(config.Cards.StoreLabel) == "" {
		return fmt.Errorf("cards store label is required (set %s_CARDS_STORE_LABEL)", EnvPrefix)
	}

	if len(config.Cards.Competitors) == 0 {
		return fmt.Errorf("at least one competitor is required")
	}
	for _, c := range config.Cards.Competitors {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("competitor names must not be blank")
		}
	}

	if config.Cards.MaxRows < 1 {
		return fmt.Errorf("cards max rows must be at least 1, got: %d", config.Cards.MaxRows)
	}
	if config.Cards.DefaultRows < 1 || config.Cards.DefaultRows > config.Cards.MaxRows {
		return fmt.Errorf("cards default rows must be between 1 and %d, got: %d", config.Cards.MaxRows, config.Cards.DefaultRows)
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %s", config.Cache.TTL)
	}

	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("rate limit per IP must not be negative, got: %d", config.RateLimit.PerIP)
	}

	switch config.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log format must be 'console' or 'json', got: %s", config.Log.Format)
	}

	return nil
}
