package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.), security settings
// - default: Values common across all environments (timezone, intervals, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
}

type StoreConfig struct {
	// DataFile is the canonical snapshot location; writes go through a
	// temp-then-rename sequence next to it.
	DataFile         string `envconfig:"STORE_DATA_FILE" default:"data/store.json"`
	DiscountInterval int    `envconfig:"STORE_DISCOUNT_INTERVAL" default:"5"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Store.DiscountInterval < 1 {
		return Config{}, fmt.Errorf("STORE_DISCOUNT_INTERVAL must be >= 1, got %d", cfg.Store.DiscountInterval)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			DataFile:         "data/store.json",
			DiscountInterval: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
