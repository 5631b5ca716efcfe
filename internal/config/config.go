// Package config loads service configuration with precedence
// ENV > config file > defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "MOVIE_CATALOG"

// Config holds every runtime setting of the catalog service.
type Config struct {
	HTTPPort              string        `mapstructure:"http_port" validate:"required"`
	MongoURI              string        `mapstructure:"mongo_uri" validate:"required"`
	MongoDatabase         string        `mapstructure:"mongo_database" validate:"required"`
	MongoConnectTimeout   time.Duration `mapstructure:"mongo_connect_timeout" validate:"gt=0"`
	MongoOperationTimeout time.Duration `mapstructure:"mongo_operation_timeout" validate:"gt=0"`
	CORSAllowedOrigins    []string      `mapstructure:"cors_allowed_origins"`
	ShutdownTimeout       time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// Load reads configuration from an optional file path plus MOVIE_CATALOG_*
// environment variables, falling back to defaults for anything unset.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("http_port", "5000")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_database", "movies")
	v.SetDefault("mongo_connect_timeout", "5s")
	v.SetDefault("mongo_operation_timeout", "5s")
	v.SetDefault("cors_allowed_origins", []string{"*"})
	v.SetDefault("shutdown_timeout", "10s")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
