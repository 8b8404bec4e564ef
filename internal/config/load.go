package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is prepended to every environment variable, e.g. TRIVIA_SERVER_PORT.
const envPrefix = "TRIVIA"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration against its struct tags and the rules
// that span sections.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Source.Kind == SourcePostgres && cfg.Database.URL == "" {
		return errors.New("config validation failed: database.url is required when source.kind is postgres")
	}

	return nil
}

// setDefaults registers a default for every key so that AutomaticEnv can
// override any of them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.request_timeout_seconds", 60)

	v.SetDefault("source.kind", SourceJService)
	v.SetDefault("source.base_url", "https://jservice.io")
	v.SetDefault("source.timeout_seconds", 10)
	v.SetDefault("source.max_retries", 3)
	v.SetDefault("source.retry_delay_seconds", 1)

	v.SetDefault("database.url", "")

	v.SetDefault("board.single_categories", 6)
	v.SetDefault("board.single_daily_doubles", 1)
	v.SetDefault("board.double_categories", 6)
	v.SetDefault("board.double_daily_doubles", 2)
	v.SetDefault("board.category_id_min", 7000)
	v.SetDefault("board.category_id_max", 15000)
	v.SetDefault("board.seed", 0)
}
