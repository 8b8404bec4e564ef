package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Source   SourceConfig   `mapstructure:"source"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Board    BoardConfig    `mapstructure:"board"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                  int    `mapstructure:"port"                    validate:"required,gt=0,lt=65536"`
	LogLevel              string `mapstructure:"log_level"               validate:"required,oneof=debug info warn error"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"gt=0"`
}

// Clue source kinds.
const (
	SourceJService = "jservice"
	SourcePostgres = "postgres"
)

// SourceConfig selects and configures the upstream clue source.
type SourceConfig struct {
	Kind              string `mapstructure:"kind"                validate:"required,oneof=jservice postgres"`
	BaseURL           string `mapstructure:"base_url"            validate:"required,url"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds"     validate:"gt=0"`
	MaxRetries        int    `mapstructure:"max_retries"         validate:"gte=0,lte=10"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=0"`
}

// DatabaseConfig contains the settings for the Postgres clue mirror.
// URL is required when the source kind is postgres.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// BoardConfig contains the shape of generated games.
type BoardConfig struct {
	SingleCategories   int    `mapstructure:"single_categories"    validate:"gt=0"`
	SingleDailyDoubles int    `mapstructure:"single_daily_doubles" validate:"gte=0,ltefield=SingleCategories"`
	DoubleCategories   int    `mapstructure:"double_categories"    validate:"gt=0"`
	DoubleDailyDoubles int    `mapstructure:"double_daily_doubles" validate:"gte=0,ltefield=DoubleCategories"`
	CategoryIDMin      int    `mapstructure:"category_id_min"      validate:"gte=0"`
	CategoryIDMax      int    `mapstructure:"category_id_max"      validate:"gtfield=CategoryIDMin"`
	Seed               uint64 `mapstructure:"seed"`
}
