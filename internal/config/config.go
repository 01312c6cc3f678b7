package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the schedule service
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Export    ExportConfig    `mapstructure:"export"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Port         string `mapstructure:"SERVER_PORT"`
	Host         string `mapstructure:"SERVER_HOST"`
	Env          string `mapstructure:"ENV"`
	ReadTimeout  string `mapstructure:"SERVER_READ_TIMEOUT"`
	WriteTimeout string `mapstructure:"SERVER_WRITE_TIMEOUT"`
}

type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     string `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type CacheConfig struct {
	ScheduleTTL string `mapstructure:"SCHEDULE_CACHE_TTL"`
	AssetTTL    string `mapstructure:"ASSET_CACHE_TTL"`
}

type ExportConfig struct {
	LetterheadURL string `mapstructure:"LETTERHEAD_URL"`
	FetchTimeout  string `mapstructure:"LETTERHEAD_FETCH_TIMEOUT"`
}

type SchedulerConfig struct {
	// Cron spec (with seconds) for the letterhead refresh job.
	Spec string `mapstructure:"SCHEDULER_SPEC"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"LOG_LEVEL"`
	Format string `mapstructure:"LOG_FORMAT"`
}

// Load reads configuration from environment variables and files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "30s")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SCHEDULE_CACHE_TTL", "24h")
	viper.SetDefault("ASSET_CACHE_TTL", "168h")
	viper.SetDefault("LETTERHEAD_URL", "https://images.weserv.nl/?url=tasatop.com.pe/wp-content/uploads/elementor/thumbs/logos-17-r320c27cra7m7te2fafiia4mrbqd3aqj7ifttvy33g.png")
	viper.SetDefault("LETTERHEAD_FETCH_TIMEOUT", "10s")
	viper.SetDefault("SCHEDULER_SPEC", "0 0 * * * *")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read from .env file (optional)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./deployments")

	// Don't fail if .env file doesn't exist
	_ = viper.ReadInConfig()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	for name, value := range map[string]string{
		"SERVER_READ_TIMEOUT":      c.Server.ReadTimeout,
		"SERVER_WRITE_TIMEOUT":     c.Server.WriteTimeout,
		"SCHEDULE_CACHE_TTL":       c.Cache.ScheduleTTL,
		"ASSET_CACHE_TTL":          c.Cache.AssetTTL,
		"LETTERHEAD_FETCH_TIMEOUT": c.Export.FetchTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("%s must be a valid duration: %w", name, err)
		}
	}

	if c.Export.LetterheadURL != "" {
		if _, err := url.ParseRequestURI(c.Export.LetterheadURL); err != nil {
			return fmt.Errorf("LETTERHEAD_URL must be a valid URL: %w", err)
		}
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// RedisAddr returns the host:port address for the Redis client
func (c *Config) RedisAddr() string {
	return c.Redis.Host + ":" + c.Redis.Port
}

// GetReadTimeout returns the server read timeout as duration
func (c *Config) GetReadTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.ReadTimeout)
	return d
}

// GetWriteTimeout returns the server write timeout as duration
func (c *Config) GetWriteTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.WriteTimeout)
	return d
}

// GetScheduleCacheTTL returns the schedule cache TTL as duration
func (c *Config) GetScheduleCacheTTL() time.Duration {
	d, _ := time.ParseDuration(c.Cache.ScheduleTTL)
	return d
}

// GetAssetCacheTTL returns the letterhead asset cache TTL as duration
func (c *Config) GetAssetCacheTTL() time.Duration {
	d, _ := time.ParseDuration(c.Cache.AssetTTL)
	return d
}

// GetFetchTimeout returns the letterhead fetch timeout as duration
func (c *Config) GetFetchTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Export.FetchTimeout)
	return d
}
