package config

import (
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultGeminiModel is the fast, low-latency text model used for generation
const DefaultGeminiModel = "gemini-1.5-flash"

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Logging     LoggingConfig
	Gemini      GeminiConfig
	RateLimit   RateLimitConfig
}

// LoggingConfig holds logrus configuration
type LoggingConfig struct {
	Level  string
	Format string // "text" or "json"
}

// GeminiConfig holds the generative model configuration
type GeminiConfig struct {
	APIKey string
	Model  string
}

// RateLimitConfig holds limits for the local HTTP server
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", EnvDevelopment)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", LogFormatText)
	viper.SetDefault("GEMINI_MODEL", DefaultGeminiModel)
	viper.SetDefault("RATE_LIMIT_RPS", 5.0)
	viper.SetDefault("RATE_LIMIT_BURST", 10)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Logging: LoggingConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Gemini: GeminiConfig{
			APIKey: viper.GetString("GEMINI_API_KEY"),
			Model:  viper.GetString("GEMINI_MODEL"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Defaults returns the built-in configuration. The Gemini key and model are
// still taken from the environment so a bad unrelated setting does not
// disable generation.
func Defaults() *Config {
	return &Config{
		Environment: EnvDevelopment,
		Port:        "8081",
		Logging: LoggingConfig{
			Level:  "info",
			Format: LogFormatText,
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  GetEnv("GEMINI_MODEL", DefaultGeminiModel),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 5,
			Burst:             10,
		},
	}
}

// Validate checks the loaded values. A missing Gemini API key is not an error
// here: it is reported per request so the handler can answer with a JSON body.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Environment, validation.Required,
			validation.In(EnvDevelopment, EnvTest, EnvProduction)),
		validation.Field(&c.Port, validation.Required, is.Port),
		validation.Field(&c.Logging),
		validation.Field(&c.Gemini),
		validation.Field(&c.RateLimit),
	)
}

func (l LoggingConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.Required,
			validation.In("trace", "debug", "info", "warn", "warning", "error")),
		validation.Field(&l.Format, validation.In(LogFormatText, LogFormatJSON)),
	)
}

func (g GeminiConfig) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Model, validation.Required),
	)
}

func (r RateLimitConfig) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RequestsPerSecond, validation.Required, validation.Min(0.1)),
		validation.Field(&r.Burst, validation.Required, validation.Min(1)),
	)
}

// ConfigureLogging applies the logging section to the global logrus logger
func ConfigureLogging(cfg *Config) {
	level, err := logrus.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Logging.Format == LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
