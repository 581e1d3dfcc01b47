// Package config loads runtime configuration from the environment, an
// optional .env file, and an optional config.yaml in the working directory.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/iPascal619/python-project-generator/internal/errs"
)

// ErrMissingAPIKey reports that no Groq credential was configured.
var ErrMissingAPIKey = errors.New("GROQ_API_KEY is not set")

// Defaults applied when neither the environment nor a config file sets a
// value.
const (
	DefaultBaseURL       = "https://api.groq.com/openai/v1"
	DefaultModel         = "llama-3-70b-8192"
	DefaultMaxTokens     = 1500
	DefaultTemperature   = 0.9
	DefaultOutputDir     = "projects"
	DefaultTimeoutSecs   = 30
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultServerAddress = ":8080"
)

// Config holds every setting a projgen process reads.
type Config struct {
	GroqAPIKey    string  `mapstructure:"GROQ_API_KEY"`
	BaseURL       string  `mapstructure:"GROQ_BASE_URL"`
	Model         string  `mapstructure:"GROQ_MODEL"`
	MaxTokens     int     `mapstructure:"MAX_TOKENS"`
	Temperature   float64 `mapstructure:"TEMPERATURE"`
	OutputDir     string  `mapstructure:"OUTPUT_DIR"`
	TimeoutSecs   int     `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel      string  `mapstructure:"LOG_LEVEL"`
	LogFormat     string  `mapstructure:"LOG_FORMAT"`
	ServerAddress string  `mapstructure:"SERVER_ADDRESS"`
}

// Load reads configuration. A .env file in the working directory is
// loaded first when present; real deployments set the environment
// directly. A config.yaml is honored but optional.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	// Registering defaults makes the keys visible to Unmarshal, so
	// environment-only values are picked up too.
	v.SetDefault("GROQ_API_KEY", "")
	v.SetDefault("GROQ_BASE_URL", DefaultBaseURL)
	v.SetDefault("GROQ_MODEL", DefaultModel)
	v.SetDefault("MAX_TOKENS", DefaultMaxTokens)
	v.SetDefault("TEMPERATURE", DefaultTemperature)
	v.SetDefault("OUTPUT_DIR", DefaultOutputDir)
	v.SetDefault("REQUEST_TIMEOUT", DefaultTimeoutSecs)
	v.SetDefault("LOG_LEVEL", DefaultLogLevel)
	v.SetDefault("LOG_FORMAT", DefaultLogFormat)
	v.SetDefault("SERVER_ADDRESS", DefaultServerAddress)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errs.Newf(errs.KindConfig, "reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errs.Newf(errs.KindConfig, "decoding config: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields every generation run depends on. It runs
// before any client is built, so a missing key never reaches the network.
func (c *Config) Validate() error {
	if c.GroqAPIKey == "" {
		return errs.New(errs.KindConfig, ErrMissingAPIKey)
	}
	if c.MaxTokens <= 0 {
		return errs.New(errs.KindConfig, fmt.Errorf("MAX_TOKENS must be positive, got %d", c.MaxTokens))
	}
	if c.TimeoutSecs <= 0 {
		return errs.New(errs.KindConfig, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %d", c.TimeoutSecs))
	}
	return nil
}

// RequestTimeout returns the per-attempt HTTP timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}
