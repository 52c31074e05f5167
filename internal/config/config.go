// Package config loads application configuration from an optional config.yaml
// plus BIZGEN_-prefixed environment variables, and initializes the global
// logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Google    GoogleConfig    `yaml:"google" mapstructure:"google"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Search    SearchConfig    `yaml:"search" mapstructure:"search"`
	Generate  GenerateConfig  `yaml:"generate" mapstructure:"generate"`
	LLM       LLMConfig       `yaml:"llm" mapstructure:"llm"`
	Export    ExportConfig    `yaml:"export" mapstructure:"export"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// GoogleConfig holds Places API credentials.
type GoogleConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// AnthropicConfig holds Anthropic API credentials.
type AnthropicConfig struct {
	Key string `yaml:"key" mapstructure:"key"`
}

// LLMConfig configures the model-backed generation path.
type LLMConfig struct {
	Model            string  `yaml:"model" mapstructure:"model"`
	Count            int     `yaml:"count" mapstructure:"count"`
	MaxTokens        int64   `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature      float64 `yaml:"temperature" mapstructure:"temperature"`
	RequestDelaySecs float64 `yaml:"request_delay_secs" mapstructure:"request_delay_secs"`
	Retries          int     `yaml:"retries" mapstructure:"retries"`
}

// SearchConfig configures the API-backed scrape path.
type SearchConfig struct {
	Location            string  `yaml:"location" mapstructure:"location"`
	Radius              int     `yaml:"radius" mapstructure:"radius"`
	RequestDelaySecs    float64 `yaml:"request_delay_secs" mapstructure:"request_delay_secs"`
	PaginationDelaySecs float64 `yaml:"pagination_delay_secs" mapstructure:"pagination_delay_secs"`
	MaxPages            int     `yaml:"max_pages" mapstructure:"max_pages"`
	Retries             int     `yaml:"retries" mapstructure:"retries"`
	FetchDetails        bool    `yaml:"fetch_details" mapstructure:"fetch_details"`
}

// GenerateConfig configures the offline generator.
type GenerateConfig struct {
	Seed  uint64 `yaml:"seed" mapstructure:"seed"`
	Quota int    `yaml:"quota" mapstructure:"quota"`
}

// ExportConfig configures output files.
type ExportConfig struct {
	Formats []string `yaml:"formats" mapstructure:"formats"`
	Dir     string   `yaml:"dir" mapstructure:"dir"`
}

// StoreConfig configures the run-history database. An empty path disables
// run persistence.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("BIZGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults (keys without a meaningful default still need registering so
	// AutomaticEnv can see them)
	v.SetDefault("google.key", "")
	v.SetDefault("google.base_url", "")
	v.SetDefault("anthropic.key", "")
	v.SetDefault("generate.seed", 0)
	v.SetDefault("llm.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("llm.count", 15)
	v.SetDefault("llm.max_tokens", 2000)
	v.SetDefault("llm.temperature", 0.8)
	v.SetDefault("llm.request_delay_secs", 2.0)
	v.SetDefault("llm.retries", 3)
	v.SetDefault("search.location", "47.6062,-122.3321")
	v.SetDefault("search.radius", 25000)
	v.SetDefault("search.request_delay_secs", 1.0)
	v.SetDefault("search.pagination_delay_secs", 2.0)
	v.SetDefault("search.max_pages", 3)
	v.SetDefault("search.retries", 3)
	v.SetDefault("search.fetch_details", true)
	v.SetDefault("generate.quota", 5)
	v.SetDefault("export.formats", []string{"csv", "json"})
	v.SetDefault("export.dir", ".")
	v.SetDefault("store.path", "bizgen.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
