package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig           `mapstructure:"server"`
	Metrics    MetricsConfig          `mapstructure:"metrics"`
	Thresholds ThresholdsConfig       `mapstructure:"thresholds"`
	Extraction ExtractionConfig       `mapstructure:"extraction"`
	RuleSets   map[string]interface{} `mapstructure:"rulesets"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ThresholdsConfig holds the similarity cutoffs used to classify each
// requirement. They are configuration, not constants: false negatives on
// paraphrased compliant copy are tuned away here, without code changes.
type ThresholdsConfig struct {
	// Satisfied is the minimum score for a SATISFIED verdict.
	Satisfied float64 `mapstructure:"satisfied"`
	// Partial is the minimum score for a PARTIAL verdict.
	Partial float64 `mapstructure:"partial"`
	// Violation is the minimum score at which a disallowed phrasing counts
	// as present, forcing MISSING regardless of the accepted score.
	Violation float64 `mapstructure:"violation"`
}

type ExtractionConfig struct {
	OCRServiceURL       string `mapstructure:"ocr_service_url"`
	FetchTimeoutSeconds int    `mapstructure:"fetch_timeout_seconds"`
	MaxBodyBytes        int    `mapstructure:"max_body_bytes"`
	UserAgent           string `mapstructure:"user_agent"`
}

var globalConfig Config

func Load(configPath string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// no file is fine, defaults plus environment variables apply
	}

	if err := viper.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	setDefaultValues(&globalConfig)

	return nil
}

// Default returns a standalone config with every default applied, for the
// CLI and for tests that do not read a config file.
func Default() *Config {
	cfg := &Config{}
	setDefaultValues(cfg)
	return cfg
}

func setDefaultValues(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MetricsPort == 0 {
		cfg.Server.MetricsPort = 9090
	}
	if cfg.Thresholds.Satisfied == 0 {
		cfg.Thresholds.Satisfied = 0.72
	}
	if cfg.Thresholds.Partial == 0 {
		cfg.Thresholds.Partial = 0.45
	}
	if cfg.Thresholds.Violation == 0 {
		cfg.Thresholds.Violation = 0.85
	}
	if cfg.Extraction.FetchTimeoutSeconds == 0 {
		cfg.Extraction.FetchTimeoutSeconds = 10
	}
	if cfg.Extraction.MaxBodyBytes == 0 {
		cfg.Extraction.MaxBodyBytes = 512 * 1024
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = "ComplyGate/1.0"
	}
}

// Validate checks threshold ordering. A broken ordering is a configuration
// error and fatal at startup, never recoverable per-request.
func (c *Config) Validate() error {
	t := c.Thresholds
	if t.Partial >= t.Satisfied {
		return fmt.Errorf("invalid thresholds: partial (%.2f) must be below satisfied (%.2f)", t.Partial, t.Satisfied)
	}
	if t.Satisfied <= 0 || t.Satisfied > 1 {
		return fmt.Errorf("invalid thresholds: satisfied (%.2f) must be in (0, 1]", t.Satisfied)
	}
	if t.Partial <= 0 {
		return fmt.Errorf("invalid thresholds: partial (%.2f) must be positive", t.Partial)
	}
	if t.Violation <= 0 || t.Violation > 1 {
		return fmt.Errorf("invalid thresholds: violation (%.2f) must be in (0, 1]", t.Violation)
	}
	return nil
}

func GetConfig() *Config {
	return &globalConfig
}
