package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Version is set by the linker at release time.
var Version = "dev"

// SchemeConfig represents server listen configuration
type SchemeConfig struct {
	Address   string `json:"address" mapstructure:"address"`
	HTTPPort  int    `json:"http_port" mapstructure:"http_port"`
	EnableH2C bool   `json:"enable_h2c" mapstructure:"enable_h2c"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `json:"format" mapstructure:"format"` // console, json
}

// LimitsConfig bounds interactive inputs
type LimitsConfig struct {
	MaxTextLen     int `json:"max_text_len" mapstructure:"max_text_len"`
	HistoryPerUser int `json:"history_per_user" mapstructure:"history_per_user"`
}

// AnalysisConfig tunes the cryptanalysis endpoints
type AnalysisConfig struct {
	MinCiphertextLen int `json:"min_ciphertext_len" mapstructure:"min_ciphertext_len"`
}

// Config represents the main configuration
type Config struct {
	Scheme    SchemeConfig   `json:"scheme" mapstructure:"scheme"`
	Log       LogConfig      `json:"log" mapstructure:"log"`
	Limits    LimitsConfig   `json:"limits" mapstructure:"limits"`
	Analysis  AnalysisConfig `json:"analysis" mapstructure:"analysis"`
	DataDir   string         `json:"data_dir" mapstructure:"data_dir"`
	JWTSecret string         `json:"jwt_secret" mapstructure:"jwt_secret"`
	JWTExpire int            `json:"jwt_expire" mapstructure:"jwt_expire"` // hours
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads config.json from the search path, applying defaults for
// every key so a missing file still yields a runnable server.
func Load() *Config {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("json")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath("$HOME/.cipherlab")

		// Scheme defaults
		viper.SetDefault("scheme.address", "0.0.0.0")
		viper.SetDefault("scheme.http_port", 8460)
		viper.SetDefault("scheme.enable_h2c", false)

		// Log defaults
		viper.SetDefault("log.level", "info")
		viper.SetDefault("log.format", "console")

		// Limits defaults
		viper.SetDefault("limits.max_text_len", 10000)
		viper.SetDefault("limits.history_per_user", 200)

		// Analysis defaults
		viper.SetDefault("analysis.min_ciphertext_len", 20)

		// Other defaults
		viper.SetDefault("data_dir", "./data")
		viper.SetDefault("jwt_secret", "cipherlab-secret-change-me")
		viper.SetDefault("jwt_expire", 24)

		// Environment variables
		viper.SetEnvPrefix("CIPHERLAB")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Warn().Msg("Config file not found, using defaults")
			} else {
				log.Error().Err(err).Msg("Error reading config file")
			}
		}

		cfg = &Config{}
		if err := viper.Unmarshal(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to unmarshal config")
		}
	})
	return cfg
}

// Get returns the loaded config, loading it on first use.
func Get() *Config {
	if cfg == nil {
		return Load()
	}
	return cfg
}

// GetHTTPAddr returns the HTTP listen address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.Scheme.Address, c.Scheme.HTTPPort)
}

// IsH2CEnabled returns whether HTTP/2 cleartext is enabled
func (c *Config) IsH2CEnabled() bool {
	return c.Scheme.EnableH2C
}
