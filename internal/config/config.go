package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/haytac/emoji-stripper/internal/logging"
)

// MetricsConfig controls the prometheus textfile export.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// AppConfig holds the application configuration. The target file list is
// not configurable; see stripper.DefaultTargets.
type AppConfig struct {
	Log     logging.Config `mapstructure:"log"`
	Metrics MetricsConfig  `mapstructure:"metrics"`
}

// LoadConfig loads configuration from file and environment variables.
// A missing config file is not an error; defaults apply.
func LoadConfig(configPath string) (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.console", true)
	v.SetDefault("log.time_format", "15:04:05")
	v.SetDefault("metrics.textfile", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.emoji-stripper")
		v.AddConfigPath("/etc/emoji-stripper/")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.SetEnvPrefix("EMOJI_STRIPPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
