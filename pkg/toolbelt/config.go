package toolbelt

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/harunnryd/toolbelt/pkg/errorsx"
	"github.com/harunnryd/toolbelt/pkg/toolkit"
)

// SelectorConfig picks the selection backend and carries its free-form
// vendor settings.
type SelectorConfig struct {
	Provider string         `mapstructure:"provider"`
	Settings map[string]any `mapstructure:"settings"`
}

type Config struct {
	LogLevel  string         `mapstructure:"log_level"`
	LogFormat string         `mapstructure:"log_format"`
	Selector  SelectorConfig `mapstructure:"selector"`
	Toolkit   toolkit.Config `mapstructure:"toolkit"`
}

// LoadConfig reads configuration from an optional file plus the
// environment. API keys bind to the same variables the upstream tools
// document: WEATHER_API_KEY, TIMEZONE_API_KEY, OPENAI_API_KEY.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("selector.provider", "rule")
	v.SetDefault("toolkit.weather.base_url", "")
	v.SetDefault("toolkit.timezone.base_url", "")

	_ = v.BindEnv("toolkit.weather.api_key", "WEATHER_API_KEY")
	_ = v.BindEnv("toolkit.timezone.api_key", "TIMEZONE_API_KEY")
	_ = v.BindEnv("selector.settings.api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errorsx.Wrap(fmt.Errorf("read config: %w", err), errorsx.ReasonConfigLoad)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errorsx.Wrap(fmt.Errorf("decode config: %w", err), errorsx.ReasonConfigLoad)
	}
	return cfg, nil
}
