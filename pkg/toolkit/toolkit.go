// Package toolkit carries the built-in tools: current weather and local
// time for a city, backed by OpenWeatherMap and TimeZoneDB.
package toolkit

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/harunnryd/toolbelt/pkg/configutil"
	"github.com/harunnryd/toolbelt/pkg/errorsx"
	"github.com/harunnryd/toolbelt/pkg/tool"
)

const (
	defaultWeatherBaseURL  = "https://api.openweathermap.org"
	defaultTimezoneBaseURL = "https://api.timezonedb.com"
)

// WeatherConfig holds OpenWeatherMap settings. The same key and host serve
// both the weather endpoint and the geocoder.
type WeatherConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// TimezoneConfig holds TimeZoneDB settings.
type TimezoneConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// Config groups upstream API settings for the built-in tools.
type Config struct {
	Weather  WeatherConfig  `mapstructure:"weather"`
	Timezone TimezoneConfig `mapstructure:"timezone"`
}

// RegisterDefaults registers the built-in tools in a fixed order.
func RegisterDefaults(r *tool.Registry, cfg Config) error {
	builtins := []*tool.Tool{
		NewWeatherTool(cfg.Weather),
		NewCurrentTimeTool(cfg.Weather, cfg.Timezone),
	}
	for _, t := range builtins {
		if err := r.Register(t); err != nil {
			return errorsx.Wrap(err, errorsx.ReasonDuplicateTool)
		}
	}
	return nil
}

func newClient(base, fallback string) *resty.Client {
	if base == "" {
		base = fallback
	}
	return resty.New().SetBaseURL(base).SetTimeout(10 * time.Second)
}

var cityArgsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"city": map[string]any{
			"type":        "string",
			"description": "The name of the city.",
		},
	},
	"required": []string{"city"},
}

type cityArgs struct {
	City string `mapstructure:"city"`
}

func cityFromArgs(args map[string]any) (string, error) {
	schema := configutil.Schema{Required: []string{"city"}, AllowUnknown: true}
	if err := configutil.ValidateSettings(args, schema); err != nil {
		return "", err
	}
	var a cityArgs
	if err := configutil.DecodeSettings(args, &a); err != nil {
		return "", err
	}
	if err := configutil.RequireString(a.City, "city"); err != nil {
		return "", err
	}
	return a.City, nil
}
