package toolkit

import (
	"context"
	"fmt"

	"github.com/harunnryd/toolbelt/pkg/errorsx"
	"github.com/harunnryd/toolbelt/pkg/tool"
)

const weatherDescription = "Retrieves the current weather report for a specified city."

// NewWeatherTool builds the get_weather tool against the OpenWeatherMap
// current weather endpoint, reporting in metric units.
func NewWeatherTool(cfg WeatherConfig) *tool.Tool {
	client := newClient(cfg.BaseURL, defaultWeatherBaseURL)

	fn := func(ctx context.Context, args map[string]any) (tool.Result, error) {
		city, err := cityFromArgs(args)
		if err != nil {
			return tool.Errorf("invalid arguments for get_weather: %v", err), nil
		}
		if cfg.APIKey == "" {
			return tool.Errorf("Weather API key not found in environment variables."), nil
		}

		var data struct {
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Weather []struct {
				Description string `json:"description"`
			} `json:"weather"`
		}
		resp, err := client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"q":     city,
				"appid": cfg.APIKey,
				"units": "metric",
			}).
			SetResult(&data).
			Get("/data/2.5/weather")
		if err != nil {
			err = errorsx.Wrap(err, errorsx.ReasonWeatherFetch)
			return tool.Errorf("Error fetching weather for '%s': %v", city, err), nil
		}
		if resp.IsError() {
			return tool.Errorf("Error fetching weather for '%s': status %s", city, resp.Status()), nil
		}
		if len(data.Weather) == 0 {
			return tool.Errorf("Error parsing weather data for '%s': missing weather description", city), nil
		}

		tempC := data.Main.Temp
		tempF := tempC*9/5 + 32
		report := fmt.Sprintf(
			"The weather in %s is %s with a temperature of %.1f degrees Celsius (%.1f degrees Fahrenheit).",
			city, data.Weather[0].Description, tempC, tempF,
		)
		return tool.Success(report), nil
	}

	return tool.MustNew("get_weather", fn, weatherDescription, cityArgsSchema)
}
