package toolkit

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/harunnryd/toolbelt/pkg/errorsx"
	"github.com/harunnryd/toolbelt/pkg/tool"
)

const currentTimeDescription = "Returns the current time in a specified city."

var errLocationNotFound = errors.New("location not found")

// NewCurrentTimeTool builds the get_current_time tool. It geocodes the city
// through OpenWeatherMap, then resolves the local time for the coordinates
// through TimeZoneDB.
func NewCurrentTimeTool(weather WeatherConfig, tz TimezoneConfig) *tool.Tool {
	geoClient := newClient(weather.BaseURL, defaultWeatherBaseURL)
	tzClient := newClient(tz.BaseURL, defaultTimezoneBaseURL)

	fn := func(ctx context.Context, args map[string]any) (tool.Result, error) {
		city, err := cityFromArgs(args)
		if err != nil {
			return tool.Errorf("invalid arguments for get_current_time: %v", err), nil
		}
		if tz.APIKey == "" {
			return tool.Errorf("Timezone API key not found in environment variables."), nil
		}
		if weather.APIKey == "" {
			return tool.Errorf("Weather API key not found in environment variables (needed for geocoding)."), nil
		}

		lat, lon, err := geocodeCity(ctx, geoClient, weather.APIKey, city)
		if err != nil {
			if errors.Is(err, errLocationNotFound) {
				return tool.Errorf("Could not find location data for '%s'.", city), nil
			}
			return tool.Errorf("Error fetching time data for '%s': %v", city, err), nil
		}

		var data struct {
			Status    string `json:"status"`
			Message   string `json:"message"`
			ZoneName  string `json:"zoneName"`
			Formatted string `json:"formatted"`
		}
		resp, err := tzClient.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"key":    tz.APIKey,
				"format": "json",
				"by":     "position",
				"fields": "zoneName,formatted",
				"lat":    fmt.Sprintf("%f", lat),
				"lng":    fmt.Sprintf("%f", lon),
			}).
			SetResult(&data).
			Get("/v2.1/get-time-zone")
		if err != nil {
			err = errorsx.Wrap(err, errorsx.ReasonTimezoneFetch)
			return tool.Errorf("Error fetching time data for '%s': %v", city, err), nil
		}
		if resp.IsError() {
			return tool.Errorf("Error fetching time data for '%s': status %s", city, resp.Status()), nil
		}
		if data.Status != "OK" {
			message := data.Message
			if message == "" {
				message = "Unknown error"
			}
			return tool.Errorf("Error fetching timezone data: %s", message), nil
		}

		report := fmt.Sprintf("The current time in %s is %s (%s)", city, data.Formatted, data.ZoneName)
		return tool.Success(report), nil
	}

	return tool.MustNew("get_current_time", fn, currentTimeDescription, cityArgsSchema)
}

func geocodeCity(ctx context.Context, client *resty.Client, apiKey, city string) (lat, lon float64, err error) {
	var hits []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	resp, err := client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     city,
			"limit": "1",
			"appid": apiKey,
		}).
		SetResult(&hits).
		Get("/geo/1.0/direct")
	if err != nil {
		return 0, 0, errorsx.Wrap(err, errorsx.ReasonGeocodeLookup)
	}
	if resp.IsError() {
		err = fmt.Errorf("geocode status %s", resp.Status())
		return 0, 0, errorsx.Wrap(err, errorsx.ReasonGeocodeLookup)
	}
	if len(hits) == 0 {
		return 0, 0, errLocationNotFound
	}
	return hits[0].Lat, hits[0].Lon, nil
}
