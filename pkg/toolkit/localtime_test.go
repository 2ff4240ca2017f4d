package toolkit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harunnryd/toolbelt/pkg/tool"
)

func geocodeServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/geo/1.0/direct" {
			t.Fatalf("unexpected geocode path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestCurrentTimeToolHappyPath(t *testing.T) {
	geo := geocodeServer(t, `[{"lat":48.8589,"lon":2.32}]`)
	defer geo.Close()

	tz := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2.1/get-time-zone" {
			t.Fatalf("unexpected timezone path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("by") != "position" || q.Get("key") != "tz-key" {
			t.Fatalf("unexpected query: %v", q)
		}
		if q.Get("lat") == "" || q.Get("lng") == "" {
			t.Fatalf("coordinates must be forwarded, got %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","zoneName":"Europe/Paris","formatted":"2025-06-01 14:30:00"}`))
	}))
	defer tz.Close()

	tl := NewCurrentTimeTool(
		WeatherConfig{APIKey: "weather-key", BaseURL: geo.URL},
		TimezoneConfig{APIKey: "tz-key", BaseURL: tz.URL},
	)
	res := tl.Invoke(context.Background(), map[string]any{"city": "Paris"})
	if res.Status != tool.StatusSuccess {
		t.Fatalf("expected success, got %s: %s", res.Status, res.ErrorMessage)
	}
	want := "The current time in Paris is 2025-06-01 14:30:00 (Europe/Paris)"
	if res.Report != want {
		t.Fatalf("unexpected report:\n got %q\nwant %q", res.Report, want)
	}
}

func TestCurrentTimeToolMissingKeys(t *testing.T) {
	tl := NewCurrentTimeTool(WeatherConfig{APIKey: "weather-key"}, TimezoneConfig{})
	res := tl.Invoke(context.Background(), map[string]any{"city": "Paris"})
	if res.ErrorMessage != "Timezone API key not found in environment variables." {
		t.Fatalf("unexpected message: %q", res.ErrorMessage)
	}

	tl = NewCurrentTimeTool(WeatherConfig{}, TimezoneConfig{APIKey: "tz-key"})
	res = tl.Invoke(context.Background(), map[string]any{"city": "Paris"})
	if res.ErrorMessage != "Weather API key not found in environment variables (needed for geocoding)." {
		t.Fatalf("unexpected message: %q", res.ErrorMessage)
	}
}

func TestCurrentTimeToolUnknownLocation(t *testing.T) {
	geo := geocodeServer(t, `[]`)
	defer geo.Close()

	tl := NewCurrentTimeTool(
		WeatherConfig{APIKey: "weather-key", BaseURL: geo.URL},
		TimezoneConfig{APIKey: "tz-key"},
	)
	res := tl.Invoke(context.Background(), map[string]any{"city": "Atlantis"})
	if res.Status != tool.StatusError {
		t.Fatalf("expected error, got %s", res.Status)
	}
	if res.ErrorMessage != "Could not find location data for 'Atlantis'." {
		t.Fatalf("unexpected message: %q", res.ErrorMessage)
	}
}

func TestCurrentTimeToolTimezoneRejection(t *testing.T) {
	geo := geocodeServer(t, `[{"lat":1.0,"lon":2.0}]`)
	defer geo.Close()

	tz := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"FAILED","message":"invalid api key"}`))
	}))
	defer tz.Close()

	tl := NewCurrentTimeTool(
		WeatherConfig{APIKey: "weather-key", BaseURL: geo.URL},
		TimezoneConfig{APIKey: "bad-key", BaseURL: tz.URL},
	)
	res := tl.Invoke(context.Background(), map[string]any{"city": "Paris"})
	if res.Status != tool.StatusError {
		t.Fatalf("expected error, got %s", res.Status)
	}
	if !strings.Contains(res.ErrorMessage, "invalid api key") {
		t.Fatalf("upstream message must surface, got %q", res.ErrorMessage)
	}
}
