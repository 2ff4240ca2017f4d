package errorsx

// ReasonCode is a short machine-readable error reason.
type ReasonCode string

const (
	ReasonUnknown ReasonCode = "unknown"

	ReasonToolNotFound  ReasonCode = "tool_not_found"
	ReasonDuplicateTool ReasonCode = "duplicate_tool"
	ReasonToolExecute   ReasonCode = "tool_execute"

	ReasonSelectorGenerate ReasonCode = "selector_generate"
	ReasonConfigLoad       ReasonCode = "config_load"

	ReasonWeatherFetch  ReasonCode = "weather_fetch"
	ReasonGeocodeLookup ReasonCode = "geocode_lookup"
	ReasonTimezoneFetch ReasonCode = "timezone_fetch"
)
