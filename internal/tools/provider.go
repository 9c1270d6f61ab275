package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"meteocat-mcp/internal/meteocat"
	"meteocat-mcp/pkg/logging"

	"github.com/google/uuid"
)

// ConfigErrorMessage is returned as the tool result for every invocation when
// the server was started without an API key. It is a fixed string and no
// network request is attempted.
const ConfigErrorMessage = "Error: Server not configured (missing API key)"

// Provider exposes the Meteocat API as a fixed set of named tools. It maps
// each tool name to its declared arguments and to exactly one client call,
// and serializes the returned JSON value to text.
//
// The client may be nil when the API key was missing at startup; every
// invocation then short-circuits with ConfigErrorMessage.
type Provider struct {
	client *meteocat.Client
}

// NewProvider creates a tool provider backed by the given client.
func NewProvider(client *meteocat.Client) *Provider {
	return &Provider{client: client}
}

// GetTools returns metadata for all fourteen tools this provider offers.
func (p *Provider) GetTools() []ToolMetadata {
	return []ToolMetadata{
		{
			Name:        "get_municipalities",
			Description: "Get all municipalities (municipis) in Catalonia with their codes, names, coordinates, and region info. Use this to find municipality codes for forecasts.",
		},
		{
			Name:        "get_regions",
			Description: "Get all regions (comarques) in Catalonia with their codes and names.",
		},
		{
			Name:        "get_weather_symbols",
			Description: "Get weather symbol reference data including sky conditions, precipitation types, and their icons.",
		},
		{
			Name:        "get_all_stations",
			Description: "Get metadata for all weather stations in the XEMA network. Optionally filter by operational state and date.",
			Args: []ArgMetadata{
				{Name: "state", Type: "string", Description: "Filter by station state: 'ope' (operational), 'des' (decommissioned), 'rep' (under repair)"},
				{Name: "date", Type: "string", Description: "Filter by date (format: YYYY-MM-DDZ). Returns stations active on this date."},
			},
		},
		{
			Name:        "get_station",
			Description: "Get detailed metadata for a specific weather station by its code.",
			Args: []ArgMetadata{
				{Name: "station_code", Type: "string", Required: true, Description: "The station code (e.g., 'UG' for Viladecans, 'CC' for Orís)"},
			},
		},
		{
			Name:        "get_all_variables",
			Description: "Get metadata for all measurable weather variables (temperature, humidity, wind, etc.) with their codes, units, and descriptions.",
		},
		{
			Name:        "get_station_variables",
			Description: "Get the list of weather variables measured by a specific station.",
			Args: []ArgMetadata{
				{Name: "station_code", Type: "string", Required: true, Description: "The station code"},
				{Name: "state", Type: "string", Description: "Filter by variable state: 'ope' (operational)"},
			},
		},
		{
			Name:        "get_latest_readings",
			Description: "Get the latest readings (last 4 hours) for a specific weather variable across all stations or a specific station.",
			Args: []ArgMetadata{
				{Name: "variable_code", Type: "integer", Required: true, Description: "The variable code (e.g., 32 for temperature, 33 for humidity). Use get_all_variables to find codes."},
				{Name: "station_code", Type: "string", Description: "Optional: filter by specific station code"},
			},
		},
		{
			Name:        "get_readings",
			Description: "Get readings for a specific variable on a specific date.",
			Args: []ArgMetadata{
				{Name: "variable_code", Type: "integer", Required: true, Description: "The variable code"},
				{Name: "year", Type: "integer", Required: true, Description: "Year (e.g., 2024)"},
				{Name: "month", Type: "integer", Required: true, Description: "Month (1-12)"},
				{Name: "day", Type: "integer", Required: true, Description: "Day (1-31)"},
				{Name: "station_code", Type: "string", Description: "Optional: filter by specific station code"},
			},
		},
		{
			Name:        "get_municipal_forecast_72h",
			Description: "Get hourly weather forecast for the next 72 hours for a specific municipality.",
			Args: []ArgMetadata{
				{Name: "municipality_code", Type: "string", Required: true, Description: "The municipality code (e.g., '080193' for Barcelona). Use get_municipalities to find codes."},
			},
		},
		{
			Name:        "get_municipal_forecast_8days",
			Description: "Get 8-day weather forecast for a specific municipality.",
			Args: []ArgMetadata{
				{Name: "municipality_code", Type: "string", Required: true, Description: "The municipality code"},
			},
		},
		{
			Name:        "get_general_forecast",
			Description: "Get the general weather forecast for all of Catalonia for a specific date.",
			Args: []ArgMetadata{
				{Name: "year", Type: "integer", Required: true, Description: "Year (e.g., 2026)"},
				{Name: "month", Type: "integer", Required: true, Description: "Month (1-12)"},
				{Name: "day", Type: "integer", Required: true, Description: "Day (1-31)"},
			},
		},
		{
			Name:        "get_regional_forecast",
			Description: "Get weather forecast by region (comarca) for all of Catalonia for a specific date.",
			Args: []ArgMetadata{
				{Name: "year", Type: "integer", Required: true, Description: "Year (e.g., 2026)"},
				{Name: "month", Type: "integer", Required: true, Description: "Month (1-12)"},
				{Name: "day", Type: "integer", Required: true, Description: "Day (1-31)"},
			},
		},
		{
			Name:        "get_uvi_forecast",
			Description: "Get UV index forecast for the next 3 days for a specific municipality.",
			Args: []ArgMetadata{
				{Name: "municipality_code", Type: "string", Required: true, Description: "The municipality code"},
			},
		},
	}
}

// ExecuteTool runs the named tool with the given arguments and returns the
// upstream JSON payload serialized to text. Client failures propagate
// unhandled; the caller is responsible for turning them into a protocol-level
// error response.
func (p *Provider) ExecuteTool(ctx context.Context, toolName string, args map[string]interface{}) (string, error) {
	// Pre-flight configuration check, before any network attempt.
	if p.client == nil {
		return ConfigErrorMessage, nil
	}

	invocationID := uuid.New().String()
	logging.Debug("Tools", "Invocation %s: %s", invocationID, toolName)

	result, err := p.dispatch(ctx, toolName, args)
	if err != nil {
		logging.Error("Tools", err, "Invocation %s failed: %s", invocationID, toolName)
		return "", err
	}

	text, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to serialize result: %w", err)
	}
	return string(text), nil
}

func (p *Provider) dispatch(ctx context.Context, toolName string, args map[string]interface{}) (any, error) {
	switch toolName {
	case "get_municipalities":
		return p.client.GetMunicipalities(ctx)

	case "get_regions":
		return p.client.GetRegions(ctx)

	case "get_weather_symbols":
		return p.client.GetWeatherSymbols(ctx)

	case "get_all_stations":
		state, err := optStringArg(args, "state")
		if err != nil {
			return nil, err
		}
		date, err := optStringArg(args, "date")
		if err != nil {
			return nil, err
		}
		return p.client.GetAllStations(ctx, state, date)

	case "get_station":
		stationCode, err := stringArg(args, "station_code")
		if err != nil {
			return nil, err
		}
		return p.client.GetStation(ctx, stationCode)

	case "get_all_variables":
		return p.client.GetAllVariables(ctx)

	case "get_station_variables":
		stationCode, err := stringArg(args, "station_code")
		if err != nil {
			return nil, err
		}
		state, err := optStringArg(args, "state")
		if err != nil {
			return nil, err
		}
		return p.client.GetStationVariables(ctx, stationCode, state)

	case "get_latest_readings":
		variableCode, err := intArg(args, "variable_code")
		if err != nil {
			return nil, err
		}
		stationCode, err := optStringArg(args, "station_code")
		if err != nil {
			return nil, err
		}
		return p.client.GetLatestReadings(ctx, variableCode, stationCode)

	case "get_readings":
		variableCode, err := intArg(args, "variable_code")
		if err != nil {
			return nil, err
		}
		year, err := intArg(args, "year")
		if err != nil {
			return nil, err
		}
		month, err := intArg(args, "month")
		if err != nil {
			return nil, err
		}
		day, err := intArg(args, "day")
		if err != nil {
			return nil, err
		}
		stationCode, err := optStringArg(args, "station_code")
		if err != nil {
			return nil, err
		}
		return p.client.GetReadings(ctx, variableCode, year, month, day, stationCode)

	case "get_municipal_forecast_72h":
		municipalityCode, err := stringArg(args, "municipality_code")
		if err != nil {
			return nil, err
		}
		return p.client.GetMunicipalForecast72h(ctx, municipalityCode)

	case "get_municipal_forecast_8days":
		municipalityCode, err := stringArg(args, "municipality_code")
		if err != nil {
			return nil, err
		}
		return p.client.GetMunicipalForecast8Days(ctx, municipalityCode)

	case "get_general_forecast":
		year, err := intArg(args, "year")
		if err != nil {
			return nil, err
		}
		month, err := intArg(args, "month")
		if err != nil {
			return nil, err
		}
		day, err := intArg(args, "day")
		if err != nil {
			return nil, err
		}
		return p.client.GetGeneralForecast(ctx, year, month, day)

	case "get_regional_forecast":
		year, err := intArg(args, "year")
		if err != nil {
			return nil, err
		}
		month, err := intArg(args, "month")
		if err != nil {
			return nil, err
		}
		day, err := intArg(args, "day")
		if err != nil {
			return nil, err
		}
		return p.client.GetRegionalForecast(ctx, year, month, day)

	case "get_uvi_forecast":
		municipalityCode, err := stringArg(args, "municipality_code")
		if err != nil {
			return nil, err
		}
		return p.client.GetUVIForecast(ctx, municipalityCode)

	default:
		return nil, fmt.Errorf("unknown tool: %s", toolName)
	}
}
