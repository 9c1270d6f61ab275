package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"meteocat-mcp/internal/meteocat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestProvider returns a provider whose client talks to a test server, and
// pointers to the last request URI and a request counter.
func newTestProvider(t *testing.T, response string) (*Provider, *string, *int64) {
	t.Helper()

	var lastURI string
	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		lastURI = r.URL.RequestURI()
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	client, err := meteocat.NewClient("test-key",
		meteocat.WithHTTPClient(srv.Client()),
		meteocat.WithBaseURLs(srv.URL+"/referencia/v1", srv.URL+"/xema/v1", srv.URL+"/pronostic/v1"),
	)
	require.NoError(t, err)

	return NewProvider(client), &lastURI, &requests
}

func TestProvider_GetTools(t *testing.T) {
	provider := NewProvider(nil)
	toolList := provider.GetTools()
	require.Len(t, toolList, 14)

	byName := make(map[string]ToolMetadata, len(toolList))
	for _, tool := range toolList {
		assert.NotEmpty(t, tool.Description, "tool %s has no description", tool.Name)
		byName[tool.Name] = tool
	}

	expected := []string{
		"get_municipalities", "get_regions", "get_weather_symbols",
		"get_all_stations", "get_station", "get_all_variables",
		"get_station_variables", "get_latest_readings", "get_readings",
		"get_municipal_forecast_72h", "get_municipal_forecast_8days",
		"get_general_forecast", "get_regional_forecast", "get_uvi_forecast",
	}
	for _, name := range expected {
		assert.Contains(t, byName, name)
	}

	readings := byName["get_readings"]
	required := map[string]bool{}
	for _, arg := range readings.Args {
		required[arg.Name] = arg.Required
	}
	assert.Equal(t, map[string]bool{
		"variable_code": true,
		"year":          true,
		"month":         true,
		"day":           true,
		"station_code":  false,
	}, required)
}

func TestProvider_MissingClientShortCircuits(t *testing.T) {
	provider := NewProvider(nil)
	for _, name := range []string{"get_municipalities", "get_readings", "get_uvi_forecast"} {
		result, err := provider.ExecuteTool(context.Background(), name, nil)
		require.NoError(t, err)
		assert.Equal(t, ConfigErrorMessage, result)
	}
}

func TestProvider_ExecuteTool_Routing(t *testing.T) {
	tests := []struct {
		name        string
		tool        string
		args        map[string]interface{}
		expectedURL string
	}{
		{
			name:        "municipalities",
			tool:        "get_municipalities",
			args:        nil,
			expectedURL: "/referencia/v1/municipis",
		},
		{
			name:        "stations without filters",
			tool:        "get_all_stations",
			args:        map[string]interface{}{},
			expectedURL: "/xema/v1/estacions/metadades",
		},
		{
			name:        "stations with state",
			tool:        "get_all_stations",
			args:        map[string]interface{}{"state": "ope"},
			expectedURL: "/xema/v1/estacions/metadades?estat=ope",
		},
		{
			name:        "station by code",
			tool:        "get_station",
			args:        map[string]interface{}{"station_code": "UG"},
			expectedURL: "/xema/v1/estacions/UG/metadades",
		},
		{
			name: "readings with zero-padded date and station filter",
			tool: "get_readings",
			args: map[string]interface{}{
				// JSON numbers decode to float64
				"variable_code": float64(32),
				"year":          float64(2024),
				"month":         float64(3),
				"day":           float64(7),
				"station_code":  "UG",
			},
			expectedURL: "/xema/v1/variables/mesurades/32/2024/03/07?codiEstacio=UG",
		},
		{
			name:        "latest readings without station",
			tool:        "get_latest_readings",
			args:        map[string]interface{}{"variable_code": float64(33)},
			expectedURL: "/xema/v1/variables/mesurades/33/ultimes",
		},
		{
			name:        "general forecast",
			tool:        "get_general_forecast",
			args:        map[string]interface{}{"year": float64(2026), "month": float64(1), "day": float64(9)},
			expectedURL: "/pronostic/v1/catalunya/2026/01/09",
		},
		{
			name:        "uvi forecast",
			tool:        "get_uvi_forecast",
			args:        map[string]interface{}{"municipality_code": "080193"},
			expectedURL: "/pronostic/v1/uvi/080193",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, lastURI, _ := newTestProvider(t, `{"ok":true}`)

			result, err := provider.ExecuteTool(context.Background(), tt.tool, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedURL, *lastURI)
			assert.JSONEq(t, `{"ok":true}`, result)
		})
	}
}

func TestProvider_ExecuteTool_SerializesArrays(t *testing.T) {
	provider, _, _ := newTestProvider(t, `[{"codi":1},{"codi":2}]`)

	result, err := provider.ExecuteTool(context.Background(), "get_regions", nil)
	require.NoError(t, err)

	var roundTrip []map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &roundTrip))
	require.Len(t, roundTrip, 2)
	assert.Equal(t, float64(1), roundTrip[0]["codi"])
	assert.Equal(t, float64(2), roundTrip[1]["codi"])
}

func TestProvider_ExecuteTool_MissingRequiredArg(t *testing.T) {
	provider, _, requests := newTestProvider(t, `{}`)

	_, err := provider.ExecuteTool(context.Background(), "get_station", map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "station_code")
	assert.Zero(t, atomic.LoadInt64(requests), "argument errors must not reach the network")
}

func TestProvider_ExecuteTool_WrongArgType(t *testing.T) {
	provider, _, _ := newTestProvider(t, `{}`)

	_, err := provider.ExecuteTool(context.Background(), "get_latest_readings",
		map[string]interface{}{"variable_code": "thirty-two"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variable_code")
}

func TestProvider_ExecuteTool_UnknownTool(t *testing.T) {
	provider, _, _ := newTestProvider(t, `{}`)

	_, err := provider.ExecuteTool(context.Background(), "get_tides", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")
}

func TestProvider_ExecuteTool_PropagatesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("invalid api key"))
	}))
	defer srv.Close()

	client, err := meteocat.NewClient("bad-key",
		meteocat.WithBaseURLs(srv.URL+"/referencia/v1", srv.URL+"/xema/v1", srv.URL+"/pronostic/v1"))
	require.NoError(t, err)

	provider := NewProvider(client)
	_, err = provider.ExecuteTool(context.Background(), "get_municipalities", nil)
	require.Error(t, err)

	var apiErr *meteocat.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "invalid api key")
}
