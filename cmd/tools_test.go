package cmd

import (
	"bytes"
	"testing"

	"meteocat-mcp/internal/tools"

	"github.com/stretchr/testify/assert"
)

func TestToolsCommand_ListsAllTools(t *testing.T) {
	var buf bytes.Buffer
	toolsCmd.SetOut(&buf)
	defer toolsCmd.SetOut(nil)

	runTools(toolsCmd, nil)

	output := buf.String()
	expected := []string{
		"get_municipalities", "get_regions", "get_weather_symbols",
		"get_all_stations", "get_station", "get_all_variables",
		"get_station_variables", "get_latest_readings", "get_readings",
		"get_municipal_forecast_72h", "get_municipal_forecast_8days",
		"get_general_forecast", "get_regional_forecast", "get_uvi_forecast",
	}
	for _, name := range expected {
		assert.Contains(t, output, name)
	}
}

func TestFormatArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []tools.ArgMetadata
		expected string
	}{
		{
			name:     "no arguments",
			args:     nil,
			expected: "-",
		},
		{
			name: "required marked with asterisk",
			args: []tools.ArgMetadata{
				{Name: "station_code", Required: true},
				{Name: "state"},
			},
			expected: "station_code*, state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatArgs(tt.args))
		})
	}
}
