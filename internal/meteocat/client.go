package meteocat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Default base URLs for the three Meteocat API surfaces.
const (
	DefaultReferenceBaseURL = "https://api.meteo.cat/referencia/v1"
	DefaultXEMABaseURL      = "https://api.meteo.cat/xema/v1"
	DefaultPronosticBaseURL = "https://api.meteo.cat/pronostic/v1"
)

// apiKeyHeader is the header the Meteocat API expects the credential in.
const apiKeyHeader = "X-Api-Key"

// Client is a thin client for the Meteocat REST API. It holds the API key
// credential and translates each logical operation into a single HTTP GET.
//
// Responses are returned as decoded JSON values without any validation or
// reshaping: the upstream API may answer with an object or an array depending
// on the endpoint, and callers must not assume a shape.
//
// A Client holds no mutable per-call state and is safe for concurrent use.
type Client struct {
	apiKey     string
	httpClient *http.Client

	referenceBase string
	xemaBase      string
	pronosticBase string
}

// ClientOption configures the Meteocat client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURLs overrides the three API base URLs. Used by tests to point the
// client at a local server.
func WithBaseURLs(reference, xema, pronostic string) ClientOption {
	return func(c *Client) {
		c.referenceBase = reference
		c.xemaBase = xema
		c.pronosticBase = pronostic
	}
}

// NewClient creates a new Meteocat API client.
// The API key is required; an empty key is a configuration error.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		apiKey: apiKey,
		// No request timeout; only transport defaults apply.
		httpClient:    &http.Client{},
		referenceBase: DefaultReferenceBaseURL,
		xemaBase:      DefaultXEMABaseURL,
		pronosticBase: DefaultPronosticBaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// get performs a single HTTP GET against the given URL with the shared header
// set and decodes the response body as JSON. Non-2xx statuses become an
// *APIError carrying the status code and the raw body.
func (c *Client) get(ctx context.Context, requestURL string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response as JSON: %w", err)
	}
	return result, nil
}

// ===== Reference data =====

// GetMunicipalities returns all municipalities in Catalonia with their codes,
// names, coordinates and region info.
func (c *Client) GetMunicipalities(ctx context.Context) (any, error) {
	return c.get(ctx, c.referenceBase+"/municipis")
}

// GetRegions returns all regions (comarques) in Catalonia.
func (c *Client) GetRegions(ctx context.Context) (any, error) {
	return c.get(ctx, c.referenceBase+"/comarques")
}

// GetWeatherSymbols returns the weather symbol legend.
func (c *Client) GetWeatherSymbols(ctx context.Context) (any, error) {
	return c.get(ctx, c.referenceBase+"/simbols")
}

// ===== Station data (XEMA) =====

// GetAllStations returns metadata for every station in the XEMA network,
// optionally filtered by operational state and/or date.
func (c *Client) GetAllStations(ctx context.Context, state, date *string) (any, error) {
	requestURL := c.xemaBase + "/estacions/metadades"

	params := url.Values{}
	if state != nil {
		params.Set("estat", *state)
	}
	if date != nil {
		params.Set("data", *date)
	}
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	return c.get(ctx, requestURL)
}

// GetStation returns the metadata for one station.
//
// The upstream schema is ambiguous here (single object vs. one-element
// array); the value is returned exactly as received.
func (c *Client) GetStation(ctx context.Context, stationCode string) (any, error) {
	return c.get(ctx, fmt.Sprintf("%s/estacions/%s/metadades", c.xemaBase, url.PathEscape(stationCode)))
}

// GetStationVariables returns the variables measured by one station,
// optionally filtered by variable state.
func (c *Client) GetStationVariables(ctx context.Context, stationCode string, state *string) (any, error) {
	requestURL := fmt.Sprintf("%s/estacions/%s/variables/metadades", c.xemaBase, url.PathEscape(stationCode))
	if state != nil {
		requestURL += "?" + url.Values{"estat": {*state}}.Encode()
	}
	return c.get(ctx, requestURL)
}

// GetAllVariables returns metadata for every measurable variable.
func (c *Client) GetAllVariables(ctx context.Context) (any, error) {
	return c.get(ctx, c.xemaBase+"/variables/metadades")
}

// GetLatestReadings returns the most recent readings (last 4 hours) for a
// variable, across all stations or restricted to one.
func (c *Client) GetLatestReadings(ctx context.Context, variableCode int, stationCode *string) (any, error) {
	requestURL := fmt.Sprintf("%s/variables/mesurades/%d/ultimes", c.xemaBase, variableCode)
	if stationCode != nil {
		requestURL += "?" + url.Values{"codiEstacio": {*stationCode}}.Encode()
	}
	return c.get(ctx, requestURL)
}

// GetReadings returns the readings for a variable on a specific date.
// Month and day are zero-padded in the path; out-of-range values are
// forwarded as-is for the upstream API to reject.
func (c *Client) GetReadings(ctx context.Context, variableCode, year, month, day int, stationCode *string) (any, error) {
	requestURL := fmt.Sprintf("%s/variables/mesurades/%d/%d/%02d/%02d", c.xemaBase, variableCode, year, month, day)
	if stationCode != nil {
		requestURL += "?" + url.Values{"codiEstacio": {*stationCode}}.Encode()
	}
	return c.get(ctx, requestURL)
}

// ===== Forecasts (Pronòstic) =====

// GetMunicipalForecast72h returns the hourly forecast for the next 72 hours
// for one municipality.
func (c *Client) GetMunicipalForecast72h(ctx context.Context, municipalityCode string) (any, error) {
	return c.get(ctx, fmt.Sprintf("%s/municipalHoraria/%s", c.pronosticBase, url.PathEscape(municipalityCode)))
}

// GetMunicipalForecast8Days returns the 8-day forecast for one municipality.
func (c *Client) GetMunicipalForecast8Days(ctx context.Context, municipalityCode string) (any, error) {
	return c.get(ctx, fmt.Sprintf("%s/municipal/%s", c.pronosticBase, url.PathEscape(municipalityCode)))
}

// GetGeneralForecast returns the general forecast for all of Catalonia on a
// specific date.
func (c *Client) GetGeneralForecast(ctx context.Context, year, month, day int) (any, error) {
	return c.get(ctx, fmt.Sprintf("%s/catalunya/%d/%02d/%02d", c.pronosticBase, year, month, day))
}

// GetRegionalForecast returns the per-region (comarcal) forecast for a
// specific date.
func (c *Client) GetRegionalForecast(ctx context.Context, year, month, day int) (any, error) {
	return c.get(ctx, fmt.Sprintf("%s/comarcal/%d/%02d/%02d", c.pronosticBase, year, month, day))
}

// GetUVIForecast returns the UV index forecast for the next 3 days for one
// municipality.
func (c *Client) GetUVIForecast(ctx context.Context, municipalityCode string) (any, error) {
	return c.get(ctx, fmt.Sprintf("%s/uvi/%s", c.pronosticBase, url.PathEscape(municipalityCode)))
}
