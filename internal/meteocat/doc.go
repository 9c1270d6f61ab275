// Package meteocat implements a client for the Meteocat REST API
// (https://api.meteo.cat), covering its reference data, XEMA station
// observation, and forecast surfaces.
//
// The client is deliberately thin. Each operation maps its typed parameters
// onto one URL, performs one authenticated GET, and returns the decoded JSON
// payload verbatim. There is no caching, no retrying, and no validation of
// upstream responses; errors are surfaced with enough detail (status code and
// raw body) to diagnose without retrying.
package meteocat
