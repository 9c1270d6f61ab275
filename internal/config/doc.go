// Package config defines the configuration for the Meteocat MCP server and
// loads it from defaults, an optional config.yaml, and environment variables,
// in that order of precedence.
//
// The API key is deliberately environment-only (METEOCAT_API_KEY): it is a
// credential, not server settings, and must not end up in config files.
package config
