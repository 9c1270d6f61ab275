// Package logging provides structured logging for the Meteocat MCP server,
// built on Go's standard slog package.
//
// Every log entry carries a subsystem identifier so that output from the
// API client, the tool dispatcher, and the MCP server can be told apart.
// The package is initialized once from the serve command:
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//	logging.Info("Server", "Starting on %s:%d", host, port)
//	logging.Error("Client", err, "Request failed")
//
// Helpers are no-ops until Init has been called, and filter by the level
// configured at initialization time.
package logging
