// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the upload body limit and audit session lifetime.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, per-request upload limit,
// and how long finished audit sessions stay downloadable.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the startup code to size the Fiber body limit.
package server
