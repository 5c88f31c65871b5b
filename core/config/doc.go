// Package config provides configuration management for the Audit Manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, upload limit, session TTL)
//   - Storage: S3/MinIO credentials and bucket settings for report archiving
//   - Log: Logging level and format
//   - Audit: Spreadsheet column layout (identifier, quantity, status columns)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
