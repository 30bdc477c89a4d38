// Package config provides configuration management for the jacket manager.
//
// It utilizes Viper for loading configuration from environment variables
// and a local .env file, with struct-tag defaults.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Catalog: catalog source (file, storage, database) and its location
//   - Database: MySQL/sqlite connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Export: artifact upload behavior
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
