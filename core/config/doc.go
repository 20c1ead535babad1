// Package config provides configuration management for the sync tool.
//
// It utilizes Viper for loading configuration from environment variables and
// a local .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Feed: fixture endpoint URL, timezone, timeouts
//   - Calendar: calendar id, service-account credentials, write rate limit
//   - Sync: nominal event duration, watch schedule
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Calendar.CalendarID)
package config
