// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) for a CLI batch tool.
//
// # Run Correlation
//
// Every sync run is assigned a run ID. The WithRunID helper attaches it to the
// log entry, ensuring that all logs related to a specific run can be
// correlated even when runs are driven by the watch scheduler.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Sync started")
//
//	// Inside a run:
//	l := logger.WithRunID(log, runID)
//	l.Error("Apply failed", zap.Error(err))
package logger
