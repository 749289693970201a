// Package logging provides structured logging for cellprefs.
//
// This package wraps a zap logger with convenience functions used by the
// settings stores and the preferences facade.
//
// # Log Levels
//
//   - Debug: every value written to a backend, file loads
//   - Info: backend selection
//   - Warn: stored values replaced by defaults, unreadable settings files
//
// # Structured Logging
//
//	logging.Warn("Invalid stored setting, using default",
//	    zap.String("key", "BackgroundColor"),
//	    zap.String("stored", "red"),
//	)
//
// # Configuration
//
// Logging is silent unless CELLPREFS_LOG_LEVEL is set to "debug", "info",
// "warn" or "error". Any other value is rejected by Initialize:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Output goes to stderr in zap's console format so it never mixes with
// command output on stdout.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once Initialize has
// returned. The underlying zap logger handles synchronization.
package logging
