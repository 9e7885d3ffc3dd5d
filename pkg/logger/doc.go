// Package logger provides leveled logging for authentication flows.
//
// A threshold is resolved once per logger from AUTH_LOG_LEVEL (error, warn,
// info, debug), falling back to DEBUG_AUTH_LOG=true for debug and to info
// otherwise. Calls above the threshold are no-ops.
//
// Two variants implement Logger:
//   - StandardLogger writes "[LEVEL] icon message" lines to stdout and stderr
//   - StructuredLogger forwards to a zerolog backend with metadata redaction,
//     and permanently falls back to StandardLogger output if the backend
//     cannot be built
//
// Example usage:
//
//	log := logger.NewStructured()
//	log.Info("token refreshed", map[string]any{"client": id})
//	log.BrowserURL(authURL)
//
// Package-level functions delegate to Default().
package logger
