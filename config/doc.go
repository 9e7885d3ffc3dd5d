// Package config reads the logging environment (AUTH_LOG_LEVEL, DEBUG_AUTH_LOG
// and APP_ENV/NODE_ENV) into a Config snapshot and validates it for inspection.
package config
