package logger

import (
	"github.com/angeloszaimis/auth-logger/config"
)

// Source names the rule that decided a threshold.
type Source string

const (
	SourceOverride    Source = "override"
	SourceEnv         Source = config.VarLogLevel
	SourceLegacyDebug Source = config.VarDebugAuthLog
	SourceDefault     Source = "default"
)

// ResolveLevel computes a threshold from an environment snapshot:
// AUTH_LOG_LEVEL when it names a level, else debug when DEBUG_AUTH_LOG is
// "true", else info. It never fails.
func ResolveLevel(cfg config.Config) Level {
	lvl, _ := Explain(cfg)
	return lvl
}

// Explain is ResolveLevel plus the rule that produced the result.
func Explain(cfg config.Config) (Level, Source) {
	if lvl, ok := ParseLevel(cfg.LogLevel); ok {
		return lvl, SourceEnv
	}
	if cfg.DebugAuthLog == "true" {
		return LevelDebug, SourceLegacyDebug
	}
	return LevelInfo, SourceDefault
}

// LevelFromEnv resolves the threshold from the current process environment.
func LevelFromEnv() Level {
	return ResolveLevel(loadConfig())
}

func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}
	}
	return *cfg
}
