package logger

import (
	"strings"

	"github.com/angeloszaimis/auth-logger/config"
)

// Level orders severities from least to most verbose. A logger whose
// threshold is T emits a call of level S iff S <= T.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// String returns the lower-case name, which is also the backend vocabulary.
func (l Level) String() string {
	switch l {
	case LevelError:
		return config.LogLevelError
	case LevelWarn:
		return config.LogLevelWarn
	case LevelInfo:
		return config.LogLevelInfo
	case LevelDebug:
		return config.LogLevelDebug
	default:
		return "unknown"
	}
}

// Tag is the bracketed prefix used by the standard writer.
func (l Level) Tag() string {
	return strings.ToUpper(l.String())
}

// Icon is the emoji placed before every message at this level.
func (l Level) Icon() string {
	switch l {
	case LevelError:
		return "💥"
	case LevelWarn:
		return "⚠️"
	case LevelInfo:
		return "ℹ️"
	case LevelDebug:
		return "🐛"
	default:
		return ""
	}
}

// Allows reports whether a call at level call passes threshold l.
func (l Level) Allows(call Level) bool {
	return call <= l
}

func (l Level) valid() bool {
	return l >= LevelError && l <= LevelDebug
}

// ParseLevel maps one of error, warn, info or debug (any case) to a Level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(s) {
	case config.LogLevelError:
		return LevelError, true
	case config.LogLevelWarn:
		return LevelWarn, true
	case config.LogLevelInfo:
		return LevelInfo, true
	case config.LogLevelDebug:
		return LevelDebug, true
	default:
		return LevelInfo, false
	}
}

// AllLevels returns every level, least verbose first.
func AllLevels() []Level {
	return []Level{LevelError, LevelWarn, LevelInfo, LevelDebug}
}
