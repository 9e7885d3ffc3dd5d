package logger

import (
	"errors"
	"fmt"
	"log/slog"
)

// StructuredLogger forwards to a Backend acquired once at construction. When
// acquisition fails it stays in fallback mode for its whole lifetime and
// behaves exactly like a StandardLogger with the same threshold.
type StructuredLogger struct {
	conveniences

	level    Level
	source   Source
	backend  Backend
	fallback *StandardLogger
	recorder Recorder
}

func NewStructured(opts ...Option) *StructuredLogger {
	o := buildOptions(opts)
	level, source := o.threshold()

	l := &StructuredLogger{
		level:    level,
		source:   source,
		fallback: newStandard(level, source, o.out, o.errOut, nil),
		recorder: o.recorder,
	}
	l.conveniences = conveniences{base: l}

	backend, err := acquire(o.factory, BackendConfig{
		Level:  level,
		Redact: o.redact,
		Pretty: !o.cfg.IsProduction(),
		Output: o.out,
	})
	if err != nil {
		if !o.cfg.IsProduction() {
			slog.New(slog.NewTextHandler(o.errOut, nil)).Error(
				"structured logger initialization failed, using standard output",
				slog.String("error", err.Error()),
			)
		}
		return l
	}

	l.backend = backend
	return l
}

func acquire(factory BackendFactory, cfg BackendConfig) (backend Backend, err error) {
	if factory == nil {
		return nil, errors.New("no backend factory")
	}

	defer func() {
		if r := recover(); r != nil {
			backend = nil
			err = fmt.Errorf("backend factory panicked: %v", r)
		}
	}()

	backend, err = factory(cfg)
	if err == nil && backend == nil {
		err = errors.New("backend factory returned no backend")
	}
	return backend, err
}

func (l *StructuredLogger) Level() Level {
	return l.level
}

func (l *StructuredLogger) Source() Source {
	return l.source
}

// Backed reports whether a backend was acquired.
func (l *StructuredLogger) Backed() bool {
	return l.backend != nil
}

func (l *StructuredLogger) Error(msg string, meta ...any) {
	if !l.gate(LevelError) {
		return
	}
	if l.backend == nil {
		l.fallback.Error(msg, meta...)
		return
	}
	l.backend.Error(decorate(LevelError, msg), metaValue(meta))
}

func (l *StructuredLogger) Warn(msg string, meta ...any) {
	if !l.gate(LevelWarn) {
		return
	}
	if l.backend == nil {
		l.fallback.Warn(msg, meta...)
		return
	}
	l.backend.Warn(decorate(LevelWarn, msg), metaValue(meta))
}

func (l *StructuredLogger) Info(msg string, meta ...any) {
	if !l.gate(LevelInfo) {
		return
	}
	if l.backend == nil {
		l.fallback.Info(msg, meta...)
		return
	}
	l.backend.Info(decorate(LevelInfo, msg), metaValue(meta))
}

func (l *StructuredLogger) Debug(msg string, meta ...any) {
	if !l.gate(LevelDebug) {
		return
	}
	if l.backend == nil {
		l.fallback.Debug(msg, meta...)
		return
	}
	l.backend.Debug(decorate(LevelDebug, msg), metaValue(meta))
}

func (l *StructuredLogger) gate(level Level) bool {
	emitted := l.level.Allows(level)
	if l.recorder != nil {
		l.recorder.Record(level.String(), emitted)
	}
	return emitted
}
