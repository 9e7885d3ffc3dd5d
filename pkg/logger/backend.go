package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"
)

// Backend is an external structured logger. meta is nil when the caller
// supplied none.
type Backend interface {
	Error(msg string, meta any)
	Warn(msg string, meta any)
	Info(msg string, meta any)
	Debug(msg string, meta any)
}

type BackendConfig struct {
	Level  Level
	Redact []string
	Pretty bool
	Output io.Writer
}

// BackendFactory acquires a backend. Any error, or a panic, puts the
// structured logger into fallback mode.
type BackendFactory func(BackendConfig) (Backend, error)

func (c BackendConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Output, validation.Required),
		validation.Field(&c.Redact, validation.Each(validation.By(validatePath))),
		validation.Field(&c.Level, validation.By(func(value interface{}) error {
			lvl, ok := value.(Level)
			if !ok || !lvl.valid() {
				return validation.NewError("validation_invalid_level", "must be error, warn, info or debug")
			}
			return nil
		})),
	)
}

func validatePath(value interface{}) error {
	path, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}
	if strings.TrimSpace(path) == "" {
		return validation.NewError("validation_empty_path", "redact path cannot be empty")
	}
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			return validation.NewError("validation_invalid_path", "redact path has an empty segment")
		}
	}
	return nil
}

type zerologBackend struct {
	log    zerolog.Logger
	redact []string
}

// NewZerologBackend builds a zerolog logger at cfg.Level. Pretty output goes
// through a colorized ConsoleWriter, otherwise lines are JSON.
func NewZerologBackend(cfg BackendConfig) (Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid backend config: %w", err)
	}

	lvl, err := zerolog.ParseLevel(cfg.Level.String())
	if err != nil {
		return nil, fmt.Errorf("map level %s: %w", cfg.Level, err)
	}

	out := cfg.Output
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.Kitchen}
	}

	return &zerologBackend{
		log:    zerolog.New(out).Level(lvl).With().Timestamp().Logger(),
		redact: cfg.Redact,
	}, nil
}

func (b *zerologBackend) Error(msg string, meta any) {
	b.write(b.log.Error(), msg, meta)
}

func (b *zerologBackend) Warn(msg string, meta any) {
	b.write(b.log.Warn(), msg, meta)
}

func (b *zerologBackend) Info(msg string, meta any) {
	b.write(b.log.Info(), msg, meta)
}

func (b *zerologBackend) Debug(msg string, meta any) {
	b.write(b.log.Debug(), msg, meta)
}

func (b *zerologBackend) write(ev *zerolog.Event, msg string, meta any) {
	if ev == nil {
		return
	}
	if meta != nil {
		switch fields := redact(meta, b.redact).(type) {
		case map[string]any:
			ev = ev.Fields(fields)
		default:
			ev = ev.Interface("meta", fields)
		}
	}
	ev.Msg(msg)
}
