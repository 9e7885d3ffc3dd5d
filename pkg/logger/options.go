package logger

import (
	"io"
	"os"

	"github.com/angeloszaimis/auth-logger/config"
)

// DefaultRedactPaths are removed from structured metadata before it reaches
// the backend.
var DefaultRedactPaths = []string{"password", "token", "headers.authorization"}

// Recorder observes every gated call. Implementations must not block.
type Recorder interface {
	Record(level string, emitted bool)
}

type Option func(*options)

type options struct {
	level    *Level
	cfg      *config.Config
	out      io.Writer
	errOut   io.Writer
	factory  BackendFactory
	redact   []string
	recorder Recorder
}

// WithLevel fixes the threshold and bypasses the environment entirely.
func WithLevel(level Level) Option {
	return func(o *options) {
		o.level = &level
	}
}

// WithConfig resolves from the given snapshot instead of the process environment.
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		o.cfg = &cfg
	}
}

// WithOutput replaces stdout and stderr. A nil writer keeps the default.
func WithOutput(out, errOut io.Writer) Option {
	return func(o *options) {
		if out != nil {
			o.out = out
		}
		if errOut != nil {
			o.errOut = errOut
		}
	}
}

func WithBackendFactory(factory BackendFactory) Option {
	return func(o *options) {
		o.factory = factory
	}
}

func WithRedactPaths(paths ...string) Option {
	return func(o *options) {
		o.redact = paths
	}
}

func WithRecorder(r Recorder) Option {
	return func(o *options) {
		o.recorder = r
	}
}

func buildOptions(opts []Option) *options {
	o := &options{
		out:     os.Stdout,
		errOut:  os.Stderr,
		factory: NewZerologBackend,
		redact:  DefaultRedactPaths,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.cfg == nil {
		cfg := loadConfig()
		o.cfg = &cfg
	}
	return o
}

// threshold applies the override before consulting the snapshot.
func (o *options) threshold() (Level, Source) {
	if o.level != nil {
		return *o.level, SourceOverride
	}
	return Explain(*o.cfg)
}
