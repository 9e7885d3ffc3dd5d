package logger

import (
	"encoding/json"
	"fmt"
	"io"
)

// StandardLogger writes "[LEVEL] icon message" lines to stdout (info, debug)
// and stderr (error, warn). Metadata, when given, follows as a JSON line on
// the same stream.
type StandardLogger struct {
	conveniences

	level    Level
	source   Source
	out      io.Writer
	errOut   io.Writer
	recorder Recorder
}

func NewStandard(opts ...Option) *StandardLogger {
	o := buildOptions(opts)
	level, source := o.threshold()
	return newStandard(level, source, o.out, o.errOut, o.recorder)
}

// NewTestLogger sends every level, debug included, to w.
func NewTestLogger(w io.Writer, opts ...Option) *StandardLogger {
	return NewStandard(append(opts[:len(opts):len(opts)], WithOutput(w, w))...)
}

func newStandard(level Level, source Source, out, errOut io.Writer, recorder Recorder) *StandardLogger {
	l := &StandardLogger{
		level:    level,
		source:   source,
		out:      out,
		errOut:   errOut,
		recorder: recorder,
	}
	l.conveniences = conveniences{base: l}
	return l
}

func (l *StandardLogger) Level() Level {
	return l.level
}

// Source reports which rule decided the threshold.
func (l *StandardLogger) Source() Source {
	return l.source
}

func (l *StandardLogger) Error(msg string, meta ...any) {
	l.log(l.errOut, LevelError, msg, meta)
}

func (l *StandardLogger) Warn(msg string, meta ...any) {
	l.log(l.errOut, LevelWarn, msg, meta)
}

func (l *StandardLogger) Info(msg string, meta ...any) {
	l.log(l.out, LevelInfo, msg, meta)
}

func (l *StandardLogger) Debug(msg string, meta ...any) {
	l.log(l.out, LevelDebug, msg, meta)
}

func (l *StandardLogger) log(w io.Writer, level Level, msg string, meta []any) {
	emitted := l.level.Allows(level)
	if l.recorder != nil {
		l.recorder.Record(level.String(), emitted)
	}
	if !emitted {
		return
	}

	fmt.Fprintf(w, "[%s] %s %s\n", level.Tag(), level.Icon(), msg)

	if m := metaValue(meta); m != nil {
		fmt.Fprintf(w, "%s\n", encodeMeta(m))
	}
}

// encodeMeta prefers JSON and falls back to %+v so metadata is never lost.
func encodeMeta(meta any) string {
	b, err := json.Marshal(meta)
	if err != nil {
		return fmt.Sprintf("%+v", meta)
	}
	return string(b)
}
