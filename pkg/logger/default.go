package logger

import (
	"os"
	"sync"
)

var (
	defaultOnce sync.Once
	defaultStd  *StandardLogger

	structuredOnce    sync.Once
	defaultStructured *StructuredLogger

	testOnce    sync.Once
	defaultTest *StandardLogger
)

// Default returns the process-wide standard logger, resolving its threshold
// from the environment on first use.
func Default() *StandardLogger {
	defaultOnce.Do(func() {
		defaultStd = NewStandard()
	})
	return defaultStd
}

func DefaultStructured() *StructuredLogger {
	structuredOnce.Do(func() {
		defaultStructured = NewStructured()
	})
	return defaultStructured
}

// DefaultTest returns the shared test logger, which writes everything to stdout.
func DefaultTest() *StandardLogger {
	testOnce.Do(func() {
		defaultTest = NewTestLogger(os.Stdout)
	})
	return defaultTest
}

func Error(msg string, meta ...any) { Default().Error(msg, meta...) }
func Warn(msg string, meta ...any) { Default().Warn(msg, meta...) }
func Info(msg string, meta ...any) { Default().Info(msg, meta...) }
func Debug(msg string, meta ...any) { Default().Debug(msg, meta...) }

func BrowserAuth(msg string) { Default().BrowserAuth(msg) }
func Refresh(msg string) { Default().Refresh(msg) }
func Success(msg string) { Default().Success(msg) }
func BrowserURL(url string) { Default().BrowserURL(url) }
func BrowserOpening() { Default().BrowserOpening() }
func TestSkip(msg string) { Default().TestSkip(msg) }
