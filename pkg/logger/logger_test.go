package logger_test

import (
	"bytes"
	"math"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/auth-logger/config"
	"github.com/angeloszaimis/auth-logger/pkg/logger"
)

type recorded struct {
	level   string
	emitted bool
}

type fakeRecorder struct {
	calls []recorded
}

func (r *fakeRecorder) Record(level string, emitted bool) {
	r.calls = append(r.calls, recorded{level: level, emitted: emitted})
}

var _ = Describe("StandardLogger", func() {
	var (
		out    *bytes.Buffer
		errOut *bytes.Buffer
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		errOut = &bytes.Buffer{}
	})

	newLogger := func(level logger.Level) *logger.StandardLogger {
		return logger.NewStandard(logger.WithLevel(level), logger.WithOutput(out, errOut))
	}

	Describe("NewStandard", func() {
		It("should use an explicit level regardless of the environment", func() {
			log := logger.NewStandard(
				logger.WithConfig(config.Config{LogLevel: "debug", DebugAuthLog: "true"}),
				logger.WithLevel(logger.LevelError),
			)
			Expect(log.Level()).To(Equal(logger.LevelError))
			Expect(log.Source()).To(Equal(logger.SourceOverride))
		})

		It("should resolve from a config snapshot", func() {
			log := logger.NewStandard(logger.WithConfig(config.Config{LogLevel: "warn"}))
			Expect(log.Level()).To(Equal(logger.LevelWarn))
			Expect(log.Source()).To(Equal(logger.SourceEnv))
		})

		Context("with the process environment", func() {
			AfterEach(func() {
				os.Unsetenv(config.VarLogLevel)
			})

			It("should not follow environment changes after construction", func() {
				os.Setenv(config.VarLogLevel, "error")
				log := logger.NewStandard(logger.WithOutput(out, errOut))

				os.Setenv(config.VarLogLevel, "debug")
				log.Info("hidden")

				Expect(log.Level()).To(Equal(logger.LevelError))
				Expect(out.String()).To(BeEmpty())
			})
		})
	})

	Describe("severity methods", func() {
		It("should write error and warn to stderr", func() {
			log := newLogger(logger.LevelDebug)
			log.Error("boom")
			log.Warn("careful")

			Expect(errOut.String()).To(Equal("[ERROR] 💥 boom\n[WARN] ⚠️ careful\n"))
			Expect(out.String()).To(BeEmpty())
		})

		It("should write info and debug to stdout", func() {
			log := newLogger(logger.LevelDebug)
			log.Info("hello")
			log.Debug("details")

			Expect(out.String()).To(Equal("[INFO] ℹ️ hello\n[DEBUG] 🐛 details\n"))
			Expect(errOut.String()).To(BeEmpty())
		})

		It("should suppress info and debug at the warn threshold", func() {
			log := newLogger(logger.LevelWarn)
			log.Error("e")
			log.Warn("w")
			log.Info("i")
			log.Debug("d")

			Expect(errOut.String()).To(Equal("[ERROR] 💥 e\n[WARN] ⚠️ w\n"))
			Expect(out.String()).To(BeEmpty())
		})

		It("should only emit errors at the error threshold", func() {
			log := newLogger(logger.LevelError)
			log.Error("e")
			log.Warn("w")
			log.Info("i")
			log.Debug("d")

			Expect(errOut.String()).To(Equal("[ERROR] 💥 e\n"))
			Expect(out.String()).To(BeEmpty())
		})
	})

	Describe("metadata", func() {
		It("should write metadata as a JSON line after the message", func() {
			log := newLogger(logger.LevelInfo)
			log.Info("login", map[string]any{"user": "alice"})

			Expect(out.String()).To(Equal("[INFO] ℹ️ login\n{\"user\":\"alice\"}\n"))
		})

		It("should keep metadata on the stream of its level", func() {
			log := newLogger(logger.LevelInfo)
			log.Error("failed", map[string]int{"status": 401})

			Expect(errOut.String()).To(Equal("[ERROR] 💥 failed\n{\"status\":401}\n"))
		})

		It("should write several metadata values as an array", func() {
			log := newLogger(logger.LevelInfo)
			log.Info("pair", "a", 1)

			Expect(out.String()).To(Equal("[INFO] ℹ️ pair\n[\"a\",1]\n"))
		})

		It("should fall back to fmt formatting for values JSON cannot encode", func() {
			log := newLogger(logger.LevelInfo)
			log.Info("nan", math.NaN())

			Expect(out.String()).To(Equal("[INFO] ℹ️ nan\nNaN\n"))
		})

		It("should write no metadata line for a nil value", func() {
			log := newLogger(logger.LevelInfo)
			log.Info("plain", nil)

			Expect(out.String()).To(Equal("[INFO] ℹ️ plain\n"))
		})

		It("should not write suppressed metadata", func() {
			log := newLogger(logger.LevelError)
			log.Debug("hidden", map[string]any{"k": "v"})

			Expect(out.String()).To(BeEmpty())
		})
	})

	Describe("convenience methods", func() {
		It("should decorate info messages", func() {
			log := newLogger(logger.LevelInfo)
			log.BrowserAuth("x")
			log.Refresh("refreshing token")
			log.Success("done")
			log.BrowserURL("https://example.com/auth")
			log.TestSkip("no credentials")

			Expect(out.String()).To(Equal(
				"[INFO] ℹ️ 🌐 x\n" +
					"[INFO] ℹ️ 🔄 refreshing token\n" +
					"[INFO] ℹ️ ✅ done\n" +
					"[INFO] ℹ️ 🔗 Open in browser: https://example.com/auth\n" +
					"[INFO] ℹ️ ⏭️  no credentials\n",
			))
		})

		It("should suppress info wrappers at the warn threshold", func() {
			log := newLogger(logger.LevelWarn)
			log.BrowserAuth("x")
			log.Refresh("x")
			log.Success("x")
			log.BrowserURL("x")
			log.TestSkip("x")

			Expect(out.String()).To(BeEmpty())
			Expect(errOut.String()).To(BeEmpty())
		})

		It("should only announce browser opening at debug", func() {
			log := newLogger(logger.LevelDebug)
			log.BrowserOpening()
			Expect(out.String()).To(Equal("[DEBUG] 🐛 🌐 Opening browser for authentication...\n"))
		})

		It("should write nothing for browser opening below debug", func() {
			for _, lvl := range []logger.Level{logger.LevelError, logger.LevelWarn, logger.LevelInfo} {
				log := newLogger(lvl)
				log.BrowserOpening()
			}
			Expect(out.String()).To(BeEmpty())
			Expect(errOut.String()).To(BeEmpty())
		})
	})

	It("should produce identical output for identical calls", func() {
		log := newLogger(logger.LevelInfo)
		log.Info("same", map[string]any{"n": 1})
		first := out.String()
		out.Reset()

		log.Info("same", map[string]any{"n": 1})
		Expect(out.String()).To(Equal(first))
	})

	It("should report every gated call to the recorder", func() {
		rec := &fakeRecorder{}
		log := logger.NewStandard(logger.WithLevel(logger.LevelWarn), logger.WithOutput(out, errOut), logger.WithRecorder(rec))
		log.Warn("w")
		log.Info("i")
		log.BrowserOpening()

		Expect(rec.calls).To(Equal([]recorded{
			{level: "warn", emitted: true},
			{level: "info", emitted: false},
			{level: "debug", emitted: false},
		}))
	})
})

var _ = Describe("NewTestLogger", func() {
	It("should send every level to a single writer", func() {
		buf := &bytes.Buffer{}
		log := logger.NewTestLogger(buf, logger.WithLevel(logger.LevelDebug))
		log.Error("e")
		log.Debug("d")

		Expect(buf.String()).To(Equal("[ERROR] 💥 e\n[DEBUG] 🐛 d\n"))
	})

	It("should not write into the caller's option slice", func() {
		opts := make([]logger.Option, 1, 2)
		opts[0] = logger.WithLevel(logger.LevelDebug)

		logger.NewTestLogger(&bytes.Buffer{}, opts...)
		Expect(opts[:cap(opts)][1]).To(BeNil())
	})

	It("should honour the threshold", func() {
		log := logger.NewTestLogger(GinkgoWriter, logger.WithLevel(logger.LevelInfo))
		Expect(log.Level()).To(Equal(logger.LevelInfo))
		log.Info("visible in verbose runs")
	})
})
