package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/angeloszaimis/auth-logger/config"
	"github.com/angeloszaimis/auth-logger/internal/metrics"
	"github.com/angeloszaimis/auth-logger/pkg/logger"
)

const (
	VariantStandard   = "standard"
	VariantStructured = "structured"
	VariantTest       = "test"
)

type rootOptions struct {
	envFile string
	level   string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "authlog",
		Short:        "Inspect and exercise the authentication logger",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "load variables from a .env file before resolving the level")
	cmd.PersistentFlags().StringVar(&opts.level, "level", "", "explicit threshold (error, warn, info, debug); ignores the environment")

	cmd.AddCommand(newLevelCommand(opts), newDemoCommand(opts))
	return cmd
}

func newLevelCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "level",
		Short: "Print the resolved threshold and where it came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, loggerOpts, err := loadEnvironment(opts)
			if err != nil {
				return err
			}

			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			if err := cfg.Validate(); err != nil {
				log.Warn("environment has values the logger will ignore", slog.String("error", err.Error()))
			}

			std := logger.NewStandard(loggerOpts...)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "threshold:   %s\n", std.Level())
			fmt.Fprintf(w, "source:      %s\n", std.Source())
			fmt.Fprintf(w, "environment: %s\n", cfg.Environment)
			fmt.Fprintf(w, "production:  %t\n", cfg.IsProduction())
			return nil
		},
	}
}

func newDemoCommand(opts *rootOptions) *cobra.Command {
	var (
		variant     string
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Emit one line through every logger method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, loggerOpts, err := loadEnvironment(opts)
			if err != nil {
				return err
			}

			m := metrics.NewMetrics()
			loggerOpts = append(loggerOpts,
				logger.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
				logger.WithRecorder(m),
			)

			diag := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			log := createLogger(diag, variant, cmd.OutOrStdout(), loggerOpts)
			emitSamples(log)

			if !showMetrics {
				return nil
			}

			registry := prometheus.NewRegistry()
			if err := registry.Register(metrics.NewExporter(m, variant)); err != nil {
				return fmt.Errorf("register exporter: %w", err)
			}
			return writeMetrics(cmd.OutOrStdout(), registry)
		},
	}

	cmd.Flags().StringVar(&variant, "variant", VariantStandard, "logger variant: standard, structured or test")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print emitted/suppressed counters afterwards")
	return cmd
}

// loadEnvironment seeds the process environment from --env-file, takes a
// snapshot and turns the flags into logger options.
func loadEnvironment(opts *rootOptions) (*config.Config, []logger.Option, error) {
	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil {
			return nil, nil, fmt.Errorf("load env file %s: %w", opts.envFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load environment: %w", err)
	}

	loggerOpts := []logger.Option{logger.WithConfig(*cfg)}
	if opts.level != "" {
		lvl, ok := logger.ParseLevel(opts.level)
		if !ok {
			return nil, nil, fmt.Errorf("invalid --level %q: must be error, warn, info or debug", opts.level)
		}
		loggerOpts = append(loggerOpts, logger.WithLevel(lvl))
	}

	return cfg, loggerOpts, nil
}

func createLogger(log *slog.Logger, variant string, out io.Writer, opts []logger.Option) logger.Logger {
	switch variant {
	case VariantStandard:
		return logger.NewStandard(opts...)
	case VariantStructured:
		return logger.NewStructured(opts...)
	case VariantTest:
		return logger.NewTestLogger(out, opts...)
	default:
		log.Warn("Unknown variant, defaulting to standard", slog.String("requested", variant))
		return logger.NewStandard(opts...)
	}
}

func emitSamples(log logger.Logger) {
	log.Error("token exchange failed", map[string]any{"status": 401})
	log.Warn("refresh token expires soon")
	log.Info("using cached credentials")
	log.Debug("request headers", map[string]any{"headers": map[string]string{"authorization": "Bearer secret"}})
	log.BrowserAuth("starting browser authentication")
	log.Refresh("refreshing access token")
	log.Success("authenticated")
	log.BrowserURL("https://login.example.com/authorize")
	log.BrowserOpening()
	log.TestSkip("no service key configured")
}

func writeMetrics(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
