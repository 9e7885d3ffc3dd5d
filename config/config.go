package config

import (
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const (
	EnvProduction = "production"
	EnvProd       = "prod"
)

const (
	LogLevelError = "error"
	LogLevelWarn  = "warn"
	LogLevelInfo  = "info"
	LogLevelDebug = "debug"
)

// Environment variables consulted by Load.
const (
	VarLogLevel     = "AUTH_LOG_LEVEL"
	VarDebugAuthLog = "DEBUG_AUTH_LOG"
	VarAppEnv       = "APP_ENV"
	VarNodeEnv      = "NODE_ENV"
)

type Config struct {
	LogLevel     string `mapstructure:"auth_log_level" json:"auth_log_level"`
	DebugAuthLog string `mapstructure:"debug_auth_log" json:"debug_auth_log"`
	Environment  string `mapstructure:"environment" json:"environment"`
}

// Load takes a snapshot of the logging environment. Every call builds its own
// viper instance, so the result reflects the environment at call time only.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("auth_log_level", "")
	v.SetDefault("debug_auth_log", "")
	v.SetDefault("environment", "")

	if err := v.BindEnv("auth_log_level", VarLogLevel); err != nil {
		return nil, err
	}
	if err := v.BindEnv("debug_auth_log", VarDebugAuthLog); err != nil {
		return nil, err
	}
	if err := v.BindEnv("environment", VarAppEnv, VarNodeEnv); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal logging environment", slog.String("error", err.Error()))
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Environment) {
	case EnvProduction, EnvProd:
		return true
	default:
		return false
	}
}

// Validate reports values that resolution will ignore. It never changes how a
// threshold is resolved; unrecognized values still fall through silently.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.By(oneOfFold(LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelDebug)),
		),
		validation.Field(&c.DebugAuthLog,
			validation.In("true", "false").Error("must be \"true\" or \"false\""),
		),
	)
}

func oneOfFold(allowed ...string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return validation.NewError("validation_invalid_type", "must be a string")
		}
		if s == "" {
			return nil
		}
		for _, a := range allowed {
			if strings.EqualFold(s, a) {
				return nil
			}
		}
		return validation.NewError("validation_invalid_level", "must be one of "+strings.Join(allowed, ", "))
	}
}
