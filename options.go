package srcfg

import (
	"fmt"
	"log/slog"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"

	"github.com/0xalexb/srcfg/interp"
)

// EnvPrefix prefixes the environment variables Settings are read from.
const EnvPrefix = "SRCFG_"

// Settings are the parser knobs that may also come from the environment
// (SRCFG_LOG_LEVEL, SRCFG_LOG_FORMAT, SRCFG_MAX_IMPORT_DEPTH).
type Settings struct {
	LogLevel       string `env:"LOG_LEVEL"`
	LogFormat      string `env:"LOG_FORMAT"`
	MaxImportDepth int    `env:"MAX_IMPORT_DEPTH"`
}

// DefaultSettings fill whatever neither options nor environment set.
//
//nolint:gochecknoglobals // read-only defaults.
var DefaultSettings = Settings{
	LogLevel:       "info",
	LogFormat:      "json",
	MaxImportDepth: 32,
}

// Resolver locates import targets. See config/fetcher/file for the
// filesystem implementation.
type Resolver interface {
	Resolve(target, baseDir string) (string, error)
}

// Options holds configuration settings for a Parser.
type Options struct {
	Settings

	Logger   *slog.Logger
	Env      interp.Env
	Resolver Resolver
	Environ  map[string]string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithLogLevel sets the log level of the parser's own logger.
// Valid levels are: "debug", "info", "warn", "error".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" or "text" output for the parser's own logger.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogger makes the parser log through logger; level and format settings
// are then ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithEnv sets the variables ${NAME} placeholders are resolved from.
// The default is the live process environment.
func WithEnv(e interp.Env) Option {
	return func(opts *Options) {
		opts.Env = e
	}
}

// WithResolver replaces the filesystem resolver used for @import and ParseFile.
func WithResolver(resolver Resolver) Option {
	return func(opts *Options) {
		opts.Resolver = resolver
	}
}

// WithMaxImportDepth bounds how deeply imports may nest.
func WithMaxImportDepth(depth int) Option {
	return func(opts *Options) {
		opts.MaxImportDepth = depth
	}
}

// WithEnviron sets the variables SRCFG_* settings are read from, instead of
// the process environment.
func WithEnviron(environ map[string]string) Option {
	return func(opts *Options) {
		opts.Environ = environ
	}
}

// resolveSettings layers explicit settings over environment settings over
// DefaultSettings.
func resolveSettings(explicit Settings, environ map[string]string) (Settings, error) {
	var fromEnv Settings

	err := env.ParseWithOptions(&fromEnv, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	})
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings from environment: %w", err)
	}

	settings := explicit

	err = mergo.Merge(&settings, fromEnv)
	if err != nil {
		return Settings{}, fmt.Errorf("merging environment settings: %w", err)
	}

	err = mergo.Merge(&settings, DefaultSettings)
	if err != nil {
		return Settings{}, fmt.Errorf("merging default settings: %w", err)
	}

	return settings, nil
}
