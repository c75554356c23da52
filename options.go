package settings

import "log/slog"

type options struct {
	locale *Locale
	logger *slog.Logger
}

// Option defines a function type for configuring an Accessor.
type Option func(*options)

// WithLocale sets the locale used to parse numbers and dates.
// A nil locale selects Invariant.
func WithLocale(locale *Locale) Option {
	return func(opts *options) {
		opts.locale = locale
	}
}

// WithLogger sets the logger that records default substitutions.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// ConfigOption defines a function type for building a Config in code.
type ConfigOption func(*Config)

// WithLocaleName sets Config.Locale, a BCP 47 name such as "en-GB".
func WithLocaleName(name string) ConfigOption {
	return func(cfg *Config) {
		cfg.Locale = name
	}
}

// WithTimeZone sets Config.TimeZone, an IANA zone name such as "Europe/London".
func WithTimeZone(zone string) ConfigOption {
	return func(cfg *Config) {
		cfg.TimeZone = zone
	}
}

// WithLogLevel sets Config.LogLevel.
// Valid levels are: "debug", "info", "warn", "error".
func WithLogLevel(level string) ConfigOption {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}
