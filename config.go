package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // zone names must resolve in minimal containers.

	"github.com/0xalexb/hjarta-settings/logging"
)

// DefaultLocale is the locale name applied when Config.Locale is empty.
const DefaultLocale = "invariant"

// DefaultTimeZone is the zone applied when Config.TimeZone is empty.
const DefaultTimeZone = "UTC"

// ErrInvalidTimeZone is returned when Config.TimeZone is not a known IANA zone.
var ErrInvalidTimeZone = errors.New("invalid time zone")

// Config holds the deployment-wide parsing settings of an Accessor.
// It satisfies config.Defaulter and config.Validator, so it can be loaded with config.Provider.
type Config struct {
	Locale   string `yaml:"locale"`
	TimeZone string `yaml:"time_zone"`
	LogLevel string `yaml:"log_level"`
}

// SetDefaults fills empty fields and reports whether anything changed.
func (c *Config) SetDefaults() bool {
	changed := false

	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = DefaultLocale
		changed = true
	}

	if strings.TrimSpace(c.TimeZone) == "" {
		c.TimeZone = DefaultTimeZone
		changed = true
	}

	return changed
}

// Validate checks that the locale and time zone can be resolved.
func (c *Config) Validate() error {
	_, err := c.resolveLocale()

	return err
}

func (c *Config) resolveLocale() (*Locale, error) {
	locale, err := LookupLocale(c.Locale)
	if err != nil {
		return nil, err
	}

	zone := c.TimeZone
	if zone == "" {
		zone = DefaultTimeZone
	}

	location, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidTimeZone, zone, err)
	}

	return locale.In(location), nil
}

// NewFromConfig creates an Accessor whose locale and time zone come from cfg.
// When logger is nil a JSON logger writing to stderr at cfg.LogLevel is created.
func NewFromConfig(source Source, cfg Config, logger *slog.Logger) (*Accessor, error) {
	cfg.SetDefaults()

	locale, err := cfg.resolveLocale()
	if err != nil {
		return nil, fmt.Errorf("resolving locale: %w", err)
	}

	if logger == nil {
		logger = logging.NewLogger(logging.LoggerConfig{Level: cfg.LogLevel, Format: ""}, os.Stderr)
	}

	return New(source, WithLocale(locale), WithLogger(logger))
}
