package settings

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	errSyntax     = errors.New("invalid syntax")
	errOutOfRange = errors.New("value out of range")
)

// goDuration matches the syntax accepted by time.ParseDuration.
var goDuration = regexp.MustCompile(`^[-+]?(?:(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:ns|us|µs|μs|ms|s|m|h))+$`)

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

// strategy is the conversion registered for one target type.
// parse holds a func(string, *Locale) (T, error) for exactly that T.
type strategy struct {
	parse    any
	nullable bool
}

//nolint:gochecknoglobals // read-only after package initialization.
var strategies = buildStrategies()

func buildStrategies() map[reflect.Type]strategy {
	table := make(map[reflect.Type]strategy)

	register(table, parseString)
	register(table, parseBool)
	register(table, parseSigned[int])
	register(table, parseSigned[int8])
	register(table, parseSigned[int16])
	register(table, parseSigned[int32])
	register(table, parseSigned[int64])
	register(table, parseUnsigned[uint])
	register(table, parseUnsigned[uint8])
	register(table, parseUnsigned[uint16])
	register(table, parseUnsigned[uint32])
	register(table, parseUnsigned[uint64])
	register(table, parseFloat[float32])
	register(table, parseFloat[float64])
	register(table, parseDecimal)
	register(table, parseTime)
	register(table, parseDuration)

	return table
}

// register adds the conversion for T and its nullable form *T.
func register[T any](table map[reflect.Type]strategy, parse func(string, *Locale) (T, error)) {
	table[reflect.TypeFor[T]()] = strategy{parse: parse, nullable: false}
	table[reflect.TypeFor[*T]()] = strategy{parse: nullable(parse), nullable: true}
}

func nullable[T any](parse func(string, *Locale) (T, error)) func(string, *Locale) (*T, error) {
	return func(s string, locale *Locale) (*T, error) {
		value, err := parse(s, locale)
		if err != nil {
			return nil, err
		}

		return &value, nil
	}
}

// Supports reports whether T can be requested from an Accessor.
func Supports[T any]() bool {
	_, ok := strategies[reflect.TypeFor[T]()]

	return ok
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// convert turns a raw setting into T. hasValue is false only for a nullable T and an absent raw value.
func convert[T any](key, raw string, present bool, locale *Locale) (value T, hasValue bool, err error) {
	var zero T

	found, ok := strategies[reflect.TypeFor[T]()]
	if !ok {
		return zero, false, fmt.Errorf("%w: %s", ErrUnsupportedType, typeName[T]())
	}

	if !present {
		if found.nullable {
			return zero, false, nil
		}

		return zero, false, &ConversionError{
			Key:     key,
			Type:    typeName[T](),
			Value:   "",
			Present: false,
			Kind:    KindNullValue,
			Err:     nil,
		}
	}

	parse, ok := found.parse.(func(string, *Locale) (T, error))
	if !ok {
		return zero, false, fmt.Errorf("%w: %s", ErrUnsupportedType, typeName[T]())
	}

	value, err = parse(raw, locale)
	if err != nil {
		return zero, false, &ConversionError{
			Key:     key,
			Type:    typeName[T](),
			Value:   raw,
			Present: true,
			Kind:    kindOf(err),
			Err:     err,
		}
	}

	return value, true, nil
}

func kindOf(err error) ConversionKind {
	if errors.Is(err, strconv.ErrRange) || errors.Is(err, errOutOfRange) {
		return KindOverflow
	}

	return KindFormat
}

func parseString(s string, _ *Locale) (string, error) {
	return s, nil
}

func parseBool(s string, _ *Locale) (bool, error) {
	switch trimmed := strings.TrimSpace(s); {
	case strings.EqualFold(trimmed, "true"):
		return true, nil
	case strings.EqualFold(trimmed, "false"):
		return false, nil
	default:
		return false, fmt.Errorf("parsing %q as bool: %w", s, errSyntax)
	}
}

func parseSigned[T signed](s string, _ *Locale) (T, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(s), 10, reflect.TypeFor[T]().Bits())
	if err != nil {
		return 0, err //nolint:wrapcheck // *strconv.NumError carries the input and the reason.
	}

	return T(parsed), nil
}

func parseUnsigned[T unsigned](s string, _ *Locale) (T, error) {
	trimmed := strings.TrimSpace(s)

	if strings.HasPrefix(trimmed, "-") {
		negative, err := strconv.ParseInt(trimmed, 10, 64)
		if err == nil && negative == 0 {
			return 0, nil
		}

		if err == nil || errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("parsing %q as %s: %w", s, typeName[T](), errOutOfRange)
		}

		return 0, err //nolint:wrapcheck // *strconv.NumError carries the input and the reason.
	}

	parsed, err := strconv.ParseUint(strings.TrimPrefix(trimmed, "+"), 10, reflect.TypeFor[T]().Bits())
	if err != nil {
		return 0, err //nolint:wrapcheck // *strconv.NumError carries the input and the reason.
	}

	return T(parsed), nil
}

func parseFloat[T float](s string, locale *Locale) (T, error) {
	normalized := locale.normalizeNumber(strings.TrimSpace(s))
	if !isPlainNumber(normalized) {
		return 0, errSyntax
	}

	parsed, err := strconv.ParseFloat(normalized, reflect.TypeFor[T]().Bits())
	if err != nil {
		return 0, err //nolint:wrapcheck // *strconv.NumError carries the input and the reason.
	}

	return T(parsed), nil
}

func parseDecimal(s string, locale *Locale) (decimal.Decimal, error) {
	normalized := locale.normalizeNumber(strings.TrimSpace(s))
	if !isPlainNumber(normalized) {
		return decimal.Zero, fmt.Errorf("parsing %q as decimal: %w", s, errSyntax)
	}

	parsed, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %q as decimal: %w", s, err)
	}

	return parsed, nil
}

// isPlainNumber rejects hex floats, NaN and infinities, which are not culture-formatted numbers.
func isPlainNumber(s string) bool {
	return !strings.ContainsFunc(s, func(r rune) bool {
		return !strings.ContainsRune("0123456789+-.eE", r)
	})
}

func parseTime(s string, locale *Locale) (time.Time, error) {
	parsed, err := locale.parseTime(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %q as date time in locale %s: %w", s, locale, err)
	}

	return parsed, nil
}

// parseDuration accepts Go duration syntax ("1h30m") and the clock form "hh:mm[:ss]".
func parseDuration(s string, _ *Locale) (time.Duration, error) {
	trimmed := strings.TrimSpace(s)

	parsed, err := time.ParseDuration(trimmed)
	if err == nil {
		return parsed, nil
	}

	// time.ParseDuration only rejects well-formed input that does not fit in a time.Duration.
	if goDuration.MatchString(trimmed) {
		return 0, fmt.Errorf("parsing %q as duration: %w", s, errOutOfRange)
	}

	clock, clockErr := parseClock(trimmed)
	if errors.Is(clockErr, errOutOfRange) {
		return 0, fmt.Errorf("parsing %q as duration: %w", s, clockErr)
	}

	if clockErr != nil {
		return 0, fmt.Errorf("parsing %q as duration: %w", s, err)
	}

	return clock, nil
}

func parseClock(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, errSyntax
	}

	units := []time.Duration{time.Hour, time.Minute, time.Second}

	var total time.Duration

	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return 0, errOutOfRange
		}

		if err != nil {
			return 0, errSyntax
		}

		if i > 0 && n > 59 {
			return 0, errSyntax
		}

		if n > uint64(math.MaxInt64/units[i]) {
			return 0, errOutOfRange
		}

		add := time.Duration(n) * units[i]
		if total > math.MaxInt64-add {
			return 0, errOutOfRange
		}

		total += add
	}

	return total, nil
}
