package settings

import (
	"log/slog"
	"strings"
)

// ArraySeparator splits array settings. Embedded separators cannot be escaped.
const ArraySeparator = ","

// Source is the raw key/value store an Accessor reads from.
// Lookup reports ok=false when the key is absent. Implementations must be safe for concurrent reads.
type Source interface {
	Lookup(key string) (value string, ok bool, err error)
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func(key string) (string, bool, error)

// Lookup calls f(key).
func (f SourceFunc) Lookup(key string) (string, bool, error) {
	return f(key)
}

// Accessor converts raw settings from a Source into typed values.
// It holds no mutable state and may be shared between goroutines.
type Accessor struct {
	source Source
	locale *Locale
	logger *slog.Logger
}

// New creates an Accessor reading from source.
// Without WithLocale the Invariant locale is used; without WithLogger, slog.Default().
func New(source Source, opts ...Option) (*Accessor, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	resolved := options{
		locale: Invariant,
		logger: nil,
	}

	for _, apply := range opts {
		apply(&resolved)
	}

	if resolved.locale == nil {
		resolved.locale = Invariant
	}

	if resolved.logger == nil {
		resolved.logger = slog.Default()
	}

	return &Accessor{
		source: source,
		locale: resolved.locale,
		logger: resolved.logger,
	}, nil
}

// Locale returns the locale used for parsing.
func (a *Accessor) Locale() *Locale {
	return a.locale
}

// Lookup returns the raw setting for key after validating the key.
func (a *Accessor) Lookup(key string) (string, bool, error) {
	err := validateKey(key)
	if err != nil {
		return "", false, err
	}

	return a.source.Lookup(key) //nolint:wrapcheck // source errors are passed through unchanged.
}

// Get returns the setting for key converted to T.
//
// An absent setting yields nil for a pointer T and an error matching ErrNullValue otherwise.
// Parse failures return a *ConversionError matching ErrFormat or ErrOverflow.
// Errors from the Source are returned unchanged.
func Get[T any](a *Accessor, key string) (T, error) {
	value, _, err := get[T](a, key)

	return value, err
}

// GetOr is like Get but returns def when the setting is malformed, out of range or absent.
// A nil result for a pointer T is also replaced by def.
// Invalid keys, unsupported types and Source errors are still returned.
func GetOr[T any](a *Accessor, key string, def T) (T, error) {
	value, hasValue, err := get[T](a, key)
	if err != nil {
		if !fallsBack(err) {
			return value, err
		}

		a.logger.Debug("setting replaced by default",
			slog.String("key", key),
			slog.String("type", typeName[T]()),
			slog.Any("error", err),
		)

		return def, nil
	}

	if !hasValue {
		return def, nil
	}

	return value, nil
}

// GetArray splits the setting for key on ArraySeparator and converts every segment to T.
// Segments are not trimmed; numeric, boolean and date parsing ignores surrounding whitespace.
// The first segment that fails to convert aborts the call with its *ConversionError.
func GetArray[T any](a *Accessor, key string) ([]T, error) {
	raw, err := Get[string](a, key)
	if err != nil {
		return nil, err
	}

	segments := strings.Split(raw, ArraySeparator)
	values := make([]T, 0, len(segments))

	for _, segment := range segments {
		value, _, err := convert[T](key, segment, true, a.locale)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return values, nil
}

// GetArrayOr validates def and then behaves exactly like GetArray.
//
// Unlike GetOr, conversion failures are returned rather than replaced by def.
// def is required for symmetry with GetOr but is never returned.
func GetArrayOr[T any](a *Accessor, key string, def []T) ([]T, error) {
	err := validateKey(key)
	if err != nil {
		return nil, err
	}

	if def == nil {
		return nil, invalidArgument("defaultValue", "must not be nil")
	}

	return GetArray[T](a, key)
}

func get[T any](a *Accessor, key string) (T, bool, error) {
	var zero T

	raw, present, err := a.Lookup(key)
	if err != nil {
		return zero, false, err
	}

	return convert[T](key, raw, present, a.locale)
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return invalidArgument("key", "must not be empty or whitespace")
	}

	return nil
}
