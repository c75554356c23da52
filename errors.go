package settings

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a caller passes an empty key or a nil required argument.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrFormat is matched by conversion errors where the raw value could not be parsed.
var ErrFormat = errors.New("setting was not in the correct format")

// ErrOverflow is matched by conversion errors where the parsed value does not fit the target type.
var ErrOverflow = errors.New("setting caused an overflow")

// ErrNullValue is matched by conversion errors where a non-nullable type received an absent value.
var ErrNullValue = errors.New("setting returned null")

// ErrUnsupportedType is returned when no conversion is registered for the requested type.
var ErrUnsupportedType = errors.New("unsupported target type")

// ErrUnsupportedLocale is returned when a locale name cannot be matched to a known locale.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// ErrNilSource is returned when an Accessor is built without a Source.
var ErrNilSource = errors.New("source must not be nil")

// ConversionKind categorizes a ConversionError.
type ConversionKind uint8

const (
	// KindFormat means the raw value could not be parsed.
	KindFormat ConversionKind = iota
	// KindOverflow means the value was out of range for the target type.
	KindOverflow
	// KindNullValue means the setting was absent and the target type is not nullable.
	KindNullValue
)

// String returns a short name for the kind.
func (k ConversionKind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindOverflow:
		return "overflow"
	case KindNullValue:
		return "null_value"
	default:
		return "unknown"
	}
}

func (k ConversionKind) sentinel() error {
	switch k {
	case KindOverflow:
		return ErrOverflow
	case KindNullValue:
		return ErrNullValue
	default:
		return ErrFormat
	}
}

// ConversionError describes a setting that could not be converted to the requested type.
type ConversionError struct {
	// Key is the setting key that was requested.
	Key string
	// Type is the name of the requested type.
	Type string
	// Value is the offending raw value. For array getters it is the failing segment.
	Value string
	// Present is false when the source reported the key as absent.
	Present bool
	// Kind categorizes the failure.
	Kind ConversionKind
	// Err is the underlying parse error, if any.
	Err error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	switch e.Kind {
	case KindNullValue:
		return fmt.Sprintf("setting %q returned null and type %s cannot have a null value", e.Key, e.Type)
	case KindOverflow:
		return fmt.Sprintf("setting %q caused an overflow: expected type %s, setting value = %q", e.Key, e.Type, e.Value)
	default:
		return fmt.Sprintf("setting %q was not in the correct format: expected type %s, setting value = %q",
			e.Key, e.Type, e.Value)
	}
}

// Unwrap returns the underlying parse error.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *ConversionError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// fallsBack reports whether err is one of the failures a defaulted getter replaces with its default.
func fallsBack(err error) bool {
	var convErr *ConversionError

	return errors.As(err, &convErr)
}

func invalidArgument(name, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidArgument, name, reason)
}
