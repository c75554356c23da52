// Package settings reads raw string settings from a Source and converts them into typed values.
//
// An Accessor is built once around a Source and a Locale and is then shared for the lifetime
// of the process:
//
//	accessor, err := settings.New(env.New("BILLING"), settings.WithLocale(settings.EnglishGB))
//	retries, err := settings.GetOr(accessor, "retries", 3)
//	hosts, err := settings.GetArray[string](accessor, "hosts")
//
// # Supported types
//
// string, bool, every sized int and uint, float32, float64, decimal.Decimal, time.Time and
// time.Duration. A pointer to any of them is the nullable form: an absent setting yields nil
// instead of an error matching ErrNullValue.
//
// # Errors and defaults
//
// Conversion failures are *ConversionError values carrying the key, the type name and the raw
// value; they match ErrFormat, ErrOverflow or ErrNullValue with errors.Is. GetOr replaces those
// three failures with its default. GetArrayOr accepts a default but never returns it; a failing
// array is always reported to the caller.
//
// # Arrays
//
// Array settings are split on ArraySeparator. There is no escaping, so a comma can never be part
// of an element, and a locale using ',' as decimal separator cannot express fractional arrays.
package settings
