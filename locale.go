package settings

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Locale holds the culture rules used to parse numbers and dates.
// A Locale is chosen once per Accessor; it is never a per-call parameter.
type Locale struct {
	// Tag is the BCP 47 tag this locale was built for.
	Tag language.Tag
	// DecimalSeparator separates the integral and fractional parts of a number.
	DecimalSeparator string
	// GroupSeparator separates digit groups and is ignored when parsing decimals.
	GroupSeparator string
	// DateLayouts are tried in order when parsing a time.Time.
	DateLayouts []string
	// Location is the time zone applied to date layouts without an offset.
	Location *time.Location
}

//nolint:gochecknoglobals // layouts shared by every built-in locale.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

//nolint:gochecknoglobals // built-in locales are immutable values.
var (
	// Invariant is the culture-neutral locale: month-first dates, '.' decimal separator.
	Invariant = &Locale{
		Tag:              language.Und,
		DecimalSeparator: ".",
		GroupSeparator:   ",",
		DateLayouts: withISO(
			"1/2/2006 15:04:05",
			"1/2/2006 15:04",
			"1/2/2006",
		),
		Location: time.UTC,
	}

	// EnglishUS parses month-first dates and accepts 12-hour clock times.
	EnglishUS = &Locale{
		Tag:              language.AmericanEnglish,
		DecimalSeparator: ".",
		GroupSeparator:   ",",
		DateLayouts: withISO(
			"1/2/2006 3:04:05 PM",
			"1/2/2006 3:04 PM",
			"1/2/2006 15:04:05",
			"1/2/2006 15:04",
			"1/2/2006",
		),
		Location: time.UTC,
	}

	// EnglishGB parses day-first dates.
	EnglishGB = &Locale{
		Tag:              language.BritishEnglish,
		DecimalSeparator: ".",
		GroupSeparator:   ",",
		DateLayouts: withISO(
			"2/1/2006 15:04:05",
			"2/1/2006 15:04",
			"2/1/2006",
		),
		Location: time.UTC,
	}

	// German uses ',' as decimal separator and dotted day-first dates.
	German = &Locale{
		Tag:              language.German,
		DecimalSeparator: ",",
		GroupSeparator:   ".",
		DateLayouts: withISO(
			"2.1.2006 15:04:05",
			"2.1.2006 15:04",
			"2.1.2006",
		),
		Location: time.UTC,
	}

	// French uses ',' as decimal separator and a narrow no-break space for grouping.
	French = &Locale{
		Tag:              language.French,
		DecimalSeparator: ",",
		GroupSeparator:   "\u202f",
		DateLayouts: withISO(
			"2/1/2006 15:04:05",
			"2/1/2006 15:04",
			"2/1/2006",
		),
		Location: time.UTC,
	}
)

//nolint:gochecknoglobals // index-aligned with localeMatcher.
var knownLocales = []*Locale{Invariant, EnglishUS, EnglishGB, German, French}

//nolint:gochecknoglobals // matcher is safe for concurrent use.
var localeMatcher = language.NewMatcher([]language.Tag{
	Invariant.Tag,
	EnglishUS.Tag,
	EnglishGB.Tag,
	German.Tag,
	French.Tag,
})

// LookupLocale resolves a BCP 47 name such as "en-GB" or "de-AT" to the closest built-in locale.
// An empty name or "invariant" selects Invariant.
func LookupLocale(name string) (*Locale, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "invariant") {
		return Invariant, nil
	}

	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnsupportedLocale, name, err)
	}

	if tag == language.Und {
		return Invariant, nil
	}

	_, index, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedLocale, name)
	}

	return knownLocales[index], nil
}

// In returns a copy of the locale that interprets dates in loc.
func (l *Locale) In(loc *time.Location) *Locale {
	clone := *l
	clone.DateLayouts = append([]string(nil), l.DateLayouts...)
	clone.Location = loc

	return &clone
}

// String returns the BCP 47 name of the locale, or "invariant".
func (l *Locale) String() string {
	if l.Tag == language.Und {
		return "invariant"
	}

	return l.Tag.String()
}

// normalizeNumber rewrites a locale-formatted number into the '.'-decimal form strconv expects.
func (l *Locale) normalizeNumber(s string) string {
	if l.GroupSeparator != "" {
		s = strings.ReplaceAll(s, l.GroupSeparator, "")
	}

	if l.DecimalSeparator != "" && l.DecimalSeparator != "." {
		s = strings.ReplaceAll(s, l.DecimalSeparator, ".")
	}

	return s
}

func (l *Locale) parseTime(s string) (time.Time, error) {
	loc := l.Location
	if loc == nil {
		loc = time.UTC
	}

	var firstErr error

	for _, layout := range l.DateLayouts {
		parsed, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return parsed, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	if firstErr == nil {
		firstErr = fmt.Errorf("locale %s has no date layouts", l)
	}

	return time.Time{}, firstErr
}

func withISO(layouts ...string) []string {
	return append(layouts, isoLayouts...)
}
