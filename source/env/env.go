// Package env provides a settings.Source backed by process environment variables.
//
// Setting keys are mapped to variable names by upper-casing them and replacing
// ':', '.', '-' and spaces with '_'. With prefix "BILLING" the key
// "database:port" is read from BILLING_DATABASE_PORT.
package env

import (
	"os"
	"strings"

	settings "github.com/0xalexb/hjarta-settings"
)

var _ settings.Source = (*Source)(nil)

//nolint:gochecknoglobals // immutable replacer.
var nameReplacer = strings.NewReplacer(":", "_", ".", "_", "-", "_", " ", "_")

// Source reads settings from environment variables.
type Source struct {
	prefix string
	lookup func(string) (string, bool)
}

// New creates a Source reading variables named PREFIX_KEY. An empty prefix reads KEY directly.
func New(prefix string) *Source {
	return &Source{
		prefix: strings.Trim(variableName(prefix), "_"),
		lookup: os.LookupEnv,
	}
}

// Name returns the environment variable consulted for key.
func (s *Source) Name(key string) string {
	name := variableName(key)
	if s.prefix == "" {
		return name
	}

	return s.prefix + "_" + name
}

// Lookup returns the value of the variable mapped from key. An unset variable is absent;
// a variable set to the empty string is present.
func (s *Source) Lookup(key string) (string, bool, error) {
	value, ok := s.lookup(s.Name(key))

	return value, ok, nil
}

func variableName(key string) string {
	return strings.ToUpper(nameReplacer.Replace(strings.TrimSpace(key)))
}
