// Package static provides a settings.Source backed by an in-memory map.
package static

import settings "github.com/0xalexb/hjarta-settings"

var _ settings.Source = (*Source)(nil)

// Source serves settings from a fixed map. It is safe for concurrent use.
type Source struct {
	values map[string]string
}

// New copies values into a new Source. Keys missing from values are reported as absent.
func New(values map[string]string) *Source {
	copied := make(map[string]string, len(values))

	for key, value := range values {
		copied[key] = value
	}

	return &Source{values: copied}
}

// Lookup returns the value stored for key.
func (s *Source) Lookup(key string) (string, bool, error) {
	value, ok := s.values[key]

	return value, ok, nil
}

// Len returns the number of stored settings.
func (s *Source) Len() int {
	return len(s.values)
}
