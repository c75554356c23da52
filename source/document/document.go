// Package document provides a settings.Source backed by one section of a structured document,
// typically the appSettings section of a YAML file.
//
// The section is flattened once at construction:
//
//	appSettings:
//	  retries: 3          -> "retries"       = "3"
//	  hosts: [a, b]       -> "hosts"         = "a,b"
//	  database:
//	    port: 5432        -> "database:port" = "5432"
//	  proxy: null         -> "proxy" is absent
//	  tags: []            -> "tags" is absent
//
// Scalars keep the text they were written with, so "1.10" stays "1.10"
// and locale-specific numbers are not reformatted before parsing.
package document

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	settings "github.com/0xalexb/hjarta-settings"
	"github.com/0xalexb/hjarta-settings/config"

	"github.com/goccy/go-yaml/ast"
)

// DefaultSection is the document section read by NewProvider when no path is given.
const DefaultSection = "appSettings"

// KeySeparator joins nested mapping keys.
const KeySeparator = ":"

var (
	// ErrUnsupportedValue is returned for values that cannot be flattened to a string,
	// such as sequences of mappings or aliases.
	ErrUnsupportedValue = errors.New("unsupported setting value")
	// ErrDuplicateKey is returned when two entries flatten to the same key,
	// for example a literal "a:b" next to a nested a.b.
	ErrDuplicateKey = errors.New("duplicate setting key")
)

// NodeReader returns the syntax tree of the section of data at path.
// The YAML parser in config/parser/yaml implements it.
type NodeReader interface {
	ReadNode(data []byte, path string) (ast.Node, error)
}

var _ settings.Source = (*Source)(nil)

// Source serves the flattened settings of a document section. It is read-only after construction.
type Source struct {
	values map[string]string
}

// New fetches the document, reads the section at path and flattens it.
func New(reader NodeReader, fetcher config.DataFetcher, path string) (*Source, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrFetch, err)
	}

	section, err := reader.ReadNode(data, path)
	if err != nil {
		return nil, fmt.Errorf("%w at %q: %w", config.ErrParse, path, err)
	}

	values := make(map[string]string)

	err = flatten("", section, values)
	if err != nil {
		return nil, err
	}

	return &Source{values: values}, nil
}

// NewProvider returns an Fx-friendly constructor reading the section at path,
// or DefaultSection when path is empty.
func NewProvider(path string) func(NodeReader, config.DataFetcher) (*Source, error) {
	if path == "" {
		path = DefaultSection
	}

	return func(reader NodeReader, fetcher config.DataFetcher) (*Source, error) {
		return New(reader, fetcher, path)
	}
}

// Lookup returns the flattened value stored for key.
func (s *Source) Lookup(key string) (string, bool, error) {
	value, ok := s.values[key]

	return value, ok, nil
}

// Keys returns every present key in sorted order.
func (s *Source) Keys() []string {
	keys := make([]string, 0, len(s.values))

	for key := range s.values {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

func flatten(prefix string, node ast.Node, out map[string]string) error {
	switch typed := unwrap(node).(type) {
	case nil, *ast.NullNode:
		return nil
	case *ast.MappingNode:
		for _, entry := range typed.Values {
			err := flattenEntry(prefix, entry, out)
			if err != nil {
				return err
			}
		}
	case *ast.MappingValueNode:
		return flattenEntry(prefix, typed, out)
	case *ast.SequenceNode:
		if len(typed.Values) == 0 {
			return nil
		}

		items := make([]string, 0, len(typed.Values))

		for i, item := range typed.Values {
			text, ok := scalar(item)
			if !ok {
				return fmt.Errorf("%w: %s[%d] is %s", ErrUnsupportedValue, prefix, i, item.Type())
			}

			items = append(items, text)
		}

		return store(prefix, strings.Join(items, settings.ArraySeparator), out)
	default:
		text, ok := scalar(typed)
		if !ok {
			return fmt.Errorf("%w: %s is %s", ErrUnsupportedValue, prefix, typed.Type())
		}

		return store(prefix, text, out)
	}

	return nil
}

func flattenEntry(prefix string, entry *ast.MappingValueNode, out map[string]string) error {
	key, ok := scalar(entry.Key)
	if !ok || entry.Key.IsMergeKey() {
		return fmt.Errorf("%w: key under %q is %s", ErrUnsupportedValue, prefix, entry.Key.Type())
	}

	return flatten(join(prefix, key), entry.Value, out)
}

func store(key, value string, out map[string]string) error {
	if _, exists := out[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}

	out[key] = value

	return nil
}

// unwrap strips tags and anchors, which do not change the written value.
func unwrap(node ast.Node) ast.Node {
	for {
		switch typed := node.(type) {
		case *ast.TagNode:
			node = typed.Value
		case *ast.AnchorNode:
			node = typed.Value
		default:
			return node
		}
	}
}

// scalar returns the text a scalar node was written with, without quotes.
// A null sequence item renders as the empty string.
func scalar(node ast.Node) (string, bool) {
	switch typed := unwrap(node).(type) {
	case nil, *ast.NullNode:
		return "", true
	case *ast.StringNode:
		return typed.Value, true
	case *ast.LiteralNode:
		if typed.Value == nil {
			return "", true
		}

		return typed.Value.Value, true
	case ast.ScalarNode:
		return typed.GetToken().Value, true
	default:
		return "", false
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + KeySeparator + key
}
