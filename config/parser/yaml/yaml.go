package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	yamlparser "github.com/goccy/go-yaml/parser"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser for YAML documents.
type Parser struct {
	decodeOpts []yaml.DecodeOption
}

// Option configures a Parser.
type Option func(*Parser)

// Strict makes the parser reject mapping keys that have no matching struct field.
func Strict() Option {
	return func(p *Parser) {
		p.decodeOpts = append(p.decodeOpts, yaml.DisallowUnknownField())
	}
}

// NewParser creates a new YAML parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{decodeOpts: nil}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse decodes the section of data at path into target.
// The path uses colon (:) as separator; an empty path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.UnmarshalWithOptions(data, target, p.decodeOpts...)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	node, err := p.ReadNode(data, path)
	if err != nil {
		return err
	}

	err = yaml.NodeToValue(node, target, p.decodeOpts...)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

// ReadNode returns the syntax tree of the section of data at path without decoding it,
// so scalars keep the text they were written with. An empty path selects the whole document.
func (p *Parser) ReadNode(data []byte, path string) (ast.Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	if path == "" {
		file, err := yamlparser.ParseBytes(data, 0)
		if err != nil {
			return nil, fmt.Errorf("parse error: %w", err)
		}

		if len(file.Docs) == 0 || file.Docs[0].Body == nil {
			return nil, ErrEmptyData
		}

		return file.Docs[0].Body, nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return nil, fmt.Errorf("reading path %q: %w", path, err)
	}

	return node, nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format,
// e.g. "appSettings:database" -> "$.appSettings.database".
func convertToYAMLPath(path string) string {
	return "$." + strings.ReplaceAll(path, ":", ".")
}
