package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the path does not exist in the document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser for YAML and JSON data.
type Parser struct {
	decodeOpts []yaml.DecodeOption
}

// Option configures a Parser.
type Option func(*Parser)

// Strict rejects fields that have no counterpart in the target.
func Strict() Option {
	return func(p *Parser) {
		p.decodeOpts = append(p.decodeOpts, yaml.DisallowUnknownField())
	}
}

// NewParser creates a new parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}

	for _, apply := range opts {
		apply(p)
	}

	return p
}

// Parse decodes data into target, starting at the colon-separated path.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.UnmarshalWithOptions(data, target, p.decodeOpts...)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	yamlPath, err := yaml.PathString(toYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := yamlPath.ReadNode(bytes.NewReader(data))
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.NodeToValue(node, target, p.decodeOpts...)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

// toYAMLPath converts "a:b" into "$.a.b".
func toYAMLPath(path string) string {
	return "$." + strings.ReplaceAll(path, ":", ".")
}
