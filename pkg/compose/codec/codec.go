package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ib-77/compose/pkg/compose"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Codec marshals composers to and from documents in one format.
type Codec struct {
	Registry *Registry
	Format   Format
}

func (c Codec) Marshal(v compose.Composer) ([]byte, error) {
	doc, err := Encode(v)
	if err != nil {
		return nil, err
	}
	switch c.format() {
	case FormatYAML:
		return yaml.Marshal(doc)
	default:
		return json.MarshalIndent(doc, "", "  ")
	}
}

func (c Codec) Unmarshal(data []byte) (compose.Composer, error) {
	doc, err := c.Decode(data)
	if err != nil {
		return nil, err
	}
	if c.Registry == nil {
		return nil, fmt.Errorf("%w: codec has no registry", compose.ErrInvalidArgument)
	}
	return c.Registry.Build(doc)
}

// Decode parses data into a Document without resolving step names. Unknown
// fields are rejected.
func (c Codec) Decode(data []byte) (*Document, error) {
	var raw map[string]any
	var err error
	switch c.format() {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err = dec.Decode(&raw); err == nil {
			numbers(raw)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s document: %w", c.format(), err)
	}

	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}

// numbers replaces json.Number values with int when they are integral and
// float64 otherwise, matching what the YAML decoder produces.
func numbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := strconv.ParseInt(t.String(), 10, 0); err == nil {
			return int(n)
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, e := range t {
			t[k] = numbers(e)
		}
	case []any:
		for i, e := range t {
			t[i] = numbers(e)
		}
	}
	return v
}

func (c Codec) format() Format {
	if c.Format == "" {
		return FormatJSON
	}
	return c.Format
}
