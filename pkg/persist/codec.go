package persist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// DefaultSlot is the key the collection is stored under unless configured
// otherwise.
const DefaultSlot = "formBuilderFields"

// Format selects the serialisation used for the stored blob.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml and yml, case-insensitively. Blank input
// selects JSON.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

// Extension returns the file extension used for the format.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// Codec converts a field collection to and from its stored form. The zero
// value encodes compact JSON.
type Codec struct {
	format Format
	indent bool
}

// CodecOption customises a Codec.
type CodecOption func(*Codec)

// WithFormat selects the serialisation format.
func WithFormat(format Format) CodecOption {
	return func(c *Codec) {
		if format != "" {
			c.format = format
		}
	}
}

// WithIndent pretty-prints JSON output. YAML output is always block style.
func WithIndent(indent bool) CodecOption {
	return func(c *Codec) {
		c.indent = indent
	}
}

// NewCodec builds a codec, defaulting to compact JSON.
func NewCodec(opts ...CodecOption) Codec {
	c := Codec{format: FormatJSON}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// Format reports the configured format.
func (c Codec) Format() Format {
	if c.format == "" {
		return FormatJSON
	}
	return c.format
}

// Encode serialises fields as an ordered list. A nil collection encodes as an
// empty list.
func (c Codec) Encode(fields []model.Field) ([]byte, error) {
	if fields == nil {
		fields = []model.Field{}
	}
	switch c.Format() {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(fields); err != nil {
			return nil, fmt.Errorf("persist: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("persist: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		var (
			out []byte
			err error
		)
		if c.indent {
			out, err = json.MarshalIndent(fields, "", "  ")
		} else {
			out, err = json.Marshal(fields)
		}
		if err != nil {
			return nil, fmt.Errorf("persist: encode json: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, c.format)
	}
}

// Decode parses a stored blob. Blank input yields an empty collection. Syntax
// errors, unknown field types and missing or duplicate ids are reported as
// *CorruptStateError. Options on variants without options are dropped and
// nil option lists become empty.
func (c Codec) Decode(data []byte) ([]model.Field, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []model.Field{}, nil
	}

	var raw []model.Field
	switch c.Format() {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, corrupt("decode yaml", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, corrupt("decode json", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, c.format)
	}

	return normalize(raw)
}

func normalize(raw []model.Field) ([]model.Field, error) {
	out := make([]model.Field, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, field := range raw {
		if field.ID == "" {
			return nil, corrupt(fmt.Sprintf("field %d has no id", i), nil)
		}
		if _, dup := seen[field.ID]; dup {
			return nil, corrupt(fmt.Sprintf("duplicate id %q", field.ID), nil)
		}
		seen[field.ID] = struct{}{}

		fieldType, err := model.ParseFieldType(string(field.Type))
		if err != nil {
			return nil, corrupt(fmt.Sprintf("field %q", field.ID), err)
		}
		field.Type = fieldType

		switch {
		case !fieldType.HasOptions():
			field.Options = []string{}
		case field.Options == nil:
			field.Options = []string{}
		}
		out = append(out, field)
	}
	return out, nil
}
