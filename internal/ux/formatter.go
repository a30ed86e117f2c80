package ux

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/accountctl/internal/errors"
)

// Values accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formatter writes one command result to the output.
type Formatter interface {
	Format(data interface{}) error
}

// TextRenderer is implemented by the page and card views so the text format
// can draw them the way the interactive screens do.
type TextRenderer interface {
	RenderText() string
}

// FormatterOptions configures NewFormatter. A nil Writer means os.Stdout.
// NoColor is read by callers that style their TextRenderer output.
type FormatterOptions struct {
	Writer  io.Writer
	NoColor bool
	Compact bool
}

type encodeFunc func(w io.Writer, data interface{}, compact bool) error

var encoders = map[string]encodeFunc{
	FormatText: encodeText,
	"":         encodeText,
	FormatJSON: encodeJSON,
	FormatYAML: encodeYAML,
}

type formatter struct {
	encode encodeFunc
	opts   FormatterOptions
}

// NewFormatter returns the formatter for format. Unknown formats are a
// VAL-003 usage error listing the valid values.
func NewFormatter(format string, opts *FormatterOptions) (Formatter, error) {
	encode, ok := encoders[format]
	if !ok {
		return nil, errors.NewInvalidChoiceError("format", format, FormatText, FormatJSON, FormatYAML)
	}

	f := &formatter{encode: encode}
	if opts != nil {
		f.opts = *opts
	}
	if f.opts.Writer == nil {
		f.opts.Writer = os.Stdout
	}
	return f, nil
}

func (f *formatter) Format(data interface{}) error {
	return f.encode(f.opts.Writer, data, f.opts.Compact)
}

// IsStructured reports whether format is meant for scripts rather than people.
func IsStructured(format string) bool {
	return format == FormatJSON || format == FormatYAML
}

func encodeJSON(w io.Writer, data interface{}, compact bool) error {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(data)
}

func encodeYAML(w io.Writer, data interface{}, compact bool) error {
	enc := yaml.NewEncoder(w)
	if !compact {
		enc.SetIndent(2)
	}
	if err := enc.Encode(data); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

func encodeText(w io.Writer, data interface{}, _ bool) error {
	var text string
	switch v := data.(type) {
	case TextRenderer:
		text = v.RenderText()
	case string:
		text = v
	case fmt.Stringer:
		text = v.String()
	default:
		return fmt.Errorf("no text rendering for %T", data)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
