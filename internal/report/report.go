// Package report renders count records as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/CZERTAINLY/cwc/internal/model"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encoder writes one record at a time, so output is streamed per source.
type Encoder interface {
	Encode(model.Record) error
}

// NewEncoder returns an Encoder for format writing to w. Width is the
// minimum column width and is used by the text format only.
func NewEncoder(format string, w io.Writer, width int) (Encoder, error) {
	switch format {
	case FormatText:
		return textEncoder{w: w, width: width}, nil
	case FormatJSON:
		return jsonEncoder{enc: json.NewEncoder(w)}, nil
	case FormatYAML:
		return &yamlEncoder{w: w}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q, expected one of %s", format, strings.Join(Formats(), ", "))
	}
}

// Formats lists supported format names.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// Format renders the present metrics of r in the order lines, words, bytes,
// chars, each right aligned to width, followed by the label.
func Format(r model.Record, width int) string {
	var b strings.Builder
	for m := range r.Metrics().All() {
		v, _ := r.Get(m)
		fmt.Fprintf(&b, "%*d ", width, v)
	}
	b.WriteString(r.Label)
	return b.String()
}

type textEncoder struct {
	w     io.Writer
	width int
}

func (e textEncoder) Encode(r model.Record) error {
	_, err := io.WriteString(e.w, Format(r, e.width)+"\n")
	return err
}

// document is the structured view of a record shared by json and yaml.
type document struct {
	Label string `json:"label" yaml:"label"`
	Lines *int   `json:"lines,omitempty" yaml:"lines,omitempty"`
	Words *int   `json:"words,omitempty" yaml:"words,omitempty"`
	Bytes *int   `json:"bytes,omitempty" yaml:"bytes,omitempty"`
	Chars *int   `json:"chars,omitempty" yaml:"chars,omitempty"`
}

func newDocument(r model.Record) document {
	field := func(m model.Metric) *int {
		v, ok := r.Get(m)
		if !ok {
			return nil
		}
		return &v
	}
	return document{
		Label: r.Label,
		Lines: field(model.Lines),
		Words: field(model.Words),
		Bytes: field(model.Bytes),
		Chars: field(model.Chars),
	}
}

type jsonEncoder struct {
	enc *json.Encoder
}

func (e jsonEncoder) Encode(r model.Record) error {
	return e.enc.Encode(newDocument(r))
}

// yamlEncoder writes every record as a separate document.
type yamlEncoder struct {
	w       io.Writer
	started bool
}

func (e *yamlEncoder) Encode(r model.Record) error {
	b, err := yaml.Marshal(newDocument(r))
	if err != nil {
		return fmt.Errorf("marshaling record %q: %w", r.Label, err)
	}
	if e.started {
		if _, err := io.WriteString(e.w, "---\n"); err != nil {
			return err
		}
	}
	e.started = true
	_, err = e.w.Write(b)
	return err
}
