package ux

import (
	"bytes"
	"strings"
	"testing"

	accerrors "github.com/felixgeelhaar/accountctl/internal/errors"
)

type planRow struct {
	Plan   string `json:"plan" yaml:"plan"`
	Amount int    `json:"amount" yaml:"amount"`
}

type statusCard struct {
	Plan string `json:"plan"`
}

func (c statusCard) RenderText() string { return "Plan: " + c.Plan }

type stringerData struct{}

func (stringerData) String() string { return "from stringer" }

func format(t *testing.T, name string, opts FormatterOptions, data interface{}) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	opts.Writer = &buf
	f, err := NewFormatter(name, &opts)
	if err != nil {
		t.Fatalf("NewFormatter(%q) error = %v", name, err)
	}
	err = f.Format(data)
	return buf.String(), err
}

func TestFormatter_Structured(t *testing.T) {
	row := planRow{Plan: "monthly", Amount: 29}

	tests := []struct {
		format string
		opts   FormatterOptions
		want   []string
		lines  int
	}{
		{format: FormatJSON, want: []string{`"plan": "monthly"`, `"amount": 29`}},
		{format: FormatJSON, opts: FormatterOptions{Compact: true}, want: []string{`{"plan":"monthly","amount":29}`}, lines: 1},
		{format: FormatYAML, want: []string{"plan: monthly", "amount: 29"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := format(t, tt.format, tt.opts, row)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
			if tt.lines > 0 && strings.Count(out, "\n") != tt.lines {
				t.Errorf("expected %d line(s), got %q", tt.lines, out)
			}
		})
	}
}

func TestFormatter_Text(t *testing.T) {
	tests := []struct {
		name    string
		data    interface{}
		want    string
		wantErr bool
	}{
		{name: "string", data: "Welcome back", want: "Welcome back"},
		{name: "renderer", data: statusCard{Plan: "Pro"}, want: "Plan: Pro"},
		{name: "stringer", data: stringerData{}, want: "from stringer"},
		{name: "plain struct", data: planRow{Plan: "yearly"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := format(t, FormatText, FormatterOptions{}, tt.data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Format() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && strings.TrimSpace(out) != tt.want {
				t.Errorf("Format() = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestNewFormatter_EmptyIsText(t *testing.T) {
	out, err := format(t, "", FormatterOptions{}, "hello")
	if err != nil || out != "hello\n" {
		t.Errorf("got %q, %v", out, err)
	}
}

func TestNewFormatter_UnknownFormat(t *testing.T) {
	_, err := NewFormatter("xml", nil)
	code, ok := accerrors.CodeOf(err)
	if !ok || code != accerrors.ErrCodeInvalidChoice {
		t.Fatalf("expected %s, got %v", accerrors.ErrCodeInvalidChoice, err)
	}
	if !strings.Contains(err.Error(), "text, json, yaml") {
		t.Errorf("error should list the valid formats: %v", err)
	}
}

func TestIsStructured(t *testing.T) {
	for format, want := range map[string]bool{FormatJSON: true, FormatYAML: true, FormatText: false, "": false} {
		if got := IsStructured(format); got != want {
			t.Errorf("IsStructured(%q) = %v, want %v", format, got, want)
		}
	}
}
