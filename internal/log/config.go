package log

import (
	"io"
	"os"
	"strings"
)

// Format selects the slog handler.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "text"
}

// ParseFormat accepts "json" in any case; everything else is text.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

// Output wraps the log destination. The zero value writes to stderr so
// stdout stays reserved for command output.
type Output struct {
	w io.Writer
}

func NewOutput(w io.Writer) Output { return Output{w: w} }

// Writer returns the destination, defaulting to os.Stderr.
func (o Output) Writer() io.Writer {
	if o.w == nil {
		return os.Stderr
	}
	return o.w
}

// Config describes a Logger. ServiceName and ServiceVersion, when set, are
// attached to every record as "service" and "version".
type Config struct {
	Level          Level
	Format         Format
	Output         Output
	AddSource      bool
	ServiceName    string
	ServiceVersion string
}

// DefaultConfig is what accountctl uses before the config file is read:
// warnings and errors only, as text, on stderr.
func DefaultConfig() Config {
	return Config{
		Level:       LevelWarn,
		Format:      FormatText,
		ServiceName: "accountctl",
	}
}
