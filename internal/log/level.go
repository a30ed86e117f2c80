package log

import (
	"log/slog"
	"strings"
)

// Level is a log severity. Values line up with slog's so conversion is a cast.
type Level slog.Level

const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// levelNames maps the values accepted by --log-level and logging.level.
var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

func (l Level) String() string {
	return slog.Level(l).String()
}

// ToSlogLevel returns l as a slog.Level.
func (l Level) ToSlogLevel() slog.Level {
	return slog.Level(l)
}

// ParseLevel is case-insensitive. Anything unrecognised falls back to warn,
// the level accountctl runs at when nobody asked for more.
func ParseLevel(s string) Level {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l
	}
	return LevelWarn
}
