package log

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"

	"github.com/felixgeelhaar/accountctl/internal/errors"
)

// statusCoder is implemented by request errors that carry an HTTP status.
type statusCoder interface {
	HTTPStatus() int
}

// Logger is a slog.Logger that remembers its Config and knows how to
// flatten accountctl errors into attributes. The leveled methods (Info,
// WarnContext, ...) come from the embedded slog.Logger.
type Logger struct {
	*slog.Logger
	config Config
}

func New(config Config) *Logger {
	opts := &slog.HandlerOptions{
		Level:     config.Level.ToSlogLevel(),
		AddSource: config.AddSource,
	}

	var h slog.Handler
	if config.Format == FormatJSON {
		h = slog.NewJSONHandler(config.Output.Writer(), opts)
	} else {
		h = slog.NewTextHandler(config.Output.Writer(), opts)
	}

	var attrs []any
	if config.ServiceName != "" {
		attrs = append(attrs, "service", config.ServiceName)
	}
	if config.ServiceVersion != "" {
		attrs = append(attrs, "version", config.ServiceVersion)
	}

	return &Logger{Logger: slog.New(h).With(attrs...), config: config}
}

// Default is New(DefaultConfig()).
func Default() *Logger {
	return New(DefaultConfig())
}

// Discard drops every record; tests and quiet helpers use it.
func Discard() *Logger {
	cfg := DefaultConfig()
	cfg.Output = NewOutput(io.Discard)
	cfg.ServiceName = ""
	return New(cfg)
}

func (l *Logger) derive(s *slog.Logger) *Logger {
	return &Logger{Logger: s, config: l.config}
}

func (l *Logger) With(args ...any) *Logger {
	return l.derive(l.Logger.With(args...))
}

func (l *Logger) WithGroup(name string) *Logger {
	return l.derive(l.Logger.WithGroup(name))
}

// WithComponent tags records with the package that emitted them
// ("session", "api", "tokenstore").
func (l *Logger) WithComponent(name string) *Logger {
	return l.With("component", name)
}

// WithError attaches err. AccountErrors contribute their code and cause,
// request errors their HTTP status. A nil err returns l itself.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return l.With(errorArgs(err)...)
}

func errorArgs(err error) []any {
	var args []any

	var accErr *errors.AccountError
	if stderrors.As(err, &accErr) {
		args = append(args, "error", accErr.Message, "error_code", string(accErr.Code))
		if accErr.Cause != nil {
			args = append(args, "cause", accErr.Cause.Error())
		}
	} else {
		args = append(args, "error", err.Error())
	}

	var sc statusCoder
	if stderrors.As(err, &sc) {
		args = append(args, "http_status", sc.HTTPStatus())
	}
	return args
}

// LogErrorContext logs err at error level. Nil errors are not logged.
func (l *Logger) LogErrorContext(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}
	l.ErrorContext(ctx, msg, errorArgs(err)...)
}

func (l *Logger) Enabled(ctx context.Context, level Level) bool {
	return l.Logger.Enabled(ctx, level.ToSlogLevel())
}

func (l *Logger) Config() Config {
	return l.config
}
