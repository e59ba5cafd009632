package logger

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNilSource is returned when a logger is created without a service.
	ErrNilSource = errors.New("logger source is nil")
	// ErrLevelRequired is returned when no level is given.
	ErrLevelRequired = errors.New("log level is required")
	// ErrUnknownLevel is returned for unrecognized level names.
	ErrUnknownLevel = errors.New("unknown log level")
)

// Key constants
const (
	ServiceKey = "service"
)

// Source is the service a logger is bound to.
type Source interface {
	Name() string
	ServiceInfo() string
}

// Options configures a Logger.
type Options struct {
	Level  Level
	Format string // "json" (default) or "text"
	Output io.Writer
	Hooks  []logrus.Hook
}

// Logger writes entries tagged with the service it is bound to.
type Logger struct {
	source Source
	base   *logrus.Logger
	entry  *logrus.Entry
}

// New returns a logger bound to src.
func New(src Source, opts Options) (*Logger, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	base := logrus.New()
	base.SetLevel(level)
	switch opts.Format {
	case "text":
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		base.SetFormatter(&logrus.JSONFormatter{})
	}
	if opts.Output != nil {
		base.SetOutput(opts.Output)
	} else {
		base.SetOutput(os.Stdout)
	}
	for _, h := range opts.Hooks {
		base.AddHook(h)
	}

	return &Logger{
		source: src,
		base:   base,
		entry:  base.WithField(ServiceKey, src.Name()),
	}, nil
}

// Log writes msg at info level. It fails without writing when ctx is done.
func (l *Logger) Log(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.withContext(ctx).Info(msg)
	return nil
}

// GetServiceInfo returns the bound service's one-line description.
func (l *Logger) GetServiceInfo() string {
	return l.source.ServiceInfo()
}

// Level returns the active level.
func (l *Logger) Level() logrus.Level {
	return l.base.GetLevel()
}

// SetLevel changes the active level. Entries already written are unaffected.
func (l *Logger) SetLevel(level Level) error {
	lv, err := ParseLevel(level)
	if err != nil {
		return err
	}
	l.base.SetLevel(lv)
	return nil
}

// WithFields returns an entry carrying ctx fields and extra fields.
func (l *Logger) WithFields(ctx context.Context, fields logrus.Fields) *logrus.Entry {
	return l.withContext(ctx).WithFields(fields)
}

func (l *Logger) withContext(ctx context.Context) *logrus.Entry {
	return l.entry.WithContext(ctx).WithFields(fieldsFromContext(ctx))
}

func (l *Logger) Debugf(ctx context.Context, format string, args ...any) {
	l.withContext(ctx).Debugf(format, args...)
}
func (l *Logger) Infof(ctx context.Context, format string, args ...any) {
	l.withContext(ctx).Infof(format, args...)
}
func (l *Logger) Warnf(ctx context.Context, format string, args ...any) {
	l.withContext(ctx).Warnf(format, args...)
}
func (l *Logger) Errorf(ctx context.Context, format string, args ...any) {
	l.withContext(ctx).Errorf(format, args...)
}
