// Package log is a thin structured-logging facade over logrus. Components
// obtain a sub-logger with WithComponent and log key/value pairs as
// variadic tuples.
package log

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func NewLevel(l string) (Level, error) {
	switch l {
	case LevelDebug.String():
		return LevelDebug, nil
	case LevelInfo.String():
		return LevelInfo, nil
	case LevelWarn.String():
		return LevelWarn, nil
	case LevelError.String():
		return LevelError, nil
	case LevelFatal.String():
		return LevelFatal, nil
	default:
		return LevelDebug, errors.Errorf("invalid log level %q", l)
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		panic("invalid level")
	}
}

// Logger logs leveled messages with structured key/value fields. Fields
// are passed as alternating key/value arguments; keys must be strings.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
	Fatal(msg string, fields ...interface{})
	Sub(fields ...interface{}) Logger
}

var root = &logger{backend: logrus.New()}

func SetLevel(level Level) {
	var backendLevel logrus.Level
	switch level {
	case LevelDebug:
		backendLevel = logrus.DebugLevel
	case LevelInfo:
		backendLevel = logrus.InfoLevel
	case LevelWarn:
		backendLevel = logrus.WarnLevel
	case LevelError:
		backendLevel = logrus.ErrorLevel
	case LevelFatal:
		backendLevel = logrus.FatalLevel
	}
	root.backend.(*logrus.Logger).SetLevel(backendLevel)
}

// WithComponent returns a logger that stamps every entry with the given
// component name.
func WithComponent(name string) Logger {
	return root.Sub("component", name)
}

type logger struct {
	backend logrus.FieldLogger
}

var _ Logger = (*logger)(nil)

func (l *logger) Debug(msg string, fields ...interface{}) {
	l.withFields(fields).Debug(msg)
}

func (l *logger) Info(msg string, fields ...interface{}) {
	l.withFields(fields).Info(msg)
}

func (l *logger) Warn(msg string, fields ...interface{}) {
	l.withFields(fields).Warn(msg)
}

func (l *logger) Error(msg string, fields ...interface{}) {
	l.withFields(fields).Error(msg)
}

func (l *logger) Fatal(msg string, fields ...interface{}) {
	l.withFields(fields).Fatal(msg)
}

func (l *logger) Sub(fields ...interface{}) Logger {
	return &logger{backend: l.withFields(fields)}
}

func (l *logger) withFields(fields []interface{}) logrus.FieldLogger {
	if len(fields) == 0 {
		return l.backend
	}
	if len(fields)%2 != 0 {
		panic("log fields must be key/value tuples")
	}
	out := make(logrus.Fields, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			panic("log field keys must be strings")
		}
		out[key] = fields[i+1]
	}
	return l.backend.WithFields(out)
}

func init() {
	// Quiet by default when running under go test.
	if strings.HasSuffix(os.Args[0], ".test") {
		SetLevel(LevelError)
	}
}
