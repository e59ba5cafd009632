package logger

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Level is a named log verbosity.
type Level string

// Supported levels.
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// ParseLevel maps l to a logrus level. An empty level is an error: every
// logger states its verbosity explicitly.
func ParseLevel(l Level) (logrus.Level, error) {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel, nil
	case LevelInfo:
		return logrus.InfoLevel, nil
	case LevelWarn:
		return logrus.WarnLevel, nil
	case LevelError:
		return logrus.ErrorLevel, nil
	case "":
		return 0, ErrLevelRequired
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, string(l))
	}
}
