package logger

import (
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// SentryHook reports error and higher entries to Sentry.
type SentryHook struct {
	hub *sentry.Hub
}

// NewSentryHook creates a hook reporting through hub; a nil hub uses the
// current global hub.
func NewSentryHook(hub *sentry.Hub) *SentryHook {
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	return &SentryHook{hub: hub}
}

// Levels returns the levels reported to Sentry
func (h *SentryHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}
}

// Fire captures entry as a Sentry message
func (h *SentryHook) Fire(entry *logrus.Entry) error {
	h.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentryLevel(entry.Level))
		for k, v := range entry.Data {
			if s, ok := v.(string); ok {
				scope.SetTag(k, s)
			}
		}
		if err, ok := entry.Data[logrus.ErrorKey].(error); ok {
			h.hub.CaptureException(err)
			return
		}
		h.hub.CaptureMessage(entry.Message)
	})
	return nil
}

func sentryLevel(l logrus.Level) sentry.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	case logrus.InfoLevel:
		return sentry.LevelInfo
	default:
		return sentry.LevelDebug
	}
}
