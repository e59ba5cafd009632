package observes

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryOptions configures the Sentry client.
type SentryOptions struct {
	Dsn         string
	Name        string
	Release     string
	Environment string
	SampleRate  float64
}

// NewSentry initializes the global Sentry client. Nil options skip
// initialization. The returned flush waits for buffered events.
func NewSentry(opt *SentryOptions) (flush func(), err error) {
	if opt == nil {
		return func() {}, nil
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:              opt.Dsn,
		AttachStacktrace: true,
		SampleRate:       opt.SampleRate,
		ServerName:       opt.Name,
		Release:          opt.Release,
		Environment:      opt.Environment,
	})
	if err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}
