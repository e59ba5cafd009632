package feature

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncobase/feature/ctxutil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/ncobase/feature/feature"

var (
	// ErrNilCoreService is returned when a feature is built without a core service.
	ErrNilCoreService = errors.New("feature core service is nil")
	// ErrNilLogger is returned when a feature is built without a logger.
	ErrNilLogger = errors.New("feature logger is nil")
)

// Service is a named feature owning a core service and its logger.
type Service struct {
	core   CoreService
	logger Logger
	name   string
}

// New returns a feature from pre-built collaborators.
func New(core CoreService, logger Logger, name string) (*Service, error) {
	if core == nil {
		return nil, ErrNilCoreService
	}
	if logger == nil {
		return nil, ErrNilLogger
	}
	return &Service{core: core, logger: logger, name: name}, nil
}

// Name returns the feature name.
func (s *Service) Name() string {
	return s.name
}

// Start initializes the core service, then logs the startup line followed
// by the logger's service info. Errors from either collaborator are
// returned as is; nothing is logged when initialization fails.
//
// Start does not guard against repeated calls: each call initializes and
// logs again.
func (s *Service) Start(ctx context.Context) (err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "feature.start",
		trace.WithAttributes(attribute.String("feature.name", s.name)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	ctx = ctxutil.SetFeature(ctx, s.name)

	if err = s.core.Initialize(ctx); err != nil {
		return err
	}
	if err = s.logger.Log(ctx, fmt.Sprintf("Feature %s started", s.name)); err != nil {
		return err
	}
	return s.logger.Log(ctx, s.logger.GetServiceInfo())
}
