package feature

import "context"

// CoreService is the core collaborator a feature initializes on Start.
type CoreService interface {
	Initialize(ctx context.Context) error
}

// Logger is the collaborator a feature reports its startup through.
type Logger interface {
	Log(ctx context.Context, msg string) error
	GetServiceInfo() string
}
