package core

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// InitFunc is an initialization hook run by Initialize.
type InitFunc func(ctx context.Context) error

// Info is a snapshot of a core service.
type Info struct {
	AppName       string    `json:"app_name"`
	Version       string    `json:"version"`
	Environment   string    `json:"environment"`
	InstanceID    string    `json:"instance_id"`
	Initialized   bool      `json:"initialized"`
	InitializedAt time.Time `json:"initialized_at,omitempty"`
}

// Service is the core service features are built on.
type Service struct {
	cfg Config

	// initMu serializes Initialize; mu guards the fields below.
	initMu        sync.Mutex
	mu            sync.RWMutex
	hooks         []InitFunc
	initialized   bool
	initializedAt time.Time
}

// New validates cfg and returns an uninitialized service.
func New(cfg *Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{cfg: cfg.normalize()}, nil
}

// Name returns the application name.
func (s *Service) Name() string {
	return s.cfg.AppName
}

// OnInitialize registers a hook that runs on Initialize, in registration order.
func (s *Service) OnInitialize(fn InitFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return ErrAlreadyInitialized
	}
	if fn != nil {
		s.hooks = append(s.hooks, fn)
	}
	return nil
}

// Initialize runs the registered hooks and marks the service initialized.
// The first failing hook aborts initialization; the service stays
// uninitialized and a later call runs every hook again. Calling Initialize
// on an initialized service is a no-op.
func (s *Service) Initialize(ctx context.Context) error {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	s.mu.RLock()
	done := s.initialized
	hooks := append([]InitFunc(nil), s.hooks...)
	s.mu.RUnlock()

	if done {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for i, hook := range hooks {
		if err := hook(ctx); err != nil {
			return fmt.Errorf("core %s: init hook %d: %w", s.cfg.AppName, i, err)
		}
	}

	s.mu.Lock()
	s.initialized = true
	s.initializedAt = time.Now()
	s.mu.Unlock()
	return nil
}

// Initialized reports whether Initialize has completed.
func (s *Service) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// Info returns a snapshot of the service state.
func (s *Service) Info() Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Info{
		AppName:       s.cfg.AppName,
		Version:       s.cfg.Version,
		Environment:   s.cfg.Environment,
		InstanceID:    s.cfg.InstanceID,
		Initialized:   s.initialized,
		InitializedAt: s.initializedAt,
	}
}

// ServiceInfo describes the service in one line, e.g. "billing v1.2.0 ready".
func (s *Service) ServiceInfo() string {
	info := s.Info()
	state := "not initialized"
	if info.Initialized {
		state = "ready"
	}
	return fmt.Sprintf("%s %s %s", info.AppName, displayVersion(info.Version), state)
}

func displayVersion(v string) string {
	if v == "" || v[0] == 'v' {
		return v
	}
	return "v" + v
}
