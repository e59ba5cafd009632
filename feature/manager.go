package feature

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrAlreadyStarted is returned when registering after StartAll.
	ErrAlreadyStarted = errors.New("features already started")
	// ErrCircularDependency is returned when dependencies form a cycle.
	ErrCircularDependency = errors.New("circular dependency detected")
)

// Status values reported by Manager.Status.
const (
	StatusRegistered = "registered"
	StatusStarted    = "started"
	StatusFailed     = "failed"
)

// StartedEvent is published after a feature starts, or fails to.
type StartedEvent struct {
	Name string
	Err  error
}

// Wrapper wraps a Service with its dependencies and status
type Wrapper struct {
	Service      *Service
	Dependencies []string
	Status       string
}

// Manager starts a set of features in dependency order
type Manager struct {
	features map[string]*Wrapper
	mu       sync.RWMutex
	started  bool
	eventBus *EventBus
}

// NewManager creates a new feature manager
func NewManager() *Manager {
	return &Manager{
		features: make(map[string]*Wrapper),
		eventBus: NewEventBus(),
	}
}

// Register registers a feature that starts after the features named in deps
func (m *Manager) Register(svc *Service, deps ...string) error {
	if svc == nil {
		return errors.New("cannot register nil feature")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return ErrAlreadyStarted
	}

	name := svc.Name()
	if _, exists := m.features[name]; exists {
		return fmt.Errorf("feature %s already registered", name)
	}

	m.features[name] = &Wrapper{
		Service:      svc,
		Dependencies: append([]string(nil), deps...),
		Status:       StatusRegistered,
	}
	return nil
}

// StartAll starts every registered feature after its dependencies. It stops
// at the first failure and returns it wrapped with the feature name.
func (m *Manager) StartAll(ctx context.Context) error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return ErrAlreadyStarted
	}
	if err := m.checkDependencies(); err != nil {
		m.mu.Unlock()
		return err
	}
	order, err := getInitOrder(m.features)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.started = true
	m.mu.Unlock()

	for _, name := range order {
		w := m.features[name]
		if err := w.Service.Start(ctx); err != nil {
			m.setStatus(name, StatusFailed)
			m.eventBus.Publish(EventFeatureFailed, StartedEvent{Name: name, Err: err})
			return fmt.Errorf("feature %s: %w", name, err)
		}
		m.setStatus(name, StatusStarted)
		m.eventBus.Publish(EventFeatureStarted, StartedEvent{Name: name})
	}
	return nil
}

func (m *Manager) setStatus(name, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.features[name].Status = status
}

// Get returns a registered feature
func (m *Manager) Get(name string) (*Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, exists := m.features[name]
	if !exists {
		return nil, fmt.Errorf("feature %s not found", name)
	}
	return w.Service, nil
}

// Names returns the registered feature names in sorted order
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.features))
	for name := range m.features {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Status returns the status of every registered feature
func (m *Manager) Status() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	status := make(map[string]string, len(m.features))
	for name, w := range m.features {
		status[name] = w.Status
	}
	return status
}

// SubscribeEvent subscribes to a manager event
func (m *Manager) SubscribeEvent(eventName string, handler func(any)) {
	m.eventBus.Subscribe(eventName, handler)
}

// EventBus returns the manager's event bus
func (m *Manager) EventBus() *EventBus {
	return m.eventBus
}

// checkDependencies checks that every dependency is registered
func (m *Manager) checkDependencies() error {
	for name, w := range m.features {
		for _, dep := range w.Dependencies {
			if _, exists := m.features[dep]; !exists {
				return fmt.Errorf("feature %s depends on %s, which is not registered", name, dep)
			}
		}
	}
	return nil
}

// getInitOrder returns the start order based on dependencies. Features
// that become ready together start in name order.
func getInitOrder(features map[string]*Wrapper) ([]string, error) {
	graph := make(map[string][]string)
	inDegree := make(map[string]int, len(features))

	for name, w := range features {
		inDegree[name] += 0
		for _, dep := range w.Dependencies {
			graph[dep] = append(graph[dep], name)
			inDegree[name]++
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	order := make([]string, 0, len(features))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		order = append(order, name)

		var ready []string
		for _, next := range graph[name] {
			inDegree[next]--
			if inDegree[next] == 0 {
				ready = append(ready, next)
			}
		}
		sort.Strings(ready)
		queue = append(queue, ready...)
	}

	if len(order) != len(features) {
		return nil, ErrCircularDependency
	}
	return order, nil
}
