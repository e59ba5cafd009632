package logger

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ncobase/feature/logging/logger/config"
	"github.com/sirupsen/logrus"
)

// HookType represents the type of logging hook
type HookType string

const (
	HookElasticsearch HookType = "elasticsearch"
	HookMeilisearch   HookType = "meilisearch"
	HookOpenSearch    HookType = "opensearch"
)

// HookFactory creates a logrus hook from configuration. It returns a nil
// hook when its backend is not configured.
type HookFactory func(cfg *config.Config) (logrus.Hook, error)

var (
	hookFactories = make(map[HookType]HookFactory)
	hookMu        sync.RWMutex
)

// RegisterHookFactory registers a hook factory for a given type.
func RegisterHookFactory(hookType HookType, factory HookFactory) {
	hookMu.Lock()
	defer hookMu.Unlock()
	hookFactories[hookType] = factory
}

// GetHookFactory returns the factory for a given hook type
func GetHookFactory(hookType HookType) (HookFactory, bool) {
	hookMu.RLock()
	defer hookMu.RUnlock()
	factory, ok := hookFactories[hookType]
	return factory, ok
}

// GetRegisteredHooks returns the registered hook types in name order
func GetRegisteredHooks() []HookType {
	hookMu.RLock()
	defer hookMu.RUnlock()
	hooks := make([]HookType, 0, len(hookFactories))
	for hookType := range hookFactories {
		hooks = append(hooks, hookType)
	}
	sort.Slice(hooks, func(i, j int) bool { return hooks[i] < hooks[j] })
	return hooks
}

// searchHooks builds every registered hook whose backend cfg configures.
func searchHooks(cfg *config.Config) ([]logrus.Hook, error) {
	var hooks []logrus.Hook
	for _, hookType := range GetRegisteredHooks() {
		factory, _ := GetHookFactory(hookType)
		hook, err := factory(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s hook: %w", hookType, err)
		}
		if hook != nil {
			hooks = append(hooks, hook)
		}
	}
	return hooks, nil
}
