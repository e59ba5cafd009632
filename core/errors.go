package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidConfig is matched by every configuration validation failure.
	ErrInvalidConfig = errors.New("invalid core config")
	// ErrNilConfig is returned when no configuration is supplied.
	ErrNilConfig = errors.New("core config is nil")
	// ErrAlreadyInitialized is returned when hooks are registered after Initialize.
	ErrAlreadyInitialized = errors.New("core service already initialized")
)

// ValidationError lists the invalid configuration fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrInvalidConfig, strings.Join(msgs, " "))
}

// Is reports ErrInvalidConfig as the kind of a ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}
