package export

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Engine names known to the CLI and server.
const (
	EngineChromium = "chromium"
	EngineHTML     = "html"
)

// Registry stores engines by name.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]Engine
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]Engine)}
}

// DefaultRegistry holds a lazily started Chromium engine and the HTML engine.
func DefaultRegistry(chromium *ChromiumEngine) *Registry {
	if chromium == nil {
		chromium = NewChromiumEngine()
	}
	r := NewRegistry()
	r.MustRegister(EngineChromium, chromium)
	r.MustRegister(EngineHTML, HTMLEngine{})
	return r
}

// Register adds an engine. Duplicate names return an error.
func (r *Registry) Register(name string, engine Engine) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("export: engine name is required")
	}
	if engine == nil {
		return fmt.Errorf("export: engine %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.engines[name]; exists {
		return fmt.Errorf("export: engine %q already registered", name)
	}
	r.engines[name] = engine
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(name string, engine Engine) {
	if err := r.Register(name, engine); err != nil {
		panic(err)
	}
}

// Get retrieves an engine by name.
func (r *Registry) Get(name string) (Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	engine, ok := r.engines[strings.TrimSpace(name)]
	if !ok {
		return nil, NewError(KindValidation, fmt.Sprintf("export engine %q not found", name), nil)
	}
	return engine, nil
}

// List returns the sorted engine names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames()
}

// Close closes every engine that holds resources.
func (r *Registry) Close() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs []error
	for _, name := range r.sortedNames() {
		if closer, ok := r.engines[name].(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("export: close %s: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}

func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
