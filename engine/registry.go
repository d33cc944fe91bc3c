package engine

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates an engine instance.
type Factory func() Engine

var (
	registryMu sync.RWMutex
	engines    = make(map[string]Factory)
)

// Register makes an engine available by name. It is typically called from
// init() in adapter packages and panics on a nil factory or a duplicate
// name.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("engine: Register factory is nil")
	}
	if _, dup := engines[name]; dup {
		panic("engine: Register called twice for " + name)
	}
	engines[name] = factory
}

// New creates the engine registered as name. The name "none" always
// resolves to None.
func New(name string) (Engine, error) {
	if name == "none" {
		return None{}, nil
	}
	registryMu.RLock()
	factory, ok := engines[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: unknown engine %q (forgotten import?)", ErrNoGenerator, name)
	}
	return factory(), nil
}

// Names returns the sorted names of registered engines.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
