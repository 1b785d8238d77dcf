package tactical

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Garsondee/tanksim/internal/engine"
)

// registry maps a short algorithm key to the Factory that builds it —
// the pluggable-module equivalent of the original's per-process
// registration list, minus any dynamic loading: every entry here is
// compiled into the binary.
var (
	registryMu sync.RWMutex
	registry   = map[string]engine.Factory{
		"tactical": NewAlgorithm,
	}
)

// Register adds (or replaces) a named algorithm factory. Safe to call
// from an init func in a package that wants its own TankAlgorithm
// available under cmd/tanksim's --algo1/--algo2 flags.
func Register(key string, factory engine.Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[key] = factory
}

// Lookup returns the factory registered under key.
func Lookup(key string) (engine.Factory, error) {
	registryMu.RLock()
	f, ok := registry[key]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no algorithm registered under %q (known: %v)", key, Keys())
	}
	return f, nil
}

// Keys returns the currently registered algorithm names, sorted.
func Keys() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ks := make([]string, 0, len(registry))
	for k := range registry {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
