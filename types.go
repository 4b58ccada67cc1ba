package gestalt

import (
	"github.com/livinginthepast/gestalt/internal/deepmerge"
)

// ConfigSource answers point lookups against the real, process-wide
// configuration (e.g. viper's shared instance, a parsed config file).
// The store only ever reads through it.
type ConfigSource interface {
	// Get returns the value at (namespace, key), or false when absent.
	Get(namespace, key string) (any, bool)
}

// EnvSource answers point lookups against the real environment variables.
// The store only ever reads through it.
type EnvSource interface {
	// Lookup returns the value of the named variable, or false when unset.
	Lookup(name string) (string, bool)
}

// ConfigSourceFunc adapts a function to the ConfigSource interface.
type ConfigSourceFunc func(namespace, key string) (any, bool)

func (f ConfigSourceFunc) Get(namespace, key string) (any, bool) {
	return f(namespace, key)
}

// EnvSourceFunc adapts a function to the EnvSource interface.
type EnvSourceFunc func(name string) (string, bool)

func (f EnvSourceFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// CallerOverrides holds one caller's recorded overrides: nested config
// values keyed by namespace then key, and flat env values keyed by name.
// A caller with no entry in the store behaves identically to one holding an
// empty CallerOverrides.
type CallerOverrides struct {
	Config map[string]map[string]any
	Env    map[string]string
}

func newCallerOverrides() *CallerOverrides {
	return &CallerOverrides{
		Config: make(map[string]map[string]any),
		Env:    make(map[string]string),
	}
}

// clone deep-copies the override set so the result shares no containers
// with the store's internal state.
func (o *CallerOverrides) clone() *CallerOverrides {
	cp := newCallerOverrides()
	for ns, kv := range o.Config {
		cp.Config[ns] = deepmerge.Clone(kv)
	}
	for name, value := range o.Env {
		cp.Env[name] = value
	}
	return cp
}
