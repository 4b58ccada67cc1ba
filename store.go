package gestalt

import (
	"fmt"
	"sync"

	"github.com/livinginthepast/gestalt/internal/deepmerge"
)

// DefaultName is the handle used by Start and the package-level helpers
// when no explicit store name is given.
const DefaultName = "gestalt"

// Store is a shared registry of per-caller overrides layered over a global
// config source and a global env source. All operations serialize on one
// lock; overrides are small and traffic is expected to be light relative to
// the code under test, so a single exclusive region beats per-caller locks.
//
// Obtain a Store with Start. Methods on a nil *Store return ErrNotStarted.
type Store struct {
	name   string
	config ConfigSource
	env    EnvSource

	mu       sync.RWMutex
	registry map[CallerID]*CallerOverrides
}

// Option adjusts how Start creates a store.
type Option func(*storeSettings)

type storeSettings struct {
	name   string
	config ConfigSource
	env    EnvSource
}

// WithName selects the store handle. Stores with different names are
// independent registries. Default: DefaultName.
func WithName(name string) Option {
	return func(s *storeSettings) {
		s.name = name
	}
}

// WithConfigSource replaces the global config source the store falls back
// to. Default: viper's shared instance.
func WithConfigSource(src ConfigSource) Option {
	return func(s *storeSettings) {
		s.config = src
	}
}

// WithEnvSource replaces the global env source the store falls back to.
// Default: the process environment.
func WithEnvSource(src EnvSource) Option {
	return func(s *storeSettings) {
		s.env = src
	}
}

// Process-wide table of started stores, keyed by name. Mirrors the store's
// own locking discipline: one lock, short critical sections.
var (
	storesMu sync.Mutex
	stores   = make(map[string]*Store)
)

// Start creates the named store, or returns the existing instance if it was
// already started. Creation is idempotent: options are applied only on first
// start and ignored afterwards. Start never fails.
func Start(opts ...Option) *Store {
	settings := &storeSettings{
		name:   DefaultName,
		config: defaultConfigSource,
		env:    defaultEnvSource,
	}
	for _, opt := range opts {
		opt(settings)
	}

	storesMu.Lock()
	defer storesMu.Unlock()

	if s, ok := stores[settings.name]; ok {
		return s
	}

	s := &Store{
		name:     settings.name,
		config:   settings.config,
		env:      settings.env,
		registry: make(map[CallerID]*CallerOverrides),
	}
	stores[settings.name] = s
	return s
}

// Active returns the named started store, or false if it was never started.
// Unlike Start it never creates anything.
func Active(name string) (*Store, bool) {
	storesMu.Lock()
	defer storesMu.Unlock()

	s, ok := stores[name]
	return s, ok
}

// Name returns the handle the store was started under.
func (s *Store) Name() string {
	return s.name
}

// Config returns the config value at (namespace, key) for the caller: the
// caller's override when one is recorded, otherwise whatever the global
// config source holds. Absence at every level is a normal outcome, not an
// error; ok reports whether any value was found.
func (s *Store) Config(caller CallerID, namespace, key string) (any, bool, error) {
	if s == nil {
		return nil, false, ErrNotStarted
	}
	if !caller.valid() {
		return nil, false, ErrMustProvideCaller
	}

	s.mu.RLock()
	if overrides, ok := s.registry[caller]; ok {
		if kv, ok := overrides.Config[namespace]; ok {
			if value, ok := kv[key]; ok {
				s.mu.RUnlock()
				return value, true, nil
			}
		}
	}
	s.mu.RUnlock()

	value, ok := s.config.Get(namespace, key)
	return value, ok, nil
}

// Env returns the value of the named env var for the caller: the caller's
// override when one is recorded, otherwise the global env source's value.
func (s *Store) Env(caller CallerID, name string) (string, bool, error) {
	if s == nil {
		return "", false, ErrNotStarted
	}
	if !caller.valid() {
		return "", false, ErrMustProvideCaller
	}
	if name == "" {
		return "", false, ErrEmptyName
	}

	s.mu.RLock()
	if overrides, ok := s.registry[caller]; ok {
		if value, ok := overrides.Env[name]; ok {
			s.mu.RUnlock()
			return value, true, nil
		}
	}
	s.mu.RUnlock()

	value, ok := s.env.Lookup(name)
	return value, ok, nil
}

// SetConfig records a config override for the caller by deep-merging
// {namespace: {key: value}} into the caller's overrides. The merge is
// additive: other keys already overridden in the same namespace keep their
// values, and when both the existing and incoming value at a key are maps
// they merge key-wise instead of the subtree being replaced. The caller
// entry is created on first write.
func (s *Store) SetConfig(caller CallerID, namespace, key string, value any) error {
	if s == nil {
		return ErrNotStarted
	}
	if !caller.valid() {
		return ErrMustProvideCaller
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	overrides, ok := s.registry[caller]
	if !ok {
		overrides = newCallerOverrides()
		s.registry[caller] = overrides
	}

	overrides.Config[namespace] = deepmerge.Merge(overrides.Config[namespace], map[string]any{key: value})
	return nil
}

// SetEnv records an env override for the caller. Other names overridden for
// the same caller are untouched. The caller entry is created on first write.
func (s *Store) SetEnv(caller CallerID, name, value string) error {
	if s == nil {
		return ErrNotStarted
	}
	if !caller.valid() {
		return ErrMustProvideCaller
	}
	if name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	overrides, ok := s.registry[caller]
	if !ok {
		overrides = newCallerOverrides()
		s.registry[caller] = overrides
	}
	overrides.Env[name] = value
	return nil
}

// Copy replaces the to caller's entire override set with a deep copy of the
// from caller's, and returns the copied overrides. When from has no entry at
// all, Copy reports false and leaves to untouched. An entry that exists but
// holds no overrides still counts as present and is copied.
//
// Copy exists to hand a parent caller's overrides to a spawned child
// identity in one step.
func (s *Store) Copy(from, to CallerID) (CallerOverrides, bool, error) {
	if s == nil {
		return CallerOverrides{}, false, ErrNotStarted
	}
	if !from.valid() || !to.valid() {
		return CallerOverrides{}, false, ErrMustProvideCaller
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	source, ok := s.registry[from]
	if !ok {
		return CallerOverrides{}, false, nil
	}

	s.registry[to] = source.clone()
	return *source.clone(), true, nil
}

// CopyStrict is Copy for call sites that require source overrides to exist:
// it fails with ErrNoOverrides when the from caller has no entry.
func (s *Store) CopyStrict(from, to CallerID) error {
	_, ok, err := s.Copy(from, to)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoOverrides, from)
	}
	return nil
}

// Overrides returns a deep copy of the caller's recorded overrides and
// whether an entry exists. Useful for assertions; mutating the result never
// affects the store.
func (s *Store) Overrides(caller CallerID) (CallerOverrides, bool) {
	if s == nil || !caller.valid() {
		return CallerOverrides{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	overrides, ok := s.registry[caller]
	if !ok {
		return CallerOverrides{}, false
	}
	return *overrides.clone(), true
}
