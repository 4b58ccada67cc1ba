package gestalt

import (
	"os"

	"github.com/spf13/viper"
)

// Default global sources: viper's shared instance for configuration and the
// process environment for env vars. Stores created with WithConfigSource or
// WithEnvSource opt out of these.
var (
	defaultConfigSource ConfigSource = sharedViper{}
	defaultEnvSource    EnvSource    = processEnv{}
)

// sharedViper reads through viper's package-level instance, the closest
// thing Go has to an application-wide configuration registry.
type sharedViper struct{}

func (sharedViper) Get(namespace, key string) (any, bool) {
	path := namespace + "." + key
	if !viper.IsSet(path) {
		return nil, false
	}
	return viper.Get(path), true
}

type processEnv struct{}

func (processEnv) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Config reads a config value for the caller against the default-named
// store. Reads work even when no store was ever started: the lookup then
// delegates straight to the default global config source, so callers that
// never override anything need no setup at all.
func Config(caller CallerID, namespace, key string) (any, bool, error) {
	if s, ok := Active(DefaultName); ok {
		return s.Config(caller, namespace, key)
	}
	if !caller.valid() {
		return nil, false, ErrMustProvideCaller
	}
	value, ok := defaultConfigSource.Get(namespace, key)
	return value, ok, nil
}

// Env reads an env var for the caller against the default-named store,
// delegating straight to the default global env source when no store was
// ever started.
func Env(caller CallerID, name string) (string, bool, error) {
	if s, ok := Active(DefaultName); ok {
		return s.Env(caller, name)
	}
	if !caller.valid() {
		return "", false, ErrMustProvideCaller
	}
	if name == "" {
		return "", false, ErrEmptyName
	}
	value, ok := defaultEnvSource.Lookup(name)
	return value, ok, nil
}

// SetConfig records a config override on the default-named store. Unlike
// reads, writes require the store: ErrNotStarted before Start.
func SetConfig(caller CallerID, namespace, key string, value any) error {
	s, ok := Active(DefaultName)
	if !ok {
		return ErrNotStarted
	}
	return s.SetConfig(caller, namespace, key, value)
}

// SetEnv records an env override on the default-named store.
func SetEnv(caller CallerID, name, value string) error {
	s, ok := Active(DefaultName)
	if !ok {
		return ErrNotStarted
	}
	return s.SetEnv(caller, name, value)
}

// Copy copies overrides between callers on the default-named store.
func Copy(from, to CallerID) (CallerOverrides, bool, error) {
	s, ok := Active(DefaultName)
	if !ok {
		return CallerOverrides{}, false, ErrNotStarted
	}
	return s.Copy(from, to)
}

// CopyStrict copies overrides between callers on the default-named store,
// failing with ErrNoOverrides when the source caller has none.
func CopyStrict(from, to CallerID) error {
	s, ok := Active(DefaultName)
	if !ok {
		return ErrNotStarted
	}
	return s.CopyStrict(from, to)
}
