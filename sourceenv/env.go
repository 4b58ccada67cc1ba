package sourceenv

import (
	"os"

	"github.com/livinginthepast/gestalt"
)

// Options configures environment variable lookups.
type Options struct {
	// Prefix is prepended to every name before lookup. A store wired with
	// Prefix "APP_" answers Lookup("PORT") from APP_PORT. Empty = names
	// are looked up as given.
	Prefix string
}

type envSource struct {
	opts Options
}

// New creates a process-environment env source.
func New(opts Options) gestalt.EnvSource {
	return &envSource{opts: opts}
}

// Lookup returns the variable's value from the process environment.
func (e *envSource) Lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	return os.LookupEnv(e.opts.Prefix + name)
}
