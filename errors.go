package gestalt

import "errors"

// Store errors. All are immediate, non-retryable usage faults: they signal a
// bug at the call site (setup ordering, a malformed caller handle), not a
// transient condition. Missing data is never an error on reads; it triggers
// fallback to the global sources instead.
var (
	// ErrNotStarted is returned when a write or copy is attempted before
	// the store has been started.
	ErrNotStarted = errors.New("gestalt: store not started")

	// ErrMustProvideCaller is returned when a caller identity argument is
	// the zero value.
	ErrMustProvideCaller = errors.New("gestalt: caller id must be provided")

	// ErrNoOverrides is returned by CopyStrict when the source caller has
	// no overrides recorded.
	ErrNoOverrides = errors.New("gestalt: no overrides recorded for caller")

	// ErrEmptyName is returned when an environment variable name is empty.
	ErrEmptyName = errors.New("gestalt: env var name must not be empty")
)
