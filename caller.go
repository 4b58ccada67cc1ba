package gestalt

import "github.com/google/uuid"

// CallerID identifies the logical unit of execution whose overrides are
// being read or written. IDs partition the store: overrides recorded under
// one ID are invisible under every other ID, which is what keeps parallel
// test cases from interfering. An ID must stay stable for as long as its
// caller wants overrides to apply, and must not collide across unrelated
// callers. Any stable unique string works, e.g. t.Name() in tests.
//
// The zero value is not a valid caller and is rejected with
// ErrMustProvideCaller.
type CallerID string

// NewCallerID mints a random, process-unique caller identity.
func NewCallerID() CallerID {
	return CallerID(uuid.NewString())
}

func (id CallerID) valid() bool {
	return id != ""
}
