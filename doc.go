// Package gestalt lets concurrently running test cases override configuration
// values and environment variables per caller, without touching process-wide
// state seen by other callers.
//
// Quick Start:
//
//	store := gestalt.Start()
//	caller := gestalt.NewCallerID()
//
//	// Override a config value and an env var for this caller only.
//	store.SetConfig(caller, "database", "pool_size", 2)
//	store.SetEnv(caller, "DATABASE_URL", "postgres://localhost/test")
//
//	// Reads prefer the caller's overrides and fall back to the global
//	// sources (viper's shared instance and the process environment).
//	size, ok, err := store.Config(caller, "database", "pool_size")
//	url, ok, err := store.Env(caller, "DATABASE_URL")
//
// Callers that never override anything read straight through to the global
// sources, whether or not a store was ever started.
//
// See example_test.go and README.md for detailed usage.
package gestalt
