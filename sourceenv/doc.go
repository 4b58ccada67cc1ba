// Package sourceenv reads environment variables from the process
// environment, the usual global env source behind a gestalt store.
//
// Example:
//
//	source := sourceenv.New(sourceenv.Options{Prefix: "APP_"})
//	store := gestalt.Start(gestalt.WithEnvSource(source))
package sourceenv
