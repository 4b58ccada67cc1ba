// Package sourcefile serves point lookups from YAML, JSON, or TOML config
// files, for wiring a gestalt store to file-backed global configuration.
//
// Format is auto-detected from extension (.yaml, .json, .toml). Several
// files can be layered; later files win key-by-key and nested tables merge.
//
// Example:
//
//	source, err := sourcefile.New("config.yaml", sourcefile.Options{Required: true})
//	store := gestalt.Start(gestalt.WithConfigSource(source))
package sourcefile
