// Package sourceviper adapts a viper instance to the gestalt ConfigSource
// interface, so a store can fall back to configuration viper already
// manages (files, env bindings, defaults).
//
// Example:
//
//	v := viper.New()
//	v.SetConfigFile("config.yaml")
//	v.ReadInConfig()
//	store := gestalt.Start(gestalt.WithConfigSource(sourceviper.New(v)))
package sourceviper
