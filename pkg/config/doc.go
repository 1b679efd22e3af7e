// Package config loads codec's configuration.
//
// Configuration is layered with koanf. The embedded defaults come first,
// then every .codecrc.toml found in the search directories, then an
// explicit file, then CODEC_* environment variables. Each layer overrides
// the previous ones key by key, so a project's .codecrc.toml can add one
// variable without repeating the user's others.
package config
