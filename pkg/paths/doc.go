// Package paths provides centralized path handling for codec.
//
// It resolves the directories codec reads configuration from and writes its
// log to, following the XDG Base Directory specification, and expands the
// "~" and "$VAR" forms users write in configuration files.
//
// # Environment Variables
//
//   - CODEC_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/codec)
//   - XDG_CONFIG_HOME, XDG_STATE_HOME: Standard XDG overrides
package paths
