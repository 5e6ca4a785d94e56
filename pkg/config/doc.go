// Package config handles configuration management for denotag.
// It layers built-in defaults, the user config file, a project config file
// found next to the processed document, DENOTAG_* environment variables, an
// explicit config file and command-line overrides, in that order.
package config
