// Package paths resolves the locations denotag works with: the document being
// processed, the directory its relative tag targets resolve against, and the
// configuration files that apply to it.
//
// # Environment Variables
//
//   - DENOTAG_CONFIG_DIR: Override the user config directory (default: $XDG_CONFIG_HOME/denotag)
package paths
