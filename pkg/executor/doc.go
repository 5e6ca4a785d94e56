// Package executor provides the default run backend for denotag.
//
// The executor starts the configured command with the tag's target file and
// flags appended, waits for it, and returns what it wrote to stdout. It is the
// only place a time limit is applied to run actions.
package executor
