// Package types defines the data model and backend interfaces shared by the
// denotag pipeline: occurrence groups and their attribute maps produced by the
// scanner, the action results consumed by the reassembler, and the Runner and
// Bundler interfaces the dispatcher calls out to.
package types
