// Package bundler provides the default bundle backend for denotag, built on
// esbuild. A bundle directive's target is bundled with all of its imports
// into a single script whose text replaces the directive.
package bundler
