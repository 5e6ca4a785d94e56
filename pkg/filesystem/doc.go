// Package filesystem provides the filesystem implementations denotag reads
// documents through: the OS filesystem, and any afero.Fs (an in-memory one in
// tests).
package filesystem
