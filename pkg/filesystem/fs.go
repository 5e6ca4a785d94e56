package filesystem

import (
	"io/fs"
)

// FS is the subset of filesystem operations denotag needs.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	// WriteFile creates missing parent directories
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// RealPath returns the absolute, symlink-resolved form of name
	RealPath(name string) (string, error)
}
