package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/denotag/pkg/errors"
	"github.com/arthur-debert/denotag/pkg/filesystem"
)

// Environment variable names
const (
	// EnvConfigDir overrides the user config directory
	EnvConfigDir = "DENOTAG_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name for denotag-specific files
	AppDirName = "denotag"

	// UserConfigFile is the name of the user configuration file
	UserConfigFile = "config.toml"
)

// ProjectConfigFiles are looked up, in order, next to the document.
var ProjectConfigFiles = []string{".denotag.toml", "denotag.toml"}

// Document is a resolved input document.
type Document struct {
	// Path is the absolute, symlink-resolved path of the document
	Path string

	// Dir is the directory containing the document
	Dir string
}

// ResolveDocument resolves path into a Document. The path must name an
// existing regular file.
func ResolveDocument(fsys filesystem.FS, path string) (Document, error) {
	if strings.TrimSpace(path) == "" {
		return Document{}, errors.New(errors.ErrInvalidInput, "empty document path")
	}

	real, err := fsys.RealPath(expandHome(path))
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrapf(err, errors.ErrFileNotFound, "document not found: %s", path).
				WithDetail("path", path)
		}
		return Document{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve document: %s", path).
			WithDetail("path", path)
	}

	info, err := fsys.Stat(real)
	if err != nil {
		return Document{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat document: %s", path)
	}
	if info.IsDir() {
		return Document{}, errors.Newf(errors.ErrInvalidInput, "document is a directory: %s", path).
			WithDetail("path", path)
	}

	return Document{Path: real, Dir: filepath.Dir(real)}, nil
}

// ConfigDir returns the user configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// UserConfigPath returns the path of the user configuration file.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), UserConfigFile)
}

// ProjectConfigPath returns the first project config file present in dir, or
// "" when there is none.
func ProjectConfigPath(fsys filesystem.FS, dir string) string {
	for _, name := range ProjectConfigFiles {
		path := filepath.Join(dir, name)
		if info, err := fsys.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
