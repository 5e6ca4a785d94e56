package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/denotag/pkg/errors"
	"github.com/arthur-debert/denotag/pkg/filesystem"
)

func TestResolveDocument(t *testing.T) {
	mem := filesystem.NewMemory()
	require.NoError(t, mem.WriteFile("/site/pages/index.html", []byte("<html>"), 0644))

	t.Run("existing_file", func(t *testing.T) {
		doc, err := ResolveDocument(mem, "/site/pages/index.html")
		require.NoError(t, err)
		assert.Equal(t, "/site/pages/index.html", doc.Path)
		assert.Equal(t, "/site/pages", doc.Dir)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := ResolveDocument(mem, "/site/nope.html")
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	})

	t.Run("directory", func(t *testing.T) {
		_, err := ResolveDocument(mem, "/site/pages")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("empty_path", func(t *testing.T) {
		_, err := ResolveDocument(mem, "  ")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestResolveDocumentOS(t *testing.T) {
	dir := t.TempDir()
	osfs := filesystem.NewOS()
	require.NoError(t, osfs.WriteFile(filepath.Join(dir, "a.html"), []byte("x"), 0644))

	doc, err := ResolveDocument(osfs, filepath.Join(dir, "a.html"))
	require.NoError(t, err)

	realDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, realDir, doc.Dir)
}

func TestProjectConfigPath(t *testing.T) {
	mem := filesystem.NewMemory()
	require.NoError(t, mem.WriteFile("/a/denotag.toml", []byte(""), 0644))
	require.NoError(t, mem.WriteFile("/b/.denotag.toml", []byte(""), 0644))
	require.NoError(t, mem.WriteFile("/b/denotag.toml", []byte(""), 0644))

	assert.Equal(t, "/a/denotag.toml", ProjectConfigPath(mem, "/a"))
	assert.Equal(t, "/b/.denotag.toml", ProjectConfigPath(mem, "/b"))
	assert.Equal(t, "", ProjectConfigPath(mem, "/c"))
}

func TestConfigDirOverride(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/denotag")
	assert.Equal(t, "/custom/denotag", ConfigDir())
	assert.Equal(t, "/custom/denotag/config.toml", UserConfigPath())
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, "/home/tester/site/a.html", expandHome("~/site/a.html"))
	assert.Equal(t, "relative.html", expandHome("relative.html"))
	assert.Equal(t, "~user/x", expandHome("~user/x"))
}
