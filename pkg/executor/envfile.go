package executor

import (
	"bytes"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"

	"github.com/arthur-debert/denotag/pkg/errors"
	"github.com/arthur-debert/denotag/pkg/filesystem"
)

// ReadEnvFile parses a dotenv file into KEY=VALUE pairs sorted by key,
// ready for Options.Env. A relative path resolves against dir.
func ReadEnvFile(fsys filesystem.FS, dir, path string) ([]string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read env file %s", path).
			WithDetail("path", path)
	}

	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse env file %s", path).
			WithDetail("path", path)
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+vars[k])
	}
	return env, nil
}
