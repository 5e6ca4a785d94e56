package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/denotag/pkg/errors"
	"github.com/arthur-debert/denotag/pkg/filesystem"
	"github.com/arthur-debert/denotag/pkg/logging"
	"github.com/arthur-debert/denotag/pkg/paths"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "DENOTAG_"

// listKeys hold lists; their environment values are split on whitespace
var listKeys = map[string]bool{
	"run.command":     true,
	"bundle.external": true,
}

var sections = map[string]bool{"run": true, "bundle": true, "output": true}

// LoadOptions selects the configuration layers to load
type LoadOptions struct {
	// FS is used to find and read the project config file
	FS filesystem.FS

	// DocumentDir is searched for .denotag.toml / denotag.toml
	DocumentDir string

	// UserConfigPath overrides the user config location; "" uses the XDG default
	UserConfigPath string

	// SkipUserConfig disables the user config layer
	SkipUserConfig bool

	// ConfigFile is an explicit config file (.toml, .yaml or .yml)
	ConfigFile string

	// Overrides are dotted keys applied last, e.g. {"run.command": []string{"node"}}
	Overrides map[string]interface{}
}

// Load builds the effective configuration from all layers
func Load(opts LoadOptions) (*Config, error) {
	k, err := LoadKoanf(opts)
	if err != nil {
		return nil, err
	}
	return Unmarshal(k)
}

// LoadKoanf merges all configuration layers into a koanf instance
func LoadKoanf(opts LoadOptions) (*koanf.Koanf, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	// 2. User config
	if !opts.SkipUserConfig {
		userPath := opts.UserConfigPath
		if userPath == "" {
			userPath = paths.UserConfigPath()
		}
		if info, err := filesystem.NewOS().Stat(userPath); err == nil && !info.IsDir() {
			if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", userPath)
			}
			logger.Debug().Str("path", userPath).Msg("Loaded user config")
		}
	}

	// 3. Project config next to the document
	if opts.DocumentDir != "" {
		if projectPath := paths.ProjectConfigPath(fsys, opts.DocumentDir); projectPath != "" {
			data, err := fsys.ReadFile(projectPath)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read project config %s", projectPath)
			}
			if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load project config from %s", projectPath)
			}
			logger.Debug().Str("path", projectPath).Msg("Loaded project config")
		}
	}

	// 4. Environment
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment config")
	}

	// 5. Explicit config file
	if opts.ConfigFile != "" {
		parser, err := parserFor(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(opts.ConfigFile), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config file %s", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
	}

	// 6. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	return k, nil
}

// Unmarshal decodes a koanf instance into a validated Config
func Unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				stringToFieldsHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps DENOTAG_RUN_COMMAND to run.command. The first underscore
// separates the section; variables outside the known sections are ignored.
func envKey(key, value string) (string, interface{}) {
	name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	section, _, found := strings.Cut(name, "_")
	if !found || !sections[section] {
		return "", nil
	}
	name = strings.Replace(name, "_", ".", 1)
	if listKeys[name] {
		return name, strings.Fields(value)
	}
	return name, value
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config file type: %s", path).
			WithDetail("path", path)
	}
}

// stringToFieldsHookFunc splits a string into whitespace separated fields
// when the target is a string slice, so run.command = "deno run" works
func stringToFieldsHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.String {
			return data, nil
		}
		return strings.Fields(reflect.ValueOf(data).String()), nil
	}
}
