package config

import (
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/denotag/pkg/errors"
	"github.com/arthur-debert/denotag/pkg/types"
)

// Config is the effective denotag configuration
type Config struct {
	Run    RunConfig           `koanf:"run"`
	Bundle types.BundleOptions `koanf:"bundle"`
	Output OutputConfig        `koanf:"output"`
}

// RunConfig configures the run backend
type RunConfig struct {
	Command []string      `koanf:"command"`
	Capture types.Capture `koanf:"capture"`
	Timeout time.Duration `koanf:"timeout"`

	// EnvFile is a dotenv file whose variables are added to every run.
	// Relative paths resolve against the document's directory.
	EnvFile string `koanf:"env_file"`
}

// OutputConfig configures how action output is spliced in
type OutputConfig struct {
	TrimTrailingNewline bool `koanf:"trim_trailing_newline" toml:"trim_trailing_newline"`
}

var (
	validFormats   = map[string]bool{"": true, "esm": true, "iife": true, "cjs": true}
	validPlatforms = map[string]bool{"": true, "browser": true, "node": true, "neutral": true}
)

// Validate checks the configuration for values the backends cannot use
func (c *Config) Validate() error {
	if len(c.Run.Command) == 0 || c.Run.Command[0] == "" {
		return errors.New(errors.ErrConfigValid, "run.command must name an executable")
	}
	if !c.Run.Capture.Valid() {
		return errors.Newf(errors.ErrConfigValid, "run.capture must be %q or %q, got %q",
			types.CapturePiped, types.CaptureCombined, c.Run.Capture)
	}
	if c.Run.Timeout < 0 {
		return errors.Newf(errors.ErrConfigValid, "run.timeout must not be negative, got %s", c.Run.Timeout)
	}
	if !validFormats[c.Bundle.Format] {
		return errors.Newf(errors.ErrConfigValid, "bundle.format must be esm, iife or cjs, got %q", c.Bundle.Format)
	}
	if !validPlatforms[c.Bundle.Platform] {
		return errors.Newf(errors.ErrConfigValid, "bundle.platform must be browser, node or neutral, got %q", c.Bundle.Platform)
	}
	return nil
}

// tomlDocument mirrors Config with the field shapes used in config files
type tomlDocument struct {
	Run struct {
		Command []string `toml:"command"`
		Capture string   `toml:"capture"`
		Timeout string   `toml:"timeout"`
		EnvFile string   `toml:"env_file"`
	} `toml:"run"`
	Bundle types.BundleOptions `toml:"bundle"`
	Output OutputConfig        `toml:"output"`
}

// ToTOML renders the configuration in config file syntax
func (c *Config) ToTOML() ([]byte, error) {
	var doc tomlDocument
	doc.Run.Command = c.Run.Command
	doc.Run.Capture = string(c.Run.Capture)
	doc.Run.Timeout = c.Run.Timeout.String()
	doc.Run.EnvFile = c.Run.EnvFile
	doc.Bundle = c.Bundle
	if doc.Bundle.External == nil {
		doc.Bundle.External = []string{}
	}
	doc.Output = c.Output

	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return out, nil
}
