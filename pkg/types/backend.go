package types

import "context"

// Capture selects what a run backend collects from the child process.
type Capture string

const (
	// CapturePiped captures stdout; stderr is passed through.
	CapturePiped Capture = "piped"
	// CaptureCombined captures stdout and stderr into the same buffer.
	CaptureCombined Capture = "combined"
)

// Valid reports whether c is a known capture mode.
func (c Capture) Valid() bool {
	return c == CapturePiped || c == CaptureCombined
}

// RunRequest describes one run action.
type RunRequest struct {
	// Command is the base command, e.g. ["deno", "run", "--allow-all"]
	Command []string

	// ExtraArgs is appended after Command: the target file then the flags
	ExtraArgs []string

	Capture Capture

	// Dir is the working directory; relative targets resolve against it
	Dir string
}

// Argv returns the full argument vector.
func (r RunRequest) Argv() []string {
	argv := make([]string, 0, len(r.Command)+len(r.ExtraArgs))
	argv = append(argv, r.Command...)
	return append(argv, r.ExtraArgs...)
}

// Runner executes an external file and returns its captured output.
type Runner interface {
	Run(ctx context.Context, req RunRequest) ([]byte, error)
}

// BundleOptions are the pass-through options for a bundle action.
type BundleOptions struct {
	Format   string   `koanf:"format" toml:"format"`
	Platform string   `koanf:"platform" toml:"platform"`
	Target   string   `koanf:"target" toml:"target"`
	Minify   bool     `koanf:"minify" toml:"minify"`
	External []string `koanf:"external" toml:"external"`
}

// BundleRequest describes one bundle action.
type BundleRequest struct {
	File string

	// Sources maps module paths to in-memory contents that take precedence
	// over files on disk
	Sources map[string]string

	Options BundleOptions
	Dir     string
}

// Diagnostic is a message reported by a bundler.
type Diagnostic struct {
	Severity string `json:"severity" yaml:"severity"`
	Text     string `json:"text" yaml:"text"`
	File     string `json:"file,omitempty" yaml:"file,omitempty"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int    `json:"column,omitempty" yaml:"column,omitempty"`
}

// Bundler bundles a source entry point and returns its diagnostics and
// output text.
type Bundler interface {
	Bundle(ctx context.Context, req BundleRequest) ([]Diagnostic, string, error)
}
