package core

import (
	"context"

	"github.com/arthur-debert/denotag/pkg/assemble"
	"github.com/arthur-debert/denotag/pkg/directive"
	"github.com/arthur-debert/denotag/pkg/dispatcher"
	"github.com/arthur-debert/denotag/pkg/errors"
	"github.com/arthur-debert/denotag/pkg/filesystem"
	"github.com/arthur-debert/denotag/pkg/logging"
	"github.com/arthur-debert/denotag/pkg/paths"
	"github.com/arthur-debert/denotag/pkg/types"
)

// Options configures a transformation.
type Options struct {
	Runner  types.Runner
	Bundler types.Bundler

	// RunCommand is the base command every run target is appended to
	RunCommand []string
	Capture    types.Capture

	// Dir is the directory relative tag paths resolve against. TransformFile
	// sets it to the document's directory.
	Dir string

	BundleOptions types.BundleOptions

	// Sources are in-memory files the bundler resolves before the disk
	Sources map[string]string

	TrimTrailingNewline bool
}

func (o Options) dispatcherOptions() dispatcher.Options {
	return dispatcher.Options{
		Runner:        o.Runner,
		Bundler:       o.Bundler,
		RunCommand:    o.RunCommand,
		Capture:       o.Capture,
		Dir:           o.Dir,
		BundleOptions: o.BundleOptions,
		Sources:       o.Sources,
	}
}

// Transform replaces every directive group in text with the output of its
// actions and returns the new text.
func Transform(ctx context.Context, text string, opts Options) (string, error) {
	logger := logging.GetLogger("core.transform")

	d, err := dispatcher.New(opts.dispatcherOptions())
	if err != nil {
		return "", err
	}

	doc := directive.Scan(text)
	logger.Info().
		Int("lines", len(doc.Lines)).
		Int("groups", len(doc.Entries)).
		Str("dir", opts.Dir).
		Msg("Scanned document")

	if len(doc.Entries) == 0 {
		return text, nil
	}

	results, err := assemble.Compose(ctx, doc.Entries, d, assemble.ComposeOptions{
		TrimTrailingNewline: opts.TrimTrailingNewline,
	})
	if err != nil {
		return "", err
	}

	return assemble.Reassemble(text, results), nil
}

// TransformFile reads the document at path through fsys and transforms it.
// Relative tag paths resolve against the document's directory.
func TransformFile(ctx context.Context, path string, opts Options, fsys filesystem.FS) (string, error) {
	logger := logging.GetLogger("core.transform")

	doc, err := paths.ResolveDocument(fsys, path)
	if err != nil {
		return "", err
	}

	data, err := fsys.ReadFile(doc.Path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read document: %s", path).
			WithDetail("path", doc.Path)
	}

	logger.Debug().
		Str("path", doc.Path).
		Int("bytes", len(data)).
		Msg("Read document")

	opts.Dir = doc.Dir
	return Transform(ctx, string(data), opts)
}

// Inspect scans text without dispatching anything.
func Inspect(text string) *types.Document {
	return directive.Scan(text)
}
