// Package dispatcher turns one directive's attributes into a backend call.
// A directive names either a file to run or a file to bundle; every other
// attribute is forwarded to the run backend as a key=value flag.
package dispatcher

import (
	"context"
	"fmt"

	"github.com/arthur-debert/denotag/pkg/errors"
	"github.com/arthur-debert/denotag/pkg/logging"
	"github.com/arthur-debert/denotag/pkg/types"
)

// ActionType represents the kind of action a directive requests
type ActionType string

const (
	ActionRun    ActionType = "run"
	ActionBundle ActionType = "bundle"
)

// Action is the resolved request of one directive.
type Action struct {
	Type  ActionType
	File  string
	Flags []string
}

// Resolve reads the action out of an attribute map. Without a run or bundle
// attribute the action is a run of the empty path.
func Resolve(attrs *types.Attributes) Action {
	action := Action{Type: ActionRun, Flags: []string{}}
	for _, attr := range attrs.Pairs() {
		switch attr.Name {
		case string(ActionRun):
			action.File = attr.Value.Unquoted()
		case string(ActionBundle):
			action.Type = ActionBundle
			action.File = attr.Value.Unquoted()
		default:
			action.Flags = append(action.Flags, fmt.Sprintf("%s=%s", attr.Name, attr.Value))
		}
	}
	return action
}

// Options contains the backends and settings used for dispatching.
type Options struct {
	Runner  types.Runner
	Bundler types.Bundler

	// RunCommand is the base command the target file and flags are appended to
	RunCommand []string
	Capture    types.Capture

	// Dir is the directory relative targets resolve against
	Dir string

	BundleOptions types.BundleOptions
	Sources       map[string]string
}

// Dispatcher invokes the run or bundle backend for directives.
type Dispatcher struct {
	opts Options
}

// New creates a dispatcher. Both backends must be supplied.
func New(opts Options) (*Dispatcher, error) {
	if opts.Runner == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no run backend configured")
	}
	if opts.Bundler == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no bundle backend configured")
	}
	if opts.Capture == "" {
		opts.Capture = types.CapturePiped
	}
	return &Dispatcher{opts: opts}, nil
}

// Dispatch runs the action requested by attrs and returns its output.
//
// A failing run backend is logged and yields empty output so one broken tag
// does not abort the document. A bundle backend error is returned.
func (d *Dispatcher) Dispatch(ctx context.Context, attrs *types.Attributes) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	logger := logging.GetLogger("dispatcher")
	action := Resolve(attrs)

	logger.Debug().
		Str("action", string(action.Type)).
		Str("file", action.File).
		Strs("flags", action.Flags).
		Msg("Dispatching directive")

	switch action.Type {
	case ActionBundle:
		diagnostics, output, err := d.opts.Bundler.Bundle(ctx, types.BundleRequest{
			File:    action.File,
			Sources: d.opts.Sources,
			Options: d.opts.BundleOptions,
			Dir:     d.opts.Dir,
		})
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrBundle, "failed to bundle %s", action.File).
				WithDetail("file", action.File)
		}
		logger.Debug().
			Str("file", action.File).
			Int("diagnostics", len(diagnostics)).
			Msg("Bundle finished")
		return output, nil

	default:
		if action.File == "" {
			logger.Warn().
				Strs("flags", action.Flags).
				Msg("Directive has neither run nor bundle attribute, running empty path")
		}

		extra := append([]string{action.File}, action.Flags...)
		output, err := d.opts.Runner.Run(ctx, types.RunRequest{
			Command:   d.opts.RunCommand,
			ExtraArgs: extra,
			Capture:   d.opts.Capture,
			Dir:       d.opts.Dir,
		})
		if err != nil {
			logger.Error().
				Err(err).
				Str("file", action.File).
				Msg("Run action failed, replacing directive with empty output")
			return "", nil
		}
		return string(output), nil
	}
}
