package executor

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/denotag/pkg/errors"
	"github.com/arthur-debert/denotag/pkg/logging"
	"github.com/arthur-debert/denotag/pkg/types"
)

// Options contains configuration for the executor
type Options struct {
	// Timeout bounds each run; zero means no limit
	Timeout time.Duration

	// Stderr receives the child's stderr in piped mode. Defaults to os.Stderr.
	Stderr io.Writer

	// Env is appended to the current environment
	Env []string

	// Logger defaults to the "executor" component logger
	Logger *zerolog.Logger
}

// Executor runs external commands and captures their output
type Executor struct {
	timeout time.Duration
	stderr  io.Writer
	env     []string
	logger  zerolog.Logger
}

var _ types.Runner = (*Executor)(nil)

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Executor{
		timeout: opts.Timeout,
		stderr:  stderr,
		env:     opts.Env,
		logger:  logger,
	}
}

// Run executes req and returns the captured output. A process that cannot be
// started or exits non-zero is an error; its partial output is discarded.
func (e *Executor) Run(ctx context.Context, req types.RunRequest) ([]byte, error) {
	argv := req.Argv()
	if len(req.Command) == 0 || argv[0] == "" {
		return nil, errors.New(errors.ErrInvalidInput, "run request requires a command")
	}

	capture := req.Capture
	if capture == "" {
		capture = types.CapturePiped
	}
	if !capture.Valid() {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown capture mode: %s", capture)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	logging.LogCommand(argv[0], argv[1:])
	start := time.Now()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = req.Dir
	cmd.Env = append(os.Environ(), e.env...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if capture == types.CaptureCombined {
		cmd.Stderr = &stdout
	} else {
		cmd.Stderr = e.stderr
	}

	err := cmd.Run()
	if err != nil {
		code := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
		}
		if ctx.Err() == context.DeadlineExceeded {
			err = ctx.Err()
		}

		e.logger.Error().
			Err(err).
			Str("command", argv[0]).
			Strs("args", argv[1:]).
			Str("dir", req.Dir).
			Int("exitCode", code).
			Msg("Command execution failed")

		return nil, errors.Wrapf(err, errors.ErrActionExecute, "failed to execute command: %s", argv[0]).
			WithDetail("args", argv[1:]).
			WithDetail("exitCode", code)
	}

	e.logger.Debug().
		Str("command", argv[0]).
		Int("bytes", stdout.Len()).
		Dur("duration", time.Since(start)).
		Msg("Command executed successfully")

	return stdout.Bytes(), nil
}
