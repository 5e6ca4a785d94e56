package dispatcher

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/denotag/pkg/errors"
	"github.com/arthur-debert/denotag/pkg/testutil"
	"github.com/arthur-debert/denotag/pkg/types"
)

func attrs(pairs ...string) *types.Attributes {
	a := types.NewAttributes()
	for i := 0; i < len(pairs); i += 2 {
		a.Set(pairs[i], types.Value(pairs[i+1]))
	}
	return a
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		attrs *types.Attributes
		want  Action
	}{
		{
			name:  "run",
			attrs: attrs("run", `"f.ts"`),
			want:  Action{Type: ActionRun, File: "f.ts", Flags: []string{}},
		},
		{
			name:  "bundle",
			attrs: attrs("bundle", `"lib/app.ts"`),
			want:  Action{Type: ActionBundle, File: "lib/app.ts", Flags: []string{}},
		},
		{
			name:  "flags_in_order_with_quotes",
			attrs: attrs("mode", `"dev"`, "run", `"f.ts"`, "flag", string(types.True)),
			want:  Action{Type: ActionRun, File: "f.ts", Flags: []string{`mode="dev"`, `flag="true"`}},
		},
		{
			name:  "neither_run_nor_bundle",
			attrs: attrs("flag", string(types.True)),
			want:  Action{Type: ActionRun, File: "", Flags: []string{`flag="true"`}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.attrs))
		})
	}
}

func TestNewRequiresBackends(t *testing.T) {
	_, err := New(Options{Bundler: &testutil.MockBundler{}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = New(Options{Runner: &testutil.MockRunner{}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDispatchRun(t *testing.T) {
	runner := &testutil.MockRunner{}
	runner.On("Run", mock.Anything, types.RunRequest{
		Command:   []string{"deno", "run"},
		ExtraArgs: []string{"f.ts", `flag="true"`},
		Capture:   types.CapturePiped,
		Dir:       "/site",
	}).Return([]byte("42;"), nil).Once()

	d, err := New(Options{
		Runner:     runner,
		Bundler:    &testutil.MockBundler{},
		RunCommand: []string{"deno", "run"},
		Dir:        "/site",
	})
	require.NoError(t, err)

	out, err := d.Dispatch(context.Background(), attrs("run", `"f.ts"`, "flag", string(types.True)))
	require.NoError(t, err)
	assert.Equal(t, "42;", out)
	runner.AssertExpectations(t)
}

func TestDispatchRunFailureDegradesToEmpty(t *testing.T) {
	runner := &testutil.MockRunner{}
	runner.On("Run", mock.Anything, mock.Anything).
		Return([]byte(nil), stderrors.New("exit status 1")).Once()

	d, err := New(Options{Runner: runner, Bundler: &testutil.MockBundler{}})
	require.NoError(t, err)

	out, err := d.Dispatch(context.Background(), attrs("run", `"broken.ts"`))
	assert.NoError(t, err)
	assert.Equal(t, "", out)
	runner.AssertNumberOfCalls(t, "Run", 1)
}

func TestDispatchBundle(t *testing.T) {
	bundler := &testutil.MockBundler{}
	opts := types.BundleOptions{Format: "esm"}
	sources := map[string]string{"app.ts": "export {}"}
	bundler.On("Bundle", mock.Anything, types.BundleRequest{
		File:    "app.ts",
		Sources: sources,
		Options: opts,
		Dir:     "/site",
	}).Return([]types.Diagnostic{{Severity: "warning", Text: "unused"}}, "bundled();", nil).Once()

	d, err := New(Options{
		Runner:        &testutil.MockRunner{},
		Bundler:       bundler,
		Dir:           "/site",
		BundleOptions: opts,
		Sources:       sources,
	})
	require.NoError(t, err)

	out, err := d.Dispatch(context.Background(), attrs("bundle", `"app.ts"`, "ignored", `"x"`))
	require.NoError(t, err)
	assert.Equal(t, "bundled();", out)
	bundler.AssertExpectations(t)
}

func TestDispatchBundleError(t *testing.T) {
	bundler := &testutil.MockBundler{}
	bundler.On("Bundle", mock.Anything, mock.Anything).
		Return([]types.Diagnostic(nil), "", stderrors.New("boom")).Once()

	d, err := New(Options{Runner: &testutil.MockRunner{}, Bundler: bundler})
	require.NoError(t, err)

	_, err = d.Dispatch(context.Background(), attrs("bundle", `"app.ts"`))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBundle))
	assert.Equal(t, "app.ts", errors.GetErrorDetails(err)["file"])
}

func TestDispatchCancelledContext(t *testing.T) {
	runner := &testutil.MockRunner{}
	d, err := New(Options{Runner: runner, Bundler: &testutil.MockBundler{}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = d.Dispatch(ctx, attrs("run", `"f.ts"`))
	assert.ErrorIs(t, err, context.Canceled)
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}
