package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/denotag/pkg/types"
)

func TestRecordingRunner(t *testing.T) {
	r := NewEchoRunner()

	out, err := r.Run(context.Background(), types.RunRequest{ExtraArgs: []string{"a.ts", "x"}})
	require.NoError(t, err)
	assert.Equal(t, "a.ts", string(out))

	_, err = r.Run(context.Background(), types.RunRequest{ExtraArgs: []string{"b.ts"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.ts", "b.ts"}, r.Files())
	assert.Len(t, r.Requests(), 2)
}

func TestRecordingRunnerError(t *testing.T) {
	r := &RecordingRunner{Respond: func(types.RunRequest) (string, error) {
		return "", errors.New("nope")
	}}
	out, err := r.Run(context.Background(), types.RunRequest{})
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestRecordingBundler(t *testing.T) {
	b := NewStaticBundler("x();")
	diags, out, err := b.Bundle(context.Background(), types.BundleRequest{File: "a.ts"})
	require.NoError(t, err)
	assert.Nil(t, diags)
	assert.Equal(t, "x();", out)
	assert.Equal(t, "a.ts", b.Requests()[0].File)
}

func TestLines(t *testing.T) {
	assert.Equal(t, "a\nb", Lines("a", "b"))
}
