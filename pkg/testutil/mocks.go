package testutil

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/arthur-debert/denotag/pkg/types"
)

// MockRunner is a testify mock implementing types.Runner.
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, req types.RunRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

// MockBundler is a testify mock implementing types.Bundler.
type MockBundler struct {
	mock.Mock
}

func (m *MockBundler) Bundle(ctx context.Context, req types.BundleRequest) ([]types.Diagnostic, string, error) {
	args := m.Called(ctx, req)
	diags, _ := args.Get(0).([]types.Diagnostic)
	return diags, args.String(1), args.Error(2)
}

// RecordingRunner answers every run from Respond and records the requests.
type RecordingRunner struct {
	Respond func(req types.RunRequest) (string, error)

	mu       sync.Mutex
	requests []types.RunRequest
}

// NewEchoRunner returns a runner whose output is the target file name.
func NewEchoRunner() *RecordingRunner {
	return &RecordingRunner{
		Respond: func(req types.RunRequest) (string, error) {
			if len(req.ExtraArgs) == 0 {
				return "", nil
			}
			return req.ExtraArgs[0], nil
		},
	}
}

// NewStaticRunner returns a runner that always outputs the same text.
func NewStaticRunner(output string) *RecordingRunner {
	return &RecordingRunner{
		Respond: func(types.RunRequest) (string, error) { return output, nil },
	}
}

func (r *RecordingRunner) Run(_ context.Context, req types.RunRequest) ([]byte, error) {
	r.mu.Lock()
	r.requests = append(r.requests, req)
	r.mu.Unlock()

	out, err := r.Respond(req)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Requests returns the recorded requests in call order.
func (r *RecordingRunner) Requests() []types.RunRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]types.RunRequest, len(r.requests))
	copy(out, r.requests)
	return out
}

// Files returns the target file of every recorded request.
func (r *RecordingRunner) Files() []string {
	var files []string
	for _, req := range r.Requests() {
		if len(req.ExtraArgs) > 0 {
			files = append(files, req.ExtraArgs[0])
		}
	}
	return files
}

// RecordingBundler answers every bundle from Respond and records the requests.
type RecordingBundler struct {
	Respond func(req types.BundleRequest) (string, error)

	mu       sync.Mutex
	requests []types.BundleRequest
}

// NewStaticBundler returns a bundler that always outputs the same text.
func NewStaticBundler(output string) *RecordingBundler {
	return &RecordingBundler{
		Respond: func(types.BundleRequest) (string, error) { return output, nil },
	}
}

func (b *RecordingBundler) Bundle(_ context.Context, req types.BundleRequest) ([]types.Diagnostic, string, error) {
	b.mu.Lock()
	b.requests = append(b.requests, req)
	b.mu.Unlock()

	out, err := b.Respond(req)
	return nil, out, err
}

// Requests returns the recorded requests in call order.
func (b *RecordingBundler) Requests() []types.BundleRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]types.BundleRequest, len(b.requests))
	copy(out, b.requests)
	return out
}
