// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/denotag/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "file_not_found_error",
			code:    errors.ErrFileNotFound,
			message: "index.html not found",
			wantStr: "[FILE_NOT_FOUND] index.html not found",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "no run backend configured",
			wantStr: "[INVALID_INPUT] no run backend configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrConfigValid, "unknown capture mode %q", "tty")
	if want := `unknown capture mode "tty"`; err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("exit status 1")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrActionExecute, "command failed")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[ACTION_EXECUTE] command failed: exit status 1"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}

		if !stderrors.Is(err, baseErr) {
			t.Error("errors.Is() should reach the wrapped error")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrBundle, "bundle failed").
		WithDetail("file", "app.ts").
		WithDetail("errors", 2)

	if err.Details["file"] != "app.ts" {
		t.Errorf("WithDetail() file = %v, want %v", err.Details["file"], "app.ts")
	}
	if err.Details["errors"] != 2 {
		t.Errorf("WithDetail() errors = %v, want %v", err.Details["errors"], 2)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrFileAccess, "error 1")
	err2 := errors.New(errors.ErrFileAccess, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestErrorCodeLookup(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode errors.ErrorCode
	}{
		{"coded_error", errors.New(errors.ErrConfigLoad, "x"), errors.ErrConfigLoad},
		{"wrapped_by_fmt", fmt.Errorf("outer: %w", errors.New(errors.ErrBundle, "x")), errors.ErrBundle},
		{"plain_error", stderrors.New("plain"), errors.ErrUnknown},
		{"nil_error", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.wantCode {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.wantCode)
			}
			if tt.wantCode != errors.ErrUnknown && !errors.IsErrorCode(tt.err, tt.wantCode) {
				t.Errorf("IsErrorCode() = false, want true")
			}
		})
	}

	if d := errors.GetErrorDetails(stderrors.New("plain")); d != nil {
		t.Errorf("GetErrorDetails() = %v, want nil", d)
	}
}
