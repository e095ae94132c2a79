package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("jpeg: invalid marker")
	err := Wrap(cause, ErrNotAnImage)

	if !errors.Is(err, cause) {
		t.Error("wrapped error does not unwrap to its cause")
	}
	if err.Error() != cause.Error() {
		t.Errorf("Error() = %q, want the cause's message", err.Error())
	}
}

func TestGetUserMessage(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"predefined", ErrOwnerOnly, ErrOwnerOnly.UserMsg},
		{"wrapped", Wrap(cause, ErrCompositionFailed), ErrCompositionFailed.UserMsg},
		{"double wrapped", fmt.Errorf("handling update: %w", Wrap(cause, ErrNotAnImage)), ErrNotAnImage.UserMsg},
		{"plain", cause, "An unexpected error occurred. Please try again later."},
		{"nil", nil, "An unexpected error occurred. Please try again later."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.want {
				t.Errorf("GetUserMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(Wrap(errors.New("boom"), ErrCompositionFailed)) {
		t.Error("composition failure should be retryable")
	}
	if IsRetryable(ErrOwnerOnly) {
		t.Error("owner-only rejection should not be retryable")
	}
	if IsRetryable(errors.New("boom")) {
		t.Error("plain errors should not read as retryable")
	}
}
