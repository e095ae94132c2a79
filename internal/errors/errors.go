package errors

import (
	"errors"
)

// UserError represents an error with both technical and user-friendly messages
type UserError struct {
	Err       error
	UserMsg   string
	Retryable bool
}

func (e *UserError) Error() string {
	return e.Err.Error()
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// Predefined errors
var (
	ErrNotAnImage = &UserError{
		Err:       errors.New("uploaded bytes are not a decodable image"),
		UserMsg:   "Sorry, I could not read that file as an image. Please send the photo again.",
		Retryable: true,
	}

	ErrCompositionFailed = &UserError{
		Err:       errors.New("watermark composition failed"),
		UserMsg:   "Sorry, something went wrong while applying the watermark. Please send the photo again.",
		Retryable: true,
	}

	ErrInvalidPercent = &UserError{
		Err:       errors.New("transparency input is not a number between 0 and 100"),
		UserMsg:   "Please send a number between 0 and 100, for example 60.",
		Retryable: true,
	}

	ErrOwnerOnly = &UserError{
		Err:       errors.New("command restricted to the bot owner"),
		UserMsg:   "Sorry, only the bot owner can use this command.",
		Retryable: false,
	}
)

// Wrap attaches a technical cause to a predefined user-facing error.
// The result unwraps to cause, so errors.Is checks against the
// underlying failure keep working.
func Wrap(cause error, user *UserError) error {
	return &UserError{
		Err:       cause,
		UserMsg:   user.UserMsg,
		Retryable: user.Retryable,
	}
}

// GetUserMessage extracts user-friendly message from error
func GetUserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMsg
	}
	// Default message for unexpected errors
	return "An unexpected error occurred. Please try again later."
}

// IsRetryable checks if an error can be retried
func IsRetryable(err error) bool {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.Retryable
	}
	return false
}
