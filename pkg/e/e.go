package e

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
	ErrDeadline           = errors.New("deadline exceeded")
	ErrCanceled           = errors.New("context canceled")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrBackend            = errors.New("backend failure")
	ErrBackendRejected    = errors.New("backend rejected request")
)

func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// WrapStatus maps a non-2xx backend response to a sentinel. The body stays
// verbatim: the backend contract treats it as an opaque display message.
func WrapStatus(op string, status int, body string) error {
	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%s: %s: %w", op, body, ErrNotFound)
	case status >= 400 && status < 500:
		return fmt.Errorf("%s: status %d: %s: %w", op, status, body, ErrBackendRejected)
	default:
		return fmt.Errorf("%s: status %d: %s: %w", op, status, body, ErrBackend)
	}
}
