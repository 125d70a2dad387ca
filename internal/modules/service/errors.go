package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStore marks a failure of the relational store itself.
	ErrStore = errors.New("store error")
)

// GatewayError is an analysis failure that could not be hidden behind the
// mock fallback.
type GatewayError struct {
	// Status is the upstream HTTP status, zero when the failure happened
	// before a response arrived.
	Status int
	Detail string
	// FallbackTried is set when the mock generator ran and also failed.
	FallbackTried bool
	Err           error
}

func (e *GatewayError) Error() string {
	switch {
	case e.FallbackTried:
		return fmt.Sprintf("analysis failed and fallback failed: %s", e.Detail)
	case e.Status != 0:
		return fmt.Sprintf("analysis provider returned %d: %s", e.Status, e.Detail)
	default:
		return fmt.Sprintf("analysis provider failed: %s", e.Detail)
	}
}

func (e *GatewayError) Unwrap() error { return e.Err }

// notFound maps gorm's missing-row error onto ErrNotFound.
func notFound(what string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return storeErr(fmt.Sprintf("%s %d", what, id), err)
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
