package storage

import (
	"errors"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
	ErrExternalService = errors.New("external service failure")
)

// lookupErr turns a repository miss into ErrNotFound. Foreign and missing
// rows are indistinguishable to the caller.
func lookupErr(what string, err error) error {
	if errors.Is(err, repository.ErrObjectNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}
