package catalog

import (
	"errors"
	"fmt"
)

const (
	notFoundErrorTemplateConstant = "unknown %s %q"
	recordKindTrackConstant       = "audit track"
	recordKindStyleConstant       = "style profile"
)

// ErrNotFound is returned (wrapped) when a lookup key has no matching record.
var ErrNotFound = errors.New("catalog record not found")

// NotFoundError describes a failed catalog lookup.
type NotFoundError struct {
	Kind string
	Key  string
}

func (notFoundError *NotFoundError) Error() string {
	return fmt.Sprintf(notFoundErrorTemplateConstant, notFoundError.Kind, notFoundError.Key)
}

// Unwrap allows errors.Is(err, ErrNotFound).
func (notFoundError *NotFoundError) Unwrap() error {
	return ErrNotFound
}
