package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Fatal error categories. Every fatal error returned by scanning or
// generation wraps one of these so callers can tell the causes apart.
var (
	ErrWalk         = errors.New("directory walk failed")
	ErrRead         = errors.New("file read failed")
	ErrParse        = errors.New("parse failed")
	ErrCanonicalize = errors.New("path canonicalization failed")
	ErrWrite        = errors.New("file write failed")
)

// ConfigError reports an unresolved or invalid required configuration key.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration %q: %s", e.Key, e.Reason)
}

// StructuralError reports a malformed derive attribute payload on one
// declaration. It does not abort the scan of the file it occurs in.
type StructuralError struct {
	Path string
	Line int
	Msg  string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// StructuralErrors is the composite of all structural errors collected
// across one scan run. The first error absorbs all subsequent ones.
type StructuralErrors struct {
	Errs []*StructuralError
}

func (e *StructuralErrors) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the individual errors to errors.Is / errors.As.
func (e *StructuralErrors) Unwrap() []error {
	errs := make([]error, len(e.Errs))
	for i, err := range e.Errs {
		errs[i] = err
	}
	return errs
}

// CombineStructural folds a slice of structural errors into a single
// composite error, or nil if the slice is empty.
func CombineStructural(errs []*StructuralError) error {
	if len(errs) == 0 {
		return nil
	}
	return &StructuralErrors{Errs: errs}
}
