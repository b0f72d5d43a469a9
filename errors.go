package compliance

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for common engine error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrModuleNotFound indicates the requested module key is not present in
	// the registry.
	ErrModuleNotFound = errors.New("module not found")

	// ErrUnknownCategory indicates a module references a category that is not
	// part of the catalog's category set.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrDuplicateModule indicates two modules were registered under the same
	// key.
	ErrDuplicateModule = errors.New("duplicate module key")

	// ErrEmptyCategory indicates a category has no modules, which breaks the
	// rollup invariant that every category averages over at least one module.
	ErrEmptyCategory = errors.New("category has no modules")

	// ErrInvalidManifest indicates a catalog manifest is malformed or
	// incomplete.
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrInvalidExpression indicates a gap-detector expression failed to
	// compile.
	ErrInvalidExpression = errors.New("invalid gap expression")
)

// Error kinds categorize errors by their type.
const (
	// KindNotFound represents errors where a resource was not found.
	KindNotFound = "not_found"

	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindConfiguration represents errors related to configuration.
	KindConfiguration = "configuration"

	// KindNetwork represents errors related to network operations.
	KindNetwork = "network"
)

// Error is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of
// error.
//
// Error implements the error interface and supports error unwrapping, making
// it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	err := &compliance.Error{
//		Op:   "Registry.New",
//		Kind: compliance.KindValidation,
//		Err:  compliance.ErrUnknownCategory,
//	}
type Error struct {
	// Op is the operation that failed (e.g., "Registry.New", "Store.Save").
	Op string

	// Kind categorizes the error (e.g., KindNotFound, KindValidation).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	// This can include module keys, category names, or other debugging
	// information.
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("compliance: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("compliance: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("compliance: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison based on the
// underlying error or the Error itself.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a copy of the error with the provided context added.
//
// Example:
//
//	err = err.WithContext(map[string]any{"module": "training_matrix"})
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	newErr.Context = make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		newErr.Context[k] = v
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// NewNotFoundError creates a new Error with KindNotFound.
func NewNotFoundError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindNotFound, Err: err}
}

// NewValidationError creates a new Error with KindValidation.
func NewValidationError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindValidation, Err: err}
}

// NewConfigurationError creates a new Error with KindConfiguration.
func NewConfigurationError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindConfiguration, Err: err}
}

// NewNetworkError creates a new Error with KindNetwork.
func NewNetworkError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindNetwork, Err: err}
}

// CloseWithLog attempts to close the provided resource and logs any error at
// warning level. This is intended for use in defer statements so cleanup
// errors are not silently ignored.
//
// The name parameter should describe the resource being closed. If logger is
// nil, slog.Default() is used.
func CloseWithLog(closer io.Closer, logger *slog.Logger, name string) {
	if closer == nil {
		return
	}

	if logger == nil {
		logger = slog.Default()
	}

	if err := closer.Close(); err != nil {
		logger.Warn("failed to close resource",
			"resource", name,
			"error", err)
	}
}
