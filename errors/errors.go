// Package errors provides standardized error handling patterns for componentvocab.
// It includes error classification, standard error variables, and helper functions
// for consistent error wrapping and classification across the module.
package errors

import (
	"errors"
	"fmt"
)

// Class represents the classification of errors for handling purposes
type Class int

const (
	// ClassNotFoundByValue represents a term lookup that failed by value
	ClassNotFoundByValue Class = iota
	// ClassNotFoundByToken represents a term lookup that failed by token
	ClassNotFoundByToken
	// ClassInvalid represents errors due to invalid input or configuration
	ClassInvalid
	// ClassFatal represents unrecoverable errors that should stop processing
	ClassFatal
)

// String returns the string representation of Class
func (c Class) String() string {
	switch c {
	case ClassNotFoundByValue:
		return "not-found-by-value"
	case ClassNotFoundByToken:
		return "not-found-by-token"
	case ClassInvalid:
		return "invalid"
	case ClassFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Vocabulary lookup errors
	ErrTermNotFound = errors.New("term not found")

	// Registry errors
	ErrDuplicateRegistration = errors.New("utility already registered")
	ErrInvalidName           = errors.New("invalid registration name")
	ErrUnknownInterface      = errors.New("unknown interface")
	ErrNilInterface          = errors.New("interface cannot be nil")

	// Directive schema errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidSchema = errors.New("invalid schema definition")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     Class
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// newClassified creates a classified error with full context
func newClassified(class Class, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// classOf extracts the classification from an error chain.
// The boolean result is false when the chain carries no classification.
func classOf(err error) (Class, bool) {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class, true
	}
	return 0, false
}

// IsNotFound checks if an error is a term lookup failure of either kind
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if class, ok := classOf(err); ok {
		return class == ClassNotFoundByValue || class == ClassNotFoundByToken
	}
	return errors.Is(err, ErrTermNotFound)
}

// IsNotFoundByValue checks if an error is a lookup failure keyed by term value
func IsNotFoundByValue(err error) bool {
	if err == nil {
		return false
	}
	class, ok := classOf(err)
	return ok && class == ClassNotFoundByValue
}

// IsNotFoundByToken checks if an error is a lookup failure keyed by term token
func IsNotFoundByToken(err error) bool {
	if err == nil {
		return false
	}
	class, ok := classOf(err)
	return ok && class == ClassNotFoundByToken
}

// IsInvalid checks if an error is due to invalid input
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}
	if class, ok := classOf(err); ok {
		return class == ClassInvalid
	}
	return errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidSchema) ||
		errors.Is(err, ErrDuplicateRegistration) ||
		errors.Is(err, ErrUnknownInterface)
}

// IsFatal checks if an error is fatal and processing should stop
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	class, ok := classOf(err)
	return ok && class == ClassFatal
}

// Wrap adds component and operation context to an error
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ClassInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ClassFatal, wrappedErr, component, method, wrappedErr.Error())
}

// NotFoundByValue builds the lookup failure reported when no term matches a value.
// The unmatched key is carried in the message.
func NotFoundByValue(component string, value any) error {
	wrappedErr := fmt.Errorf("%w: no term with value %v", ErrTermNotFound, value)
	return newClassified(ClassNotFoundByValue, wrappedErr, component, "GetTerm", wrappedErr.Error())
}

// NotFoundByToken builds the lookup failure reported when no term matches a token.
// The unmatched token is carried in the message.
func NotFoundByToken(component, token string) error {
	wrappedErr := fmt.Errorf("%w: no matching token %q", ErrTermNotFound, token)
	return newClassified(ClassNotFoundByToken, wrappedErr, component, "GetTermByToken", wrappedErr.Error())
}
