package vybiumstarksexamples

import "fmt"

// ErrorCode represents a stage of the example round trip that failed
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig represents invalid example options
	ErrInvalidConfig

	// ErrInvalidOptions represents proof options outside of the global bounds
	ErrInvalidOptions

	// ErrConstruction represents any other failure to construct the example
	ErrConstruction

	// ErrProofGeneration represents a proof generation error
	ErrProofGeneration

	// ErrProofVerification represents an honest proof that failed to verify
	ErrProofVerification

	// ErrSoundness represents a proof that verified against wrong inputs
	ErrSoundness
)

// String returns the error code name
func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidConfig:
		return "invalid config"
	case ErrInvalidOptions:
		return "invalid proof options"
	case ErrConstruction:
		return "construction"
	case ErrProofGeneration:
		return "proof generation"
	case ErrProofVerification:
		return "proof verification"
	case ErrSoundness:
		return "soundness"
	default:
		return "unknown"
	}
}

// ExampleError represents a failed example round trip
type ExampleError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message
func (e *ExampleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vybium-starks-examples error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("vybium-starks-examples error [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *ExampleError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *ExampleError) Is(target error) bool {
	t, ok := target.(*ExampleError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a new ExampleError
func NewError(code ErrorCode, message string, cause error) *ExampleError {
	return &ExampleError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
