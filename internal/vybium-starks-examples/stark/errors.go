package stark

import "fmt"

// VerifierErrorCode classifies why a proof was rejected
type VerifierErrorCode int

const (
	// ErrCodeUnacceptableOptions means the proof options are not in the acceptable set
	ErrCodeUnacceptableOptions VerifierErrorCode = iota + 1

	// ErrCodeInconsistentProof means the proof shape does not match the computation
	ErrCodeInconsistentProof

	// ErrCodeInsufficientProofOfWork means the grinding nonce is invalid
	ErrCodeInsufficientProofOfWork

	// ErrCodeTraceCommitmentMismatch means an opened row is not under the trace root
	ErrCodeTraceCommitmentMismatch

	// ErrCodeTransitionConstraint means an opened step violates the transition constraints
	ErrCodeTransitionConstraint

	// ErrCodeBoundaryAssertion means an opened row violates a boundary assertion
	ErrCodeBoundaryAssertion
)

// VerifierError is returned when a proof is rejected
type VerifierError struct {
	Code    VerifierErrorCode
	Message string
	Cause   error
}

// Sentinels for errors.Is matching on the code only
var (
	ErrUnacceptableOptions      = &VerifierError{Code: ErrCodeUnacceptableOptions}
	ErrInconsistentProof        = &VerifierError{Code: ErrCodeInconsistentProof}
	ErrInsufficientProofOfWork  = &VerifierError{Code: ErrCodeInsufficientProofOfWork}
	ErrTraceCommitmentMismatch  = &VerifierError{Code: ErrCodeTraceCommitmentMismatch}
	ErrTransitionConstraint     = &VerifierError{Code: ErrCodeTransitionConstraint}
	ErrBoundaryAssertionFailure = &VerifierError{Code: ErrCodeBoundaryAssertion}
)

func verifierError(code VerifierErrorCode, cause error, format string, args ...interface{}) *VerifierError {
	return &VerifierError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error returns the error message
func (e *VerifierError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("proof verification failed [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("proof verification failed [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *VerifierError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *VerifierError) Is(target error) bool {
	t, ok := target.(*VerifierError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
