package air

import "fmt"

// ProofErrorKind identifies which proof option is out of bounds
type ProofErrorKind int

const (
	// QueriesNumber means NumQueries is zero, negative or not below MaxNumQueries
	QueriesNumber ProofErrorKind = iota + 1

	// BlowupFactor means the blowup factor is not a power of 2 or out of range
	BlowupFactor

	// GrindingFactor means the grinding factor exceeds MaxGrindingFactor
	GrindingFactor

	// FoldingFactor means the FRI folding factor is not a power of 2 or out of range
	FoldingFactor

	// FriRemainder means the FRI remainder degree is not 2^k-1 or too large
	FriRemainder
)

// String returns the variant name
func (k ProofErrorKind) String() string {
	switch k {
	case QueriesNumber:
		return "QueriesNumber"
	case BlowupFactor:
		return "BlowupFactor"
	case GrindingFactor:
		return "GrindingFactor"
	case FoldingFactor:
		return "FoldingFactor"
	case FriRemainder:
		return "FriRemainder"
	default:
		return fmt.Sprintf("ProofErrorKind(%d)", int(k))
	}
}

// ProofError reports a proof option outside of its global bounds.
// Value holds the offending option exactly as it was supplied.
type ProofError struct {
	Kind  ProofErrorKind
	Value int64
}

// Sentinels for errors.Is matching on the kind only
var (
	ErrQueriesNumber  = &ProofError{Kind: QueriesNumber}
	ErrBlowupFactor   = &ProofError{Kind: BlowupFactor}
	ErrGrindingFactor = &ProofError{Kind: GrindingFactor}
	ErrFoldingFactor  = &ProofError{Kind: FoldingFactor}
	ErrFriRemainder   = &ProofError{Kind: FriRemainder}
)

func newProofError(kind ProofErrorKind, value int64) *ProofError {
	return &ProofError{Kind: kind, Value: value}
}

// Error returns the error message
func (e *ProofError) Error() string {
	switch e.Kind {
	case QueriesNumber:
		return fmt.Sprintf("number of queries must be greater than 0 and smaller than %d, but %d was found",
			MaxNumQueries, e.Value)
	case BlowupFactor:
		return fmt.Sprintf("blowup factor must be a power of 2, cannot be smaller than %d and greater than %d, but %d was found",
			MinBlowupFactor, MaxBlowupFactor, e.Value)
	case GrindingFactor:
		return fmt.Sprintf("grinding factor cannot be greater than %d, but %d was found",
			MaxGrindingFactor, e.Value)
	case FoldingFactor:
		return fmt.Sprintf("FRI folding factor must be a power of 2, cannot be smaller than %d and greater than %d, but %d was found",
			FRIMinFoldingFactor, FRIMaxFoldingFactor, e.Value)
	case FriRemainder:
		return fmt.Sprintf("FRI polynomial remainder degree must be one less than a power of two and cannot be greater than %d, but %d was found",
			FRIMaxRemainderDegree, e.Value)
	default:
		return fmt.Sprintf("invalid proof options (%s: %d)", e.Kind, e.Value)
	}
}

// Is checks if the error has the same kind as the target
func (e *ProofError) Is(target error) bool {
	t, ok := target.(*ProofError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// AssertionErrorKind identifies the structural mismatch between an assertion
// and an execution trace
type AssertionErrorKind int

const (
	// TraceWidthTooShort means the trace has no column the assertion refers to
	TraceWidthTooShort AssertionErrorKind = iota + 1

	// TraceLengthNotPowerOfTwo means the trace length is not a power of 2
	TraceLengthNotPowerOfTwo

	// TraceLengthTooShort means the trace has no step the assertion refers to
	TraceLengthTooShort

	// TraceLengthNotExact means a sequence assertion implies a different trace length
	TraceLengthNotExact
)

// String returns the variant name
func (k AssertionErrorKind) String() string {
	switch k {
	case TraceWidthTooShort:
		return "TraceWidthTooShort"
	case TraceLengthNotPowerOfTwo:
		return "TraceLengthNotPowerOfTwo"
	case TraceLengthTooShort:
		return "TraceLengthTooShort"
	case TraceLengthNotExact:
		return "TraceLengthNotExact"
	default:
		return fmt.Sprintf("AssertionErrorKind(%d)", int(k))
	}
}

// AssertionError reports an assertion that is incompatible with the trace it
// is evaluated against. Expected is unused for TraceLengthNotPowerOfTwo.
type AssertionError struct {
	Kind     AssertionErrorKind
	Expected int
	Actual   int
}

// Sentinels for errors.Is matching on the kind only
var (
	ErrTraceWidthTooShort       = &AssertionError{Kind: TraceWidthTooShort}
	ErrTraceLengthNotPowerOfTwo = &AssertionError{Kind: TraceLengthNotPowerOfTwo}
	ErrTraceLengthTooShort      = &AssertionError{Kind: TraceLengthTooShort}
	ErrTraceLengthNotExact      = &AssertionError{Kind: TraceLengthNotExact}
)

// Error returns the error message
func (e *AssertionError) Error() string {
	switch e.Kind {
	case TraceWidthTooShort:
		return fmt.Sprintf("expected trace width to be at least %d, but was %d", e.Expected, e.Actual)
	case TraceLengthNotPowerOfTwo:
		return fmt.Sprintf("expected trace length to be a power of two, but was %d", e.Actual)
	case TraceLengthTooShort:
		return fmt.Sprintf("expected trace length to be at least %d, but was %d", e.Expected, e.Actual)
	case TraceLengthNotExact:
		return fmt.Sprintf("expected trace length to be exactly %d, but was %d", e.Expected, e.Actual)
	default:
		return fmt.Sprintf("invalid assertion (%s: expected %d, actual %d)", e.Kind, e.Expected, e.Actual)
	}
}

// Is checks if the error has the same kind as the target
func (e *AssertionError) Is(target error) bool {
	t, ok := target.(*AssertionError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
