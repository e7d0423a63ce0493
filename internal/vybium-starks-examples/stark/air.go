package stark

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/air"
)

// AIR describes the constraints a valid execution trace of one computation
// must satisfy
type AIR interface {
	// Name identifies the computation and is bound into the transcript
	Name() string

	// Width returns the number of trace columns
	Width() int

	// EvaluateTransition evaluates the transition constraints between two
	// consecutive rows. Every returned value is zero for a valid step.
	EvaluateTransition(current, next []field.Element) []field.Element

	// Assertions returns the boundary assertions for a trace of the given
	// length proving publicInput
	Assertions(publicInput field.Element, traceLength int) []air.Assertion

	// PublicInput extracts the public input from a trace
	PublicInput(trace *ExecutionTrace) field.Element
}

// TraceBuilder executes a computation of the given size and records its trace
type TraceBuilder func(sequenceLength int) (*ExecutionTrace, error)

// Engine builds traces, proves them and verifies proofs
type Engine interface {
	BuildTrace(sequenceLength int) (*ExecutionTrace, error)
	Prove(trace *ExecutionTrace, options air.ProofOptions) (*Proof, error)
	Verify(proof *Proof, publicInput field.Element, acceptable AcceptableOptions) error
}

// AcceptableOptions is the set of proof options a verifier accepts
type AcceptableOptions struct {
	options []air.ProofOptions
}

// NewAcceptableOptions creates an option set accepting exactly the given options
func NewAcceptableOptions(options ...air.ProofOptions) AcceptableOptions {
	return AcceptableOptions{options: append([]air.ProofOptions(nil), options...)}
}

// Contains reports whether options is in the set
func (a AcceptableOptions) Contains(options air.ProofOptions) bool {
	for _, o := range a.options {
		if o.Equal(options) {
			return true
		}
	}
	return false
}

// Len returns the number of accepted option sets
func (a AcceptableOptions) Len() int {
	return len(a.options)
}
