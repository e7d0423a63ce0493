package examples

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/air"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/crypto"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/stark"
)

const (
	// Fib2Name is the registry name of the Fibonacci example
	Fib2Name = "fib2"

	fib2Width          = 2
	fib2DefaultQueries = 28
	fib2DefaultBlowup  = 8
)

// Fib2Example proves the n-th Fibonacci term with two terms per row
type Fib2Example struct {
	*harness
}

// NewFib2Example creates the example. It panics if sequenceLength is not a
// power of 2.
func NewFib2Example(sequenceLength int, options air.ProofOptions, hashFn crypto.HashFunction) (*Fib2Example, error) {
	h, err := newHarness(computation{
		name:      Fib2Name,
		air:       fib2AIR{},
		builder:   buildFib2Trace,
		compute:   ComputeFibTerm,
		supported: crypto.HashFunctions(),
	}, sequenceLength, options, hashFn)
	if err != nil {
		return nil, err
	}
	return &Fib2Example{harness: h}, nil
}

// ComputeFibTerm returns term n-1 of the Fibonacci sequence starting 1, 1
func ComputeFibTerm(n int) field.Element {
	t0, t1 := field.One, field.One
	for i := 0; i < n/2-1; i++ {
		t0 = t0.Add(t1)
		t1 = t1.Add(t0)
	}
	return t1
}

func buildFib2Trace(sequenceLength int) (*stark.ExecutionTrace, error) {
	return stark.FillTrace(fib2Width, sequenceLength/2,
		func(state []field.Element) {
			state[0] = field.One
			state[1] = field.One
		},
		func(_ int, state []field.Element) {
			state[0] = state[0].Add(state[1])
			state[1] = state[1].Add(state[0])
		},
	)
}

type fib2AIR struct{}

func (fib2AIR) Name() string {
	return Fib2Name
}

func (fib2AIR) Width() int {
	return fib2Width
}

func (fib2AIR) EvaluateTransition(current, next []field.Element) []field.Element {
	return []field.Element{
		next[0].Sub(current[0].Add(current[1])),
		next[1].Sub(current[1].Add(next[0])),
	}
}

func (fib2AIR) Assertions(publicInput field.Element, traceLength int) []air.Assertion {
	return []air.Assertion{
		air.Single(0, 0, field.One),
		air.Single(1, 0, field.One),
		air.Single(1, traceLength-1, publicInput),
	}
}

func (fib2AIR) PublicInput(trace *stark.ExecutionTrace) field.Element {
	return trace.Get(1, trace.Length()-1)
}
