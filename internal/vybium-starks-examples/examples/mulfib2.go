package examples

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/air"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/crypto"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/stark"
)

const (
	// MulFib2Name is the registry name of the multiplicative Fibonacci example
	MulFib2Name = "mulfib2"

	mulFib2Width          = 2
	mulFib2DefaultQueries = 28
	mulFib2DefaultBlowup  = 8
)

// MulFib2Example proves the n-th term of the multiplicative Fibonacci
// sequence a(0) = 1, a(1) = 2, a(k+2) = a(k) * a(k+1).
// The trace holds two terms per row, so it has n/2 rows.
type MulFib2Example struct {
	*harness
}

// NewMulFib2Example creates the example. It panics if sequenceLength is not
// a power of 2.
func NewMulFib2Example(sequenceLength int, options air.ProofOptions, hashFn crypto.HashFunction) (*MulFib2Example, error) {
	h, err := newHarness(computation{
		name:    MulFib2Name,
		air:     mulFib2AIR{},
		builder: buildMulFib2Trace,
		compute: ComputeMulFibTerm,
		supported: []crypto.HashFunction{
			crypto.Blake3_192,
			crypto.Blake3_256,
			crypto.Sha3_256,
		},
	}, sequenceLength, options, hashFn)
	if err != nil {
		return nil, err
	}
	return &MulFib2Example{harness: h}, nil
}

// ComputeMulFibTerm returns term n-1 of the multiplicative Fibonacci sequence
func ComputeMulFibTerm(n int) field.Element {
	t0, t1 := field.One, field.New(2)
	for i := 0; i < n/2-1; i++ {
		t0 = t0.Mul(t1)
		t1 = t1.Mul(t0)
	}
	return t1
}

func buildMulFib2Trace(sequenceLength int) (*stark.ExecutionTrace, error) {
	return stark.FillTrace(mulFib2Width, sequenceLength/2,
		func(state []field.Element) {
			state[0] = field.One
			state[1] = field.New(2)
		},
		func(_ int, state []field.Element) {
			state[0] = state[0].Mul(state[1])
			state[1] = state[1].Mul(state[0])
		},
	)
}

type mulFib2AIR struct{}

func (mulFib2AIR) Name() string {
	return MulFib2Name
}

func (mulFib2AIR) Width() int {
	return mulFib2Width
}

func (mulFib2AIR) EvaluateTransition(current, next []field.Element) []field.Element {
	return []field.Element{
		next[0].Sub(current[0].Mul(current[1])),
		next[1].Sub(current[1].Mul(next[0])),
	}
}

func (mulFib2AIR) Assertions(publicInput field.Element, traceLength int) []air.Assertion {
	return []air.Assertion{
		air.Single(0, 0, field.One),
		air.Single(1, 0, field.New(2)),
		air.Single(1, traceLength-1, publicInput),
	}
}

func (mulFib2AIR) PublicInput(trace *stark.ExecutionTrace) field.Element {
	return trace.Get(1, trace.Length()-1)
}
