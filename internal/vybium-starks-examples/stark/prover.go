package stark

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/air"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/crypto"
)

// SpotCheckEngine is a transparent STARK-style engine. It commits to the
// trace rows with a Merkle tree, grinds a proof-of-work nonce and opens a
// Fiat-Shamir selected set of transitions plus every step pinned by a single
// assertion.
//
// The proof protocol:
// 1. Seed the transcript with options, trace shape, AIR name and public input
// 2. Commit to the trace rows and absorb the root
// 3. Grind a nonce with GrindingFactor leading zero bits and absorb it
// 4. Draw NumQueries transition indices
// 5. Open rows i and i+1 for every query, and every single-assertion step
type SpotCheckEngine struct {
	air     AIR
	builder TraceBuilder
	hasher  *crypto.Hasher
}

// NewEngine creates an engine for one computation and one hash backend
func NewEngine(a AIR, builder TraceBuilder, hasher *crypto.Hasher) (*SpotCheckEngine, error) {
	if a == nil {
		return nil, fmt.Errorf("AIR cannot be nil")
	}
	if builder == nil {
		return nil, fmt.Errorf("trace builder cannot be nil")
	}
	if hasher == nil {
		return nil, fmt.Errorf("hasher cannot be nil")
	}

	return &SpotCheckEngine{
		air:     a,
		builder: builder,
		hasher:  hasher,
	}, nil
}

// HashFunction returns the hash backend of the engine
func (e *SpotCheckEngine) HashFunction() crypto.HashFunction {
	return e.hasher.Function()
}

// BuildTrace executes the computation and checks the trace shape against the AIR
func (e *SpotCheckEngine) BuildTrace(sequenceLength int) (*ExecutionTrace, error) {
	trace, err := e.builder(sequenceLength)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s trace: %w", e.air.Name(), err)
	}
	if trace.Width() != e.air.Width() {
		return nil, fmt.Errorf("trace width %d does not match AIR width %d", trace.Width(), e.air.Width())
	}
	return trace, nil
}

// Prove generates a proof for the trace
func (e *SpotCheckEngine) Prove(trace *ExecutionTrace, options air.ProofOptions) (*Proof, error) {
	if trace == nil {
		return nil, fmt.Errorf("trace cannot be nil")
	}
	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid proof options: %w", err)
	}

	width, length := trace.Width(), trace.Length()
	if width != e.air.Width() {
		return nil, fmt.Errorf("trace width %d does not match AIR width %d", width, e.air.Width())
	}
	if length < MinTraceLength {
		return nil, fmt.Errorf("trace length must be at least %d, got %d", MinTraceLength, length)
	}

	// Step 1: Register assertions against the trace
	publicInput := e.air.PublicInput(trace)
	assertions := e.air.Assertions(publicInput, length)
	for _, assertion := range assertions {
		if err := assertion.Check(width, length); err != nil {
			return nil, fmt.Errorf("assertion %s cannot be placed against the trace: %w", assertion, err)
		}
	}

	if err := e.checkTrace(trace, assertions); err != nil {
		return nil, err
	}

	// Step 2: Commit to the trace
	leaves := make([][]byte, length)
	for step := 0; step < length; step++ {
		leaves[step] = e.hasher.HashElements(trace.Row(step))
	}
	tree, err := crypto.NewMerkleTree(e.hasher, leaves)
	if err != nil {
		return nil, fmt.Errorf("failed to commit to trace: %w", err)
	}

	channel := crypto.NewChannel(e.hasher, e.transcriptSeed(options, width, length, publicInput))
	channel.Send(tree.Root())

	// Step 3: Proof of work
	nonce, ok := channel.Grind(options.GrindingFactor)
	if !ok {
		return nil, fmt.Errorf("failed to find a proof-of-work nonce for grinding factor %d", options.GrindingFactor)
	}
	channel.Send(binary.LittleEndian.AppendUint64(nil, nonce))

	// Step 4: Queries
	queries := channel.ReceiveQueryIndices(options.NumQueries, length-1)

	// Step 5: Openings
	steps := openedSteps(queries, assertions, length)
	openings := make([]RowOpening, len(steps))
	for i, step := range steps {
		path, err := tree.Prove(step)
		if err != nil {
			return nil, fmt.Errorf("failed to open row %d: %w", step, err)
		}
		openings[i] = RowOpening{
			Step:   step,
			Values: trace.Row(step),
			Path:   path,
		}
	}

	return &Proof{
		options:     options,
		traceWidth:  width,
		traceLength: length,
		traceRoot:   tree.Root(),
		powNonce:    nonce,
		openings:    openings,
	}, nil
}

// checkTrace makes sure the prover never commits to a trace that violates
// its own constraints
func (e *SpotCheckEngine) checkTrace(trace *ExecutionTrace, assertions []air.Assertion) error {
	for _, assertion := range assertions {
		for _, step := range assertion.Steps(trace.Length()) {
			expected, _ := assertion.ValueAt(step)
			if !trace.Get(assertion.Column(), step).Equal(expected) {
				return fmt.Errorf("trace does not satisfy assertion %s at step %d", assertion, step)
			}
		}
	}

	current := trace.Row(0)
	for step := 0; step < trace.Length()-1; step++ {
		next := trace.Row(step + 1)
		if !allZero(e.air.EvaluateTransition(current, next)) {
			return fmt.Errorf("trace does not satisfy transition constraints at step %d", step)
		}
		current = next
	}
	return nil
}

func (e *SpotCheckEngine) transcriptSeed(options air.ProofOptions, width, length int, publicInput field.Element) []byte {
	seed := append([]byte(e.air.Name()), options.Bytes()...)
	seed = binary.LittleEndian.AppendUint32(seed, uint32(width))
	seed = binary.LittleEndian.AppendUint32(seed, uint32(length))
	seed = binary.LittleEndian.AppendUint64(seed, publicInput.Value())
	return seed
}

// openedSteps returns the sorted, distinct steps the prover opens
func openedSteps(queries []int, assertions []air.Assertion, traceLength int) []int {
	set := make(map[int]struct{}, 2*len(queries)+len(assertions))
	for _, q := range queries {
		set[q] = struct{}{}
		set[q+1] = struct{}{}
	}
	for _, assertion := range assertions {
		if assertion.Kind() == air.KindSingle && assertion.FirstStep() < traceLength {
			set[assertion.FirstStep()] = struct{}{}
		}
	}

	steps := make([]int, 0, len(set))
	for step := range set {
		steps = append(steps, step)
	}
	sort.Ints(steps)
	return steps
}

func allZero(values []field.Element) bool {
	for _, v := range values {
		if !v.IsZero() {
			return false
		}
	}
	return true
}
