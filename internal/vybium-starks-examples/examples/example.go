package examples

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/air"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/crypto"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/stark"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/utils"
)

// ErrUnsupportedHashFunction is returned when an example is constructed with
// a hash backend it does not support
var ErrUnsupportedHashFunction = errors.New("the specified hash function cannot be used with this example")

// Example is a runnable proof round trip for one computation.
//
// Verify must succeed for an honest proof and VerifyWithWrongInputs must fail
// for every valid proof. The second call is a soundness regression test.
type Example interface {
	Prove() (*stark.Proof, error)
	Verify(proof *stark.Proof) error
	VerifyWithWrongInputs(proof *stark.Proof) error
}

// computation bundles everything an example contributes to the harness
type computation struct {
	name      string
	air       stark.AIR
	builder   stark.TraceBuilder
	compute   func(sequenceLength int) field.Element
	supported []crypto.HashFunction
}

// harness implements Example on top of a stark.Engine. Instances never share
// mutable state and can be used from different goroutines.
type harness struct {
	name           string
	options        air.ProofOptions
	sequenceLength int
	hashFn         crypto.HashFunction
	result         field.Element
	engine         stark.Engine
	logger         zerolog.Logger
}

// newHarness runs the construction steps shared by every example:
// 1. Reject a sequence length that is not a power of 2 (panics)
// 2. Validate the proof options
// 3. Resolve the hash backend
// 4. Compute the expected result
func newHarness(c computation, sequenceLength int, options air.ProofOptions, hashFn crypto.HashFunction) (*harness, error) {
	if !utils.IsPowerOfTwo(sequenceLength) {
		panic(fmt.Sprintf("sequence length must be a power of 2, got %d", sequenceLength))
	}

	if err := options.Validate(); err != nil {
		return nil, err
	}

	if !supports(c.supported, hashFn) {
		return nil, ErrUnsupportedHashFunction
	}
	hasher, err := crypto.Resolve(hashFn)
	if err != nil {
		return nil, err
	}

	engine, err := stark.NewEngine(c.air, c.builder, hasher)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s engine: %w", c.name, err)
	}

	logger := log.With().
		Str("example", c.name).
		Str("hash_fn", hashFn.String()).
		Str("instance", uuid.NewString()).
		Logger()

	start := time.Now()
	result := c.compute(sequenceLength)
	logger.Debug().
		Int("sequence_length", sequenceLength).
		Uint64("result", result.Value()).
		Msg("Computed expected result, time: " + time.Since(start).String())

	return &harness{
		name:           c.name,
		options:        options,
		sequenceLength: sequenceLength,
		hashFn:         hashFn,
		result:         result,
		engine:         engine,
		logger:         logger,
	}, nil
}

func supports(supported []crypto.HashFunction, hashFn crypto.HashFunction) bool {
	for _, fn := range supported {
		if fn == hashFn {
			return true
		}
	}
	return false
}

// Name returns the example name
func (h *harness) Name() string {
	return h.name
}

// Options returns the proof options the example proves with
func (h *harness) Options() air.ProofOptions {
	return h.options
}

// SequenceLength returns the problem size
func (h *harness) SequenceLength() int {
	return h.sequenceLength
}

// HashFunction returns the hash backend
func (h *harness) HashFunction() crypto.HashFunction {
	return h.hashFn
}

// Result returns the expected output of the computation
func (h *harness) Result() field.Element {
	return h.result
}

// Prove executes the computation and generates a proof of it
func (h *harness) Prove() (*stark.Proof, error) {
	h.logger.Debug().Msg("Building execution trace")
	start := time.Now()
	trace, err := h.engine.BuildTrace(h.sequenceLength)
	if err != nil {
		return nil, err
	}
	h.logger.Debug().
		Int("trace_width", trace.Width()).
		Int("trace_length_log2", utils.Log2(trace.Length())).
		Msg("Built execution trace, time: " + time.Since(start).String())

	start = time.Now()
	proof, err := h.engine.Prove(trace, h.options)
	if err != nil {
		return nil, fmt.Errorf("failed to prove %s: %w", h.name, err)
	}
	h.logger.Debug().
		Int("proof_size", proof.Size()).
		Msg("Generated proof, time: " + time.Since(start).String())

	return proof, nil
}

// Verify checks the proof against the expected result
func (h *harness) Verify(proof *stark.Proof) error {
	return h.verify(proof, h.result)
}

// VerifyWithWrongInputs checks the proof against the expected result plus one
func (h *harness) VerifyWithWrongInputs(proof *stark.Proof) error {
	return h.verify(proof, h.result.Add(field.One))
}

func (h *harness) verify(proof *stark.Proof, publicInput field.Element) error {
	if proof == nil {
		return fmt.Errorf("proof cannot be nil")
	}
	acceptable := stark.NewAcceptableOptions(proof.Options())
	return h.engine.Verify(proof, publicInput, acceptable)
}
