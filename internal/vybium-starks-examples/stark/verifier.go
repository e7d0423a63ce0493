package stark

import (
	"encoding/binary"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/air"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/crypto"
)

// Verify checks a proof against a public input.
//
// Verification replays the prover's transcript:
// 1. Check the proof options against the acceptable set and the global bounds
// 2. Check the proof shape and place the AIR assertions against it
// 3. Rebuild the channel, check the proof-of-work nonce and redraw the queries
// 4. Check the opened rows are exactly the expected ones and sit under the root
// 5. Check transition constraints and assertions on the opened rows
//
// Returns nil if the proof is valid, a *VerifierError otherwise.
func (e *SpotCheckEngine) Verify(proof *Proof, publicInput field.Element, acceptable AcceptableOptions) error {
	if proof == nil {
		return verifierError(ErrCodeInconsistentProof, nil, "proof is nil")
	}

	// Step 1: Options
	options := proof.Options()
	if !acceptable.Contains(options) {
		return verifierError(ErrCodeUnacceptableOptions, nil, "%s is not an acceptable option set", options)
	}
	if err := options.Validate(); err != nil {
		return verifierError(ErrCodeUnacceptableOptions, err, "proof options are out of bounds")
	}

	// Step 2: Shape
	width, length := proof.traceWidth, proof.traceLength
	if width != e.air.Width() {
		return verifierError(ErrCodeInconsistentProof, nil, "trace width %d does not match AIR width %d", width, e.air.Width())
	}
	if err := air.CheckTraceLength(length); err != nil {
		return verifierError(ErrCodeInconsistentProof, err, "invalid trace length")
	}
	if length < MinTraceLength {
		return verifierError(ErrCodeInconsistentProof, nil, "trace length must be at least %d, got %d", MinTraceLength, length)
	}
	if len(proof.traceRoot) != e.hasher.DigestSize() {
		return verifierError(ErrCodeInconsistentProof, nil, "trace root has %d bytes, expected %d", len(proof.traceRoot), e.hasher.DigestSize())
	}

	assertions := e.air.Assertions(publicInput, length)
	for _, assertion := range assertions {
		if err := assertion.Check(width, length); err != nil {
			return verifierError(ErrCodeInconsistentProof, err, "assertion %s cannot be placed against the trace", assertion)
		}
	}

	// Step 3: Transcript
	channel := crypto.NewChannel(e.hasher, e.transcriptSeed(options, width, length, publicInput))
	channel.Send(proof.traceRoot)
	if !channel.CheckProofOfWork(proof.powNonce, options.GrindingFactor) {
		return verifierError(ErrCodeInsufficientProofOfWork, nil, "nonce %d does not meet grinding factor %d", proof.powNonce, options.GrindingFactor)
	}
	channel.Send(binary.LittleEndian.AppendUint64(nil, proof.powNonce))
	queries := channel.ReceiveQueryIndices(options.NumQueries, length-1)

	// Step 4: Openings
	expected := openedSteps(queries, assertions, length)
	if len(expected) != len(proof.openings) {
		return verifierError(ErrCodeInconsistentProof, nil, "proof opens %d rows, expected %d", len(proof.openings), len(expected))
	}

	rows := make(map[int][]field.Element, len(expected))
	for i, opening := range proof.openings {
		if opening.Step != expected[i] {
			return verifierError(ErrCodeInconsistentProof, nil, "opening %d is for step %d, expected step %d", i, opening.Step, expected[i])
		}
		if len(opening.Values) != width {
			return verifierError(ErrCodeInconsistentProof, nil, "row %d has %d values, expected %d", opening.Step, len(opening.Values), width)
		}
		leaf := e.hasher.HashElements(opening.Values)
		if !crypto.VerifyMerklePath(e.hasher, proof.traceRoot, leaf, opening.Step, opening.Path) {
			return verifierError(ErrCodeTraceCommitmentMismatch, nil, "row %d is not committed to by the trace root", opening.Step)
		}
		rows[opening.Step] = opening.Values
	}

	// Step 5: Constraints
	for _, q := range queries {
		if !allZero(e.air.EvaluateTransition(rows[q], rows[q+1])) {
			return verifierError(ErrCodeTransitionConstraint, nil, "transition from step %d to %d is invalid", q, q+1)
		}
	}

	for _, assertion := range assertions {
		for _, step := range expected {
			value, ok := assertion.ValueAt(step)
			if !ok {
				continue
			}
			if !rows[step][assertion.Column()].Equal(value) {
				return verifierError(ErrCodeBoundaryAssertion, nil, "assertion %s does not hold at step %d", assertion, step)
			}
		}
	}

	return nil
}
