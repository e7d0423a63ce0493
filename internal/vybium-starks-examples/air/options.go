package air

import (
	"encoding/binary"
	"fmt"
)

// Global bounds for proof options. They are fixed before any example is
// constructed and never change at runtime.
const (
	// MaxNumQueries is the exclusive upper bound on the number of queries
	MaxNumQueries = 255

	// MinBlowupFactor is the smallest allowed trace blowup factor
	MinBlowupFactor = 2

	// MaxBlowupFactor is the largest allowed trace blowup factor
	MaxBlowupFactor = 128

	// MaxGrindingFactor is the largest allowed proof-of-work difficulty in bits
	MaxGrindingFactor = 32

	// FRIMinFoldingFactor is the smallest allowed FRI folding factor
	FRIMinFoldingFactor = 2

	// FRIMaxFoldingFactor is the largest allowed FRI folding factor
	FRIMaxFoldingFactor = 16

	// FRIMaxRemainderDegree is the largest allowed degree of the FRI remainder polynomial
	FRIMaxRemainderDegree = 255
)

// ProofOptions contains the security parameters of a STARK proof.
//
// ProofOptions is a value type: it is copied into every prover and verifier
// that uses it and is never modified after construction.
type ProofOptions struct {
	// NumQueries is the number of queried trace positions
	NumQueries int

	// BlowupFactor is the low-degree extension rate. Must be a power of 2.
	BlowupFactor int

	// GrindingFactor is the number of leading zero bits required from the
	// proof-of-work nonce
	GrindingFactor uint32

	// FRIFoldingFactor is the per-round degree reduction in FRI. Must be a power of 2.
	FRIFoldingFactor int

	// FRIRemainderMaxDegree is the maximum degree of the last FRI layer.
	// Must be one less than a power of 2.
	FRIRemainderMaxDegree int
}

// NewProofOptions creates proof options and validates them
func NewProofOptions(numQueries, blowupFactor int, grindingFactor uint32, foldingFactor, remainderMaxDegree int) (ProofOptions, error) {
	options := ProofOptions{
		NumQueries:            numQueries,
		BlowupFactor:          blowupFactor,
		GrindingFactor:        grindingFactor,
		FRIFoldingFactor:      foldingFactor,
		FRIRemainderMaxDegree: remainderMaxDegree,
	}
	if err := options.Validate(); err != nil {
		return ProofOptions{}, err
	}
	return options, nil
}

// Validate checks the options against the global bounds.
//
// Checks run in a fixed order and only the first violation is reported:
// queries, blowup factor, grinding factor, folding factor, remainder degree.
// The returned error is always a *ProofError.
func (o ProofOptions) Validate() error {
	if o.NumQueries <= 0 || o.NumQueries >= MaxNumQueries {
		return newProofError(QueriesNumber, int64(o.NumQueries))
	}

	if !isPowerOfTwo(o.BlowupFactor) || o.BlowupFactor < MinBlowupFactor || o.BlowupFactor > MaxBlowupFactor {
		return newProofError(BlowupFactor, int64(o.BlowupFactor))
	}

	if o.GrindingFactor > MaxGrindingFactor {
		return newProofError(GrindingFactor, int64(o.GrindingFactor))
	}

	if !isPowerOfTwo(o.FRIFoldingFactor) || o.FRIFoldingFactor < FRIMinFoldingFactor || o.FRIFoldingFactor > FRIMaxFoldingFactor {
		return newProofError(FoldingFactor, int64(o.FRIFoldingFactor))
	}

	if !isPowerOfTwo(o.FRIRemainderMaxDegree+1) || o.FRIRemainderMaxDegree > FRIMaxRemainderDegree {
		return newProofError(FriRemainder, int64(o.FRIRemainderMaxDegree))
	}

	return nil
}

// Equal reports whether both option sets are identical
func (o ProofOptions) Equal(other ProofOptions) bool {
	return o == other
}

// Bytes returns the canonical encoding of the options used to seed the
// Fiat-Shamir transcript
func (o ProofOptions) Bytes() []byte {
	buf := make([]byte, 0, 5*4)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(o.NumQueries))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(o.BlowupFactor))
	buf = binary.LittleEndian.AppendUint32(buf, o.GrindingFactor)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(o.FRIFoldingFactor))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(o.FRIRemainderMaxDegree))
	return buf
}

// String returns a human-readable representation of the options
func (o ProofOptions) String() string {
	return fmt.Sprintf("ProofOptions{Queries: %d, Blowup: %dx, Grinding: %d bits, Folding: %d, Remainder: %d}",
		o.NumQueries,
		o.BlowupFactor,
		o.GrindingFactor,
		o.FRIFoldingFactor,
		o.FRIRemainderMaxDegree)
}
