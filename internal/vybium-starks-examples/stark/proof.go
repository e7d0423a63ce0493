package stark

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/air"
)

// Proof is a commitment to an execution trace together with the openings the
// verifier needs to spot-check it.
//
// The options a proof was generated with travel inside it, so a verifier can
// decide whether to accept them before doing any work.
type Proof struct {
	options     air.ProofOptions
	traceWidth  int
	traceLength int
	traceRoot   []byte
	powNonce    uint64
	openings    []RowOpening
}

// RowOpening is one committed trace row and its Merkle authentication path
type RowOpening struct {
	Step   int
	Values []field.Element
	Path   [][]byte
}

// Options returns the proof options the proof was generated with
func (p *Proof) Options() air.ProofOptions {
	return p.options
}

// TraceWidth returns the width of the proven trace
func (p *Proof) TraceWidth() int {
	return p.traceWidth
}

// TraceLength returns the length of the proven trace
func (p *Proof) TraceLength() int {
	return p.traceLength
}

// TraceRoot returns the trace commitment
func (p *Proof) TraceRoot() []byte {
	return append([]byte(nil), p.traceRoot...)
}

// NumOpenings returns the number of opened rows
func (p *Proof) NumOpenings() int {
	return len(p.openings)
}

// Size returns the approximate encoded size of the proof in bytes
func (p *Proof) Size() int {
	size := len(p.options.Bytes()) + 4 + 4 + len(p.traceRoot) + 8
	for _, opening := range p.openings {
		size += 4 + len(opening.Values)*8
		for _, node := range opening.Path {
			size += len(node)
		}
	}
	return size
}
