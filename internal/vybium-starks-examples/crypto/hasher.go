package crypto

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// HashFunction selects the hash backend used for trace commitments and the
// Fiat-Shamir transcript
type HashFunction int

const (
	// Blake3_192 is BLAKE3 truncated to 192 bits
	Blake3_192 HashFunction = iota + 1

	// Blake3_256 is BLAKE3 with 256-bit output
	Blake3_256

	// Sha3_256 is SHA3-256
	Sha3_256

	// Blake2s_256 is BLAKE2s with 256-bit output
	Blake2s_256

	// Tip5 is the field-friendly Tip5 sponge over the Goldilocks field
	Tip5
)

var hashFunctionNames = map[HashFunction]string{
	Blake3_192:  "blake3_192",
	Blake3_256:  "blake3_256",
	Sha3_256:    "sha3_256",
	Blake2s_256: "blake2s_256",
	Tip5:        "tip5",
}

// HashFunctions returns every supported hash function in declaration order
func HashFunctions() []HashFunction {
	return []HashFunction{Blake3_192, Blake3_256, Sha3_256, Blake2s_256, Tip5}
}

// String returns the configuration name of the hash function
func (h HashFunction) String() string {
	if name, ok := hashFunctionNames[h]; ok {
		return name
	}
	return fmt.Sprintf("HashFunction(%d)", int(h))
}

// ParseHashFunction parses a configuration name such as "blake3_256"
func ParseHashFunction(name string) (HashFunction, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for fn, fnName := range hashFunctionNames {
		if fnName == normalized {
			return fn, nil
		}
	}
	return 0, fmt.Errorf("unknown hash function '%s'", name)
}

// Hasher is the function table of one hash backend
type Hasher struct {
	function   HashFunction
	digestSize int
	hashBytes  func(data []byte) []byte
	hashElems  func(elems []field.Element) []byte
}

// Resolve returns the function table for a hash function
func Resolve(fn HashFunction) (*Hasher, error) {
	switch fn {
	case Blake3_192:
		return byteHasher(fn, 24, func(data []byte) []byte {
			h := blake3.Sum256(data)
			return h[:24]
		}), nil
	case Blake3_256:
		return byteHasher(fn, 32, func(data []byte) []byte {
			h := blake3.Sum256(data)
			return h[:]
		}), nil
	case Sha3_256:
		return byteHasher(fn, 32, func(data []byte) []byte {
			h := sha3.Sum256(data)
			return h[:]
		}), nil
	case Blake2s_256:
		return byteHasher(fn, 32, func(data []byte) []byte {
			h := blake2s.Sum256(data)
			return h[:]
		}), nil
	case Tip5:
		return &Hasher{
			function:   fn,
			digestSize: hash.DigestLen * 8,
			hashBytes: func(data []byte) []byte {
				return tip5Digest(bytesToElements(data))
			},
			hashElems: tip5Digest,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported hash function %s", fn)
	}
}

func byteHasher(fn HashFunction, digestSize int, h func([]byte) []byte) *Hasher {
	return &Hasher{
		function:   fn,
		digestSize: digestSize,
		hashBytes:  h,
		hashElems: func(elems []field.Element) []byte {
			return h(ElementsToBytes(elems))
		},
	}
}

// Function returns the selector this table was resolved from
func (h *Hasher) Function() HashFunction {
	return h.function
}

// DigestSize returns the digest length in bytes
func (h *Hasher) DigestSize() int {
	return h.digestSize
}

// Hash hashes arbitrary bytes
func (h *Hasher) Hash(data []byte) []byte {
	return h.hashBytes(data)
}

// HashElements hashes a slice of field elements
func (h *Hasher) HashElements(elems []field.Element) []byte {
	return h.hashElems(elems)
}

// Merge hashes two digests into their parent
func (h *Hasher) Merge(left, right []byte) []byte {
	combined := make([]byte, 0, len(left)+len(right))
	combined = append(combined, left...)
	combined = append(combined, right...)
	return h.hashBytes(combined)
}

// ElementsToBytes encodes field elements as little-endian 64-bit words
func ElementsToBytes(elems []field.Element) []byte {
	buf := make([]byte, 0, len(elems)*8)
	for _, e := range elems {
		buf = binary.LittleEndian.AppendUint64(buf, e.Value())
	}
	return buf
}

// bytesToElements packs 7 bytes per element so every chunk stays below the
// field modulus. The byte length is absorbed first to keep the encoding
// injective.
func bytesToElements(data []byte) []field.Element {
	elems := make([]field.Element, 0, len(data)/7+2)
	elems = append(elems, field.New(uint64(len(data))))
	for i := 0; i < len(data); i += 7 {
		var val uint64
		for j := 0; j < 7 && i+j < len(data); j++ {
			val |= uint64(data[i+j]) << (j * 8)
		}
		elems = append(elems, field.New(val))
	}
	return elems
}

func tip5Digest(elems []field.Element) []byte {
	digest := hash.HashVarlen(elems)
	result := make([]byte, 0, len(digest)*8)
	for _, elem := range digest {
		result = binary.LittleEndian.AppendUint64(result, elem.Value())
	}
	return result
}
