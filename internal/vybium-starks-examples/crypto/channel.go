package crypto

import (
	"encoding/binary"
	"math"
)

// Channel is a Fiat-Shamir transcript over one hash backend. Prover and
// verifier drive identical channels so they derive the same randomness.
type Channel struct {
	hasher  *Hasher
	state   []byte
	counter uint64
}

// NewChannel creates a channel whose state is the hash of seed
func NewChannel(hasher *Hasher, seed []byte) *Channel {
	return &Channel{
		hasher: hasher,
		state:  hasher.Hash(seed),
	}
}

// Send absorbs data into the channel state
func (c *Channel) Send(data []byte) {
	input := make([]byte, 0, len(c.state)+len(data))
	input = append(input, c.state...)
	input = append(input, data...)
	c.state = c.hasher.Hash(input)
	c.counter = 0
}

// State returns a copy of the current channel state
func (c *Channel) State() []byte {
	return append([]byte(nil), c.state...)
}

// ReceiveRandomInt draws a pseudo-random integer in [0, bound)
func (c *Channel) ReceiveRandomInt(bound uint64) uint64 {
	c.counter++
	input := binary.LittleEndian.AppendUint64(append([]byte(nil), c.state...), c.counter)
	digest := c.hasher.Hash(input)
	return binary.LittleEndian.Uint64(digest[:8]) % bound
}

// ReceiveQueryIndices draws count distinct indices in [0, domainSize).
// count is capped at domainSize.
func (c *Channel) ReceiveQueryIndices(count, domainSize int) []int {
	if count > domainSize {
		count = domainSize
	}

	seen := make(map[int]struct{}, count)
	indices := make([]int, 0, count)
	for len(indices) < count {
		index := int(c.ReceiveRandomInt(uint64(domainSize)))
		if _, ok := seen[index]; ok {
			continue
		}
		seen[index] = struct{}{}
		indices = append(indices, index)
	}
	return indices
}

// Grind searches for the smallest nonce whose proof-of-work digest has at
// least grindingFactor leading zero bits. ok is false if the search space is
// exhausted.
func (c *Channel) Grind(grindingFactor uint32) (nonce uint64, ok bool) {
	for nonce = 0; nonce < math.MaxUint64; nonce++ {
		if c.CheckProofOfWork(nonce, grindingFactor) {
			return nonce, true
		}
	}
	return 0, false
}

// CheckProofOfWork checks a nonce against the current channel state
func (c *Channel) CheckProofOfWork(nonce uint64, grindingFactor uint32) bool {
	if grindingFactor == 0 {
		return true
	}
	input := binary.LittleEndian.AppendUint64(append([]byte(nil), c.state...), nonce)
	return leadingZeroBits(c.hasher.Hash(input)) >= int(grindingFactor)
}

func leadingZeroBits(digest []byte) int {
	count := 0
	for _, b := range digest {
		if b != 0 {
			for mask := byte(0x80); mask != 0 && b&mask == 0; mask >>= 1 {
				count++
			}
			return count
		}
		count += 8
	}
	return count
}
