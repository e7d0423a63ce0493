package crypto

import (
	"bytes"
	"fmt"
)

// MerkleTree commits to a power-of-two number of leaf digests
type MerkleTree struct {
	hasher *Hasher
	levels [][][]byte
}

// NewMerkleTree builds a tree over already-hashed leaves
func NewMerkleTree(hasher *Hasher, leaves [][]byte) (*MerkleTree, error) {
	if len(leaves) == 0 {
		return nil, fmt.Errorf("cannot create Merkle tree with empty data")
	}
	if len(leaves)&(len(leaves)-1) != 0 {
		return nil, fmt.Errorf("number of Merkle leaves must be a power of 2, got %d", len(leaves))
	}

	levels := [][][]byte{leaves}
	currentLevel := leaves

	for len(currentLevel) > 1 {
		nextLevel := make([][]byte, len(currentLevel)/2)
		for i := range nextLevel {
			nextLevel[i] = hasher.Merge(currentLevel[2*i], currentLevel[2*i+1])
		}
		levels = append(levels, nextLevel)
		currentLevel = nextLevel
	}

	return &MerkleTree{
		hasher: hasher,
		levels: levels,
	}, nil
}

// Root returns the Merkle root
func (mt *MerkleTree) Root() []byte {
	return mt.levels[len(mt.levels)-1][0]
}

// NumLeaves returns the number of committed leaves
func (mt *MerkleTree) NumLeaves() int {
	return len(mt.levels[0])
}

// Prove returns the authentication path for the leaf at index, ordered from
// the leaf level upwards
func (mt *MerkleTree) Prove(index int) ([][]byte, error) {
	if index < 0 || index >= mt.NumLeaves() {
		return nil, fmt.Errorf("index %d out of range [0, %d)", index, mt.NumLeaves())
	}

	path := make([][]byte, 0, len(mt.levels)-1)
	currentIndex := index
	for level := 0; level < len(mt.levels)-1; level++ {
		path = append(path, mt.levels[level][currentIndex^1])
		currentIndex /= 2
	}
	return path, nil
}

// VerifyMerklePath checks that leaf sits at index under root
func VerifyMerklePath(hasher *Hasher, root, leaf []byte, index int, path [][]byte) bool {
	if index < 0 || index >= 1<<len(path) {
		return false
	}

	current := leaf
	currentIndex := index
	for _, sibling := range path {
		if currentIndex%2 == 0 {
			current = hasher.Merge(current, sibling)
		} else {
			current = hasher.Merge(sibling, current)
		}
		currentIndex /= 2
	}

	return bytes.Equal(current, root)
}
