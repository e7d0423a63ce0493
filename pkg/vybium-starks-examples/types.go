package vybiumstarksexamples

import (
	"time"

	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/air"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/crypto"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/stark"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/utils"
)

// ProofOptions are the parameters a proof is generated with
type ProofOptions = air.ProofOptions

// ProofError reports proof options outside of the global bounds
type ProofError = air.ProofError

// AssertionError reports an assertion that cannot be placed against a trace
type AssertionError = air.AssertionError

// Proof represents a proof of one example computation
type Proof = stark.Proof

// ExampleOptions selects an example and its parameters
type ExampleOptions = utils.ExampleOptions

// HashFunction selects the hash backend
type HashFunction = crypto.HashFunction

// Hash backends
const (
	Blake3_192  = crypto.Blake3_192
	Blake3_256  = crypto.Blake3_256
	Sha3_256    = crypto.Sha3_256
	Blake2s_256 = crypto.Blake2s_256
	Tip5        = crypto.Tip5
)

// RunResult describes a successful example round trip
type RunResult struct {
	// Example name
	Example string

	// Hash backend the proof was generated with
	HashFunction string

	// Problem size
	SequenceLength int

	// Options embedded in the proof
	Options ProofOptions

	// Approximate proof size in bytes
	ProofSize int

	// Time spent in each stage
	ConstructionTime time.Duration
	ProvingTime      time.Duration
	VerificationTime time.Duration
}

// DefaultConfig returns the default example options
func DefaultConfig() *ExampleOptions {
	return utils.DefaultConfig()
}

// LoadConfig reads example options from a YAML file on top of DefaultConfig
func LoadConfig(path string) (*ExampleOptions, error) {
	config, err := utils.LoadConfig(path)
	if err != nil {
		return nil, NewError(ErrInvalidConfig, "failed to load config", err)
	}
	return config, nil
}

// ParseHashFunction parses a hash backend name such as "blake3_256"
func ParseHashFunction(name string) (HashFunction, error) {
	return crypto.ParseHashFunction(name)
}

// HashFunctions returns every hash backend
func HashFunctions() []HashFunction {
	return crypto.HashFunctions()
}
