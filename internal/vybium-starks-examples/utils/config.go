package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/air"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/crypto"
)

// ExampleOptions selects an example and its numeric knobs.
//
// NumQueries and BlowupFactor may be left at zero, in which case the
// example's own defaults are used.
type ExampleOptions struct {
	// Example name, e.g. "mulfib2"
	Example string `yaml:"example"`

	// HashFunction name, e.g. "blake3_256"
	HashFunction string `yaml:"hash_fn"`

	// Problem size; must be a power of 2
	SequenceLength int `yaml:"sequence_length"`

	// Proof parameters
	NumQueries         int    `yaml:"num_queries"`
	BlowupFactor       int    `yaml:"blowup_factor"`
	GrindingFactor     uint32 `yaml:"grinding_factor"`
	FoldingFactor      int    `yaml:"folding_factor"`
	RemainderMaxDegree int    `yaml:"fri_remainder_max_degree"`
}

// DefaultConfig returns the default example options
func DefaultConfig() *ExampleOptions {
	return &ExampleOptions{
		Example:            "mulfib2",
		HashFunction:       crypto.Blake3_256.String(),
		SequenceLength:     1024,
		NumQueries:         0,
		BlowupFactor:       0,
		GrindingFactor:     16,
		FoldingFactor:      8,
		RemainderMaxDegree: 31,
	}
}

// LoadConfig reads YAML options from path on top of DefaultConfig
func LoadConfig(path string) (*ExampleOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks the options that are not covered by proof option bounds.
// Proof option bounds are checked when the example is constructed.
func (c *ExampleOptions) Validate() error {
	if c.Example == "" {
		return fmt.Errorf("example name must not be empty")
	}

	if _, err := crypto.ParseHashFunction(c.HashFunction); err != nil {
		return err
	}

	if !IsPowerOfTwo(c.SequenceLength) {
		return fmt.Errorf("sequence length must be a power of 2, got %d", c.SequenceLength)
	}

	if c.NumQueries < 0 || c.BlowupFactor < 0 {
		return fmt.Errorf("number of queries and blowup factor must not be negative")
	}

	return nil
}

// ToProofOptions converts the options into proof options and a hash function.
// Zero NumQueries and BlowupFactor fall back to the given defaults. The
// returned proof options are not validated.
func (c *ExampleOptions) ToProofOptions(defaultQueries, defaultBlowup int) (air.ProofOptions, crypto.HashFunction, error) {
	hashFn, err := crypto.ParseHashFunction(c.HashFunction)
	if err != nil {
		return air.ProofOptions{}, 0, err
	}

	numQueries := c.NumQueries
	if numQueries == 0 {
		numQueries = defaultQueries
	}
	blowupFactor := c.BlowupFactor
	if blowupFactor == 0 {
		blowupFactor = defaultBlowup
	}

	return air.ProofOptions{
		NumQueries:            numQueries,
		BlowupFactor:          blowupFactor,
		GrindingFactor:        c.GrindingFactor,
		FRIFoldingFactor:      c.FoldingFactor,
		FRIRemainderMaxDegree: c.RemainderMaxDegree,
	}, hashFn, nil
}

// WithExample sets the example name
func (c *ExampleOptions) WithExample(name string) *ExampleOptions {
	c.Example = name
	return c
}

// WithHashFunction sets the hash function
func (c *ExampleOptions) WithHashFunction(hashFunc string) *ExampleOptions {
	c.HashFunction = hashFunc
	return c
}

// WithSequenceLength sets the problem size
func (c *ExampleOptions) WithSequenceLength(n int) *ExampleOptions {
	c.SequenceLength = n
	return c
}

// WithNumQueries sets the number of queries
func (c *ExampleOptions) WithNumQueries(queries int) *ExampleOptions {
	c.NumQueries = queries
	return c
}

// WithBlowupFactor sets the blowup factor
func (c *ExampleOptions) WithBlowupFactor(blowup int) *ExampleOptions {
	c.BlowupFactor = blowup
	return c
}

// WithGrindingFactor sets the grinding factor
func (c *ExampleOptions) WithGrindingFactor(bits uint32) *ExampleOptions {
	c.GrindingFactor = bits
	return c
}

// WithFoldingFactor sets the FRI folding factor
func (c *ExampleOptions) WithFoldingFactor(factor int) *ExampleOptions {
	c.FoldingFactor = factor
	return c
}

// WithRemainderMaxDegree sets the FRI remainder degree
func (c *ExampleOptions) WithRemainderMaxDegree(degree int) *ExampleOptions {
	c.RemainderMaxDegree = degree
	return c
}

// Clone creates a copy of the options
func (c *ExampleOptions) Clone() *ExampleOptions {
	clone := *c
	return &clone
}
