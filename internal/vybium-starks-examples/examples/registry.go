package examples

import (
	"fmt"

	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/utils"
)

// Names returns the registered example names
func Names() []string {
	return []string{MulFib2Name, Fib2Name}
}

// GetExample validates opts and constructs the example it names.
// Zero NumQueries and BlowupFactor fall back to the example's defaults.
func GetExample(opts *utils.ExampleOptions) (Example, error) {
	if opts == nil {
		return nil, fmt.Errorf("example options cannot be nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid example options: %w", err)
	}

	switch opts.Example {
	case MulFib2Name:
		options, hashFn, err := opts.ToProofOptions(mulFib2DefaultQueries, mulFib2DefaultBlowup)
		if err != nil {
			return nil, err
		}
		example, err := NewMulFib2Example(opts.SequenceLength, options, hashFn)
		if err != nil {
			return nil, err
		}
		return example, nil

	case Fib2Name:
		options, hashFn, err := opts.ToProofOptions(fib2DefaultQueries, fib2DefaultBlowup)
		if err != nil {
			return nil, err
		}
		example, err := NewFib2Example(opts.SequenceLength, options, hashFn)
		if err != nil {
			return nil, err
		}
		return example, nil

	default:
		return nil, fmt.Errorf("unknown example %q, expected one of %v", opts.Example, Names())
	}
}
