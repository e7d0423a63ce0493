package vybiumstarksexamples

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/air"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/examples"
)

// Examples returns the names of the runnable examples
func Examples() []string {
	return examples.Names()
}

// Run performs one full example round trip:
// 1. Validate the options and construct the example
// 2. Generate a proof
// 3. Verify the proof against the expected result
// 4. Verify the proof against a wrong result, which must fail
//
// Failures are reported as *ExampleError values whose code names the stage.
func Run(opts *ExampleOptions) (*RunResult, error) {
	if opts == nil {
		return nil, NewError(ErrInvalidConfig, "example options cannot be nil", nil)
	}
	if err := opts.Validate(); err != nil {
		return nil, NewError(ErrInvalidConfig, "invalid example options", err)
	}

	logger := log.With().
		Str("example", opts.Example).
		Str("hash_fn", opts.HashFunction).
		Int("sequence_length", opts.SequenceLength).
		Logger()

	// Step 1: Construct
	start := time.Now()
	example, err := examples.GetExample(opts)
	if err != nil {
		var perr *air.ProofError
		if errors.As(err, &perr) {
			return nil, NewError(ErrInvalidOptions, "invalid proof options", err)
		}
		return nil, NewError(ErrConstruction, "failed to construct example", err)
	}
	constructionTime := time.Since(start)

	// Step 2: Prove
	logger.Info().Msg("Generating proof")
	start = time.Now()
	proof, err := example.Prove()
	if err != nil {
		return nil, NewError(ErrProofGeneration, "failed to generate proof", err)
	}
	provingTime := time.Since(start)
	logger.Info().Int("proof_size", proof.Size()).Msg("Successfully created proof, time: " + provingTime.String())

	// Step 3: Verify
	start = time.Now()
	if err := example.Verify(proof); err != nil {
		return nil, NewError(ErrProofVerification, "failed to verify honest proof", err)
	}
	verificationTime := time.Since(start)
	logger.Info().Msg("Successfully verified proof, time: " + verificationTime.String())

	// Step 4: Soundness
	if err := example.VerifyWithWrongInputs(proof); err == nil {
		return nil, NewError(ErrSoundness, "proof verified against wrong inputs", nil)
	}
	logger.Debug().Msg("Proof rejected against wrong inputs")

	return &RunResult{
		Example:          opts.Example,
		HashFunction:     opts.HashFunction,
		SequenceLength:   opts.SequenceLength,
		Options:          proof.Options(),
		ProofSize:        proof.Size(),
		ConstructionTime: constructionTime,
		ProvingTime:      provingTime,
		VerificationTime: verificationTime,
	}, nil
}

// RunAll runs every set of options concurrently and returns the results in
// input order. The first failure is returned and stops launching new runs, as
// does cancelling ctx. Runs already started are not interrupted.
func RunAll(ctx context.Context, opts []*ExampleOptions) ([]*RunResult, error) {
	results := make([]*RunResult, len(opts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	stopped := false
	for i, o := range opts {
		if gctx.Err() != nil {
			stopped = true
			break
		}
		g.Go(func() error {
			result, err := Run(o)
			if err != nil {
				if o != nil {
					return fmt.Errorf("%s with %s: %w", o.Example, o.HashFunction, err)
				}
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if stopped {
		return results, ctx.Err()
	}
	return results, nil
}
