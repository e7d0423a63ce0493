// Package vybiumstarksexamples runs STARK example computations end to end.
//
// Every example follows the same round trip: construct, prove, verify, and
// verify again against a deliberately wrong public input. The last step must
// fail. If it does not, the proof system is unsound and the run reports
// ErrSoundness.
//
// # Quick Start
//
// Running the multiplicative Fibonacci example with default options:
//
//	result, err := vybiumstarksexamples.Run(vybiumstarksexamples.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("proof size: %d bytes\n", result.ProofSize)
//
// Running several hash backends concurrently:
//
//	var opts []*vybiumstarksexamples.ExampleOptions
//	for _, fn := range []string{"blake3_256", "sha3_256"} {
//		opts = append(opts, vybiumstarksexamples.DefaultConfig().WithHashFunction(fn))
//	}
//	results, err := vybiumstarksexamples.RunAll(ctx, opts)
//
// # Validation
//
// Proof options are checked against global bounds before any proof work
// starts. Failures surface as *ProofError values carrying the offending
// option, and assertions placed against a trace of the wrong shape surface as
// *AssertionError values. Both match their sentinels with errors.Is.
//
// # Architecture
//
// - pkg/vybium-starks-examples/: Public API (this package)
// - internal/vybium-starks-examples/: Private implementation (not importable)
//
// # References
//
// - STARK Paper: https://eprint.iacr.org/2018/046
package vybiumstarksexamples
