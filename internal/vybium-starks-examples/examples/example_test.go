package examples

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/air"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/crypto"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/stark"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/utils"
)

func fastOptions() air.ProofOptions {
	return air.ProofOptions{
		NumQueries:            28,
		BlowupFactor:          8,
		GrindingFactor:        4,
		FRIFoldingFactor:      8,
		FRIRemainderMaxDegree: 31,
	}
}

func runRoundTrip(t *testing.T, example Example) {
	t.Helper()
	proof, err := example.Prove()
	require.NoError(t, err)
	require.NotNil(t, proof)

	require.NoError(t, example.Verify(proof))
	require.Error(t, example.VerifyWithWrongInputs(proof))
}

func TestComputeMulFibTerm(t *testing.T) {
	tests := []struct {
		n        int
		expected uint64
	}{
		{2, 2},
		{4, 4},
		{8, 8192},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, ComputeMulFibTerm(tt.n).Value(), "n = %d", tt.n)
	}
}

func TestComputeFibTerm(t *testing.T) {
	tests := []struct {
		n        int
		expected uint64
	}{
		{2, 1},
		{4, 3},
		{8, 21},
		{16, 987},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, ComputeFibTerm(tt.n).Value(), "n = %d", tt.n)
	}
}

func TestReferenceComputationMatchesTrace(t *testing.T) {
	for _, n := range []int{4, 64, 1024} {
		trace, err := buildMulFib2Trace(n)
		require.NoError(t, err)
		require.True(t, ComputeMulFibTerm(n).Equal(mulFib2AIR{}.PublicInput(trace)), "mulfib2 n = %d", n)

		trace, err = buildFib2Trace(n)
		require.NoError(t, err)
		require.True(t, ComputeFibTerm(n).Equal(fib2AIR{}.PublicInput(trace)), "fib2 n = %d", n)
	}
}

func TestMulFib2RoundTrip(t *testing.T) {
	for _, fn := range []crypto.HashFunction{crypto.Blake3_192, crypto.Blake3_256, crypto.Sha3_256} {
		for _, n := range []int{8, 128} {
			t.Run(fn.String(), func(t *testing.T) {
				example, err := NewMulFib2Example(n, fastOptions(), fn)
				require.NoError(t, err)
				require.Equal(t, MulFib2Name, example.Name())
				require.Equal(t, n, example.SequenceLength())
				require.Equal(t, fn, example.HashFunction())
				require.True(t, example.Options().Equal(fastOptions()))
				require.True(t, example.Result().Equal(ComputeMulFibTerm(n)))

				runRoundTrip(t, example)
			})
		}
	}
}

func TestFib2RoundTrip(t *testing.T) {
	for _, fn := range crypto.HashFunctions() {
		t.Run(fn.String(), func(t *testing.T) {
			example, err := NewFib2Example(64, fastOptions(), fn)
			require.NoError(t, err)
			runRoundTrip(t, example)
		})
	}
}

func TestExamplePanicsOnNonPowerOfTwo(t *testing.T) {
	// Invalid options too: the size check must come first
	invalid := fastOptions()
	invalid.NumQueries = 0

	require.Panics(t, func() {
		_, _ = NewMulFib2Example(7, fastOptions(), crypto.Blake3_256)
	})
	require.Panics(t, func() {
		_, _ = NewMulFib2Example(7, invalid, crypto.Blake3_256)
	})
	require.Panics(t, func() {
		_, _ = NewFib2Example(0, invalid, crypto.Tip5)
	})
}

func TestExampleRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(o *air.ProofOptions)
		expected air.ProofError
	}{
		{
			name:     "Queries",
			mutate:   func(o *air.ProofOptions) { o.NumQueries = 255 },
			expected: air.ProofError{Kind: air.QueriesNumber, Value: 255},
		},
		{
			name:     "Blowup",
			mutate:   func(o *air.ProofOptions) { o.BlowupFactor = 256 },
			expected: air.ProofError{Kind: air.BlowupFactor, Value: 256},
		},
		{
			name:     "Grinding",
			mutate:   func(o *air.ProofOptions) { o.GrindingFactor = 33 },
			expected: air.ProofError{Kind: air.GrindingFactor, Value: 33},
		},
		{
			name:     "Folding",
			mutate:   func(o *air.ProofOptions) { o.FRIFoldingFactor = 32 },
			expected: air.ProofError{Kind: air.FoldingFactor, Value: 32},
		},
		{
			name:     "Remainder",
			mutate:   func(o *air.ProofOptions) { o.FRIRemainderMaxDegree = 8 },
			expected: air.ProofError{Kind: air.FriRemainder, Value: 8},
		},
		{
			name: "QueriesBeforeBlowup",
			mutate: func(o *air.ProofOptions) {
				o.NumQueries = 0
				o.BlowupFactor = 3
			},
			expected: air.ProofError{Kind: air.QueriesNumber, Value: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := fastOptions()
			tt.mutate(&options)

			example, err := NewMulFib2Example(8, options, crypto.Blake3_256)
			require.Nil(t, example)

			var perr *air.ProofError
			require.True(t, errors.As(err, &perr), "error = %v", err)
			require.Equal(t, tt.expected, *perr)
		})
	}
}

func TestMulFib2RejectsUnsupportedHash(t *testing.T) {
	for _, fn := range []crypto.HashFunction{crypto.Blake2s_256, crypto.Tip5} {
		t.Run(fn.String(), func(t *testing.T) {
			example, err := NewMulFib2Example(8, fastOptions(), fn)
			require.Nil(t, example)
			require.ErrorIs(t, err, ErrUnsupportedHashFunction)
			require.EqualError(t, err, "the specified hash function cannot be used with this example")
		})
	}
}

func TestExampleRejectsTooShortTrace(t *testing.T) {
	// A sequence of 2 terms fits in one row, which has no transition to check
	example, err := NewMulFib2Example(2, fastOptions(), crypto.Sha3_256)
	require.NoError(t, err)

	proof, err := example.Prove()
	require.Error(t, err)
	require.Nil(t, proof)
}

func TestExampleVerifyNilProof(t *testing.T) {
	example, err := NewFib2Example(8, fastOptions(), crypto.Sha3_256)
	require.NoError(t, err)
	require.Error(t, example.Verify(nil))
	require.Error(t, example.VerifyWithWrongInputs(nil))
}

func TestExampleProofFromOtherExampleRejected(t *testing.T) {
	mulfib, err := NewMulFib2Example(16, fastOptions(), crypto.Sha3_256)
	require.NoError(t, err)
	fib, err := NewFib2Example(16, fastOptions(), crypto.Sha3_256)
	require.NoError(t, err)

	proof, err := fib.Prove()
	require.NoError(t, err)
	require.Error(t, mulfib.Verify(proof))
}

func TestExamplesConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 8)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			example, err := NewFib2Example(32<<uint(i%3), fastOptions(), crypto.HashFunctions()[i%5])
			if err != nil {
				errs <- err
				return
			}
			proof, err := example.Prove()
			if err != nil {
				errs <- err
				return
			}
			if err := example.Verify(proof); err != nil {
				errs <- err
				return
			}
			if example.VerifyWithWrongInputs(proof) == nil {
				errs <- errors.New("wrong inputs accepted")
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestGetExample(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		opts := utils.DefaultConfig().WithSequenceLength(64).WithGrindingFactor(4)
		example, err := GetExample(opts)
		require.NoError(t, err)

		mulfib, ok := example.(*MulFib2Example)
		require.True(t, ok, "example type = %T", example)
		require.Equal(t, mulFib2DefaultQueries, mulfib.Options().NumQueries)
		require.Equal(t, mulFib2DefaultBlowup, mulfib.Options().BlowupFactor)

		runRoundTrip(t, example)
	})

	t.Run("Fib2", func(t *testing.T) {
		opts := utils.DefaultConfig().
			WithExample(Fib2Name).
			WithHashFunction(crypto.Tip5.String()).
			WithSequenceLength(32).
			WithGrindingFactor(0).
			WithNumQueries(10).
			WithBlowupFactor(4)
		example, err := GetExample(opts)
		require.NoError(t, err)

		fib, ok := example.(*Fib2Example)
		require.True(t, ok, "example type = %T", example)
		require.Equal(t, 10, fib.Options().NumQueries)
		require.Equal(t, 4, fib.Options().BlowupFactor)

		runRoundTrip(t, example)
	})

	t.Run("Unknown", func(t *testing.T) {
		example, err := GetExample(utils.DefaultConfig().WithExample("rescue"))
		require.Nil(t, example)
		require.Error(t, err)
	})

	t.Run("InvalidSequenceLength", func(t *testing.T) {
		// Rejected by config validation instead of the constructor panic
		example, err := GetExample(utils.DefaultConfig().WithSequenceLength(100))
		require.Nil(t, example)
		require.Error(t, err)
	})

	t.Run("InvalidProofOptions", func(t *testing.T) {
		example, err := GetExample(utils.DefaultConfig().WithFoldingFactor(3))
		require.Nil(t, example)
		require.ErrorIs(t, err, air.ErrFoldingFactor)
	})

	t.Run("UnsupportedHash", func(t *testing.T) {
		example, err := GetExample(utils.DefaultConfig().WithHashFunction(crypto.Blake2s_256.String()))
		require.Nil(t, example)
		require.ErrorIs(t, err, ErrUnsupportedHashFunction)
	})

	t.Run("Nil", func(t *testing.T) {
		_, err := GetExample(nil)
		require.Error(t, err)
	})
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{MulFib2Name, Fib2Name}, Names())
}

func TestWrongInputIsResultPlusOne(t *testing.T) {
	example, err := NewFib2Example(16, fastOptions(), crypto.Blake3_192)
	require.NoError(t, err)

	proof, err := example.Prove()
	require.NoError(t, err)

	wrong := example.Result().Add(field.One)
	require.False(t, wrong.Equal(example.Result()))
	require.Error(t, example.engine.Verify(proof, wrong, stark.NewAcceptableOptions(proof.Options())))
}
