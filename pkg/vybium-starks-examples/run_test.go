package vybiumstarksexamples

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fastConfig() *ExampleOptions {
	return DefaultConfig().WithSequenceLength(64).WithGrindingFactor(4)
}

func TestRun(t *testing.T) {
	result, err := Run(fastConfig())
	require.NoError(t, err)
	require.Equal(t, "mulfib2", result.Example)
	require.Equal(t, "blake3_256", result.HashFunction)
	require.Equal(t, 64, result.SequenceLength)
	require.Equal(t, 28, result.Options.NumQueries)
	require.Equal(t, 8, result.Options.BlowupFactor)
	require.Positive(t, result.ProofSize)
}

func TestRunErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		opts *ExampleOptions
		code ErrorCode
	}{
		{"Nil", nil, ErrInvalidConfig},
		{"EmptyExample", fastConfig().WithExample(""), ErrInvalidConfig},
		{"UnknownHash", fastConfig().WithHashFunction("md5"), ErrInvalidConfig},
		{"SequenceLength", fastConfig().WithSequenceLength(1000), ErrInvalidConfig},
		{"Grinding", fastConfig().WithGrindingFactor(40), ErrInvalidOptions},
		{"Remainder", fastConfig().WithRemainderMaxDegree(30), ErrInvalidOptions},
		{"UnknownExample", fastConfig().WithExample("rescue"), ErrConstruction},
		{"UnsupportedHash", fastConfig().WithHashFunction("tip5"), ErrConstruction},
		{"TooShort", fastConfig().WithSequenceLength(2), ErrProofGeneration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Run(tt.opts)
			require.Nil(t, result)

			var eerr *ExampleError
			require.True(t, errors.As(err, &eerr), "error = %v", err)
			require.Equal(t, tt.code, eerr.Code, "error = %v", err)
			require.ErrorIs(t, err, &ExampleError{Code: tt.code})
		})
	}
}

func TestRunInvalidOptionsCarriesProofError(t *testing.T) {
	_, err := Run(fastConfig().WithFoldingFactor(12))

	var perr *ProofError
	require.True(t, errors.As(err, &perr), "error = %v", err)
	require.EqualValues(t, 12, perr.Value)
}

func TestRunAll(t *testing.T) {
	var opts []*ExampleOptions
	for _, fn := range []HashFunction{Blake3_192, Blake3_256, Sha3_256} {
		opts = append(opts, fastConfig().WithHashFunction(fn.String()))
	}
	for _, fn := range HashFunctions() {
		opts = append(opts, fastConfig().WithExample("fib2").WithHashFunction(fn.String()))
	}

	results, err := RunAll(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, results, len(opts))
	for i, result := range results {
		require.NotNil(t, result, "result %d", i)
		require.Equal(t, opts[i].Example, result.Example)
		require.Equal(t, opts[i].HashFunction, result.HashFunction)
	}
}

func TestRunAllReportsFailure(t *testing.T) {
	opts := []*ExampleOptions{
		fastConfig(),
		fastConfig().WithHashFunction(Blake2s_256.String()),
	}

	_, err := RunAll(context.Background(), opts)
	require.Error(t, err)
	require.ErrorIs(t, err, &ExampleError{Code: ErrConstruction})
	require.Contains(t, err.Error(), "mulfib2 with blake2s_256")
}

func TestRunAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := RunAll(ctx, []*ExampleOptions{fastConfig()})
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	require.Nil(t, results[0])
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	data := []byte("example: fib2\nhash_fn: sha3_256\nsequence_length: 32\ngrinding_factor: 2\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "fib2", config.Example)
	require.Equal(t, 32, config.SequenceLength)

	_, err = Run(config)
	require.NoError(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, &ExampleError{Code: ErrInvalidConfig})
}

func TestExamples(t *testing.T) {
	require.Equal(t, []string{"mulfib2", "fib2"}, Examples())
}

func TestParseHashFunction(t *testing.T) {
	fn, err := ParseHashFunction("BLAKE3_192")
	require.NoError(t, err)
	require.Equal(t, Blake3_192, fn)

	_, err = ParseHashFunction("keccak")
	require.Error(t, err)
}
