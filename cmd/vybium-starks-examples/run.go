package main

import (
	"fmt"

	"github.com/spf13/cobra"

	examples "github.com/vybium/vybium-starks-examples/pkg/vybium-starks-examples"
)

var (
	fExample        string
	fSequenceLength int
	fHashFunctions  []string
	fNumQueries     int
	fBlowupFactor   int
	fGrindingFactor uint32
	fFoldingFactor  int
	fRemainder      int
	fConfig         string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "generates and verifies a proof for an example, then checks it is rejected against wrong inputs",
	RunE:  run,
}

func init() {
	defaults := examples.DefaultConfig()
	runCmd.Flags().StringVarP(&fExample, "example", "e", defaults.Example, "example to run")
	runCmd.Flags().IntVarP(&fSequenceLength, "sequence-length", "n", defaults.SequenceLength, "number of terms to compute, must be a power of 2")
	runCmd.Flags().StringSliceVar(&fHashFunctions, "hash-fn", []string{defaults.HashFunction}, "hash function, repeat to run several concurrently")
	runCmd.Flags().IntVarP(&fNumQueries, "queries", "q", 0, "number of queries, 0 for the example default")
	runCmd.Flags().IntVarP(&fBlowupFactor, "blowup", "b", 0, "blowup factor, 0 for the example default")
	runCmd.Flags().Uint32VarP(&fGrindingFactor, "grinding", "g", defaults.GrindingFactor, "proof-of-work grinding factor in bits")
	runCmd.Flags().IntVar(&fFoldingFactor, "folding", defaults.FoldingFactor, "FRI folding factor")
	runCmd.Flags().IntVar(&fRemainder, "remainder", defaults.RemainderMaxDegree, "FRI remainder max degree")
	runCmd.Flags().StringVar(&fConfig, "config", "", "YAML file with example options, overridden by explicit flags")
}

func run(cmd *cobra.Command, args []string) error {
	base, err := baseConfig(cmd)
	if err != nil {
		return err
	}

	hashFunctions := []string{base.HashFunction}
	if cmd.Flags().Changed("hash-fn") {
		hashFunctions = fHashFunctions
	}

	opts := make([]*examples.ExampleOptions, len(hashFunctions))
	for i, fn := range hashFunctions {
		opts[i] = base.Clone().WithHashFunction(fn)
	}

	results, err := examples.RunAll(cmd.Context(), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, result := range results {
		fmt.Fprintf(out, "%s (n=%d, %s): proof %d bytes, options %s\n",
			result.Example, result.SequenceLength, result.HashFunction, result.ProofSize, result.Options)
		fmt.Fprintf(out, "  construct %s, prove %s, verify %s\n",
			result.ConstructionTime, result.ProvingTime, result.VerificationTime)
	}
	return nil
}

// baseConfig loads the config file if given and applies explicit flags on top
func baseConfig(cmd *cobra.Command) (*examples.ExampleOptions, error) {
	config := examples.DefaultConfig()
	if fConfig != "" {
		loaded, err := examples.LoadConfig(fConfig)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	flags := cmd.Flags()
	if fConfig == "" || flags.Changed("example") {
		config.WithExample(fExample)
	}
	if fConfig == "" || flags.Changed("sequence-length") {
		config.WithSequenceLength(fSequenceLength)
	}
	if fConfig == "" || flags.Changed("queries") {
		config.WithNumQueries(fNumQueries)
	}
	if fConfig == "" || flags.Changed("blowup") {
		config.WithBlowupFactor(fBlowupFactor)
	}
	if fConfig == "" || flags.Changed("grinding") {
		config.WithGrindingFactor(fGrindingFactor)
	}
	if fConfig == "" || flags.Changed("folding") {
		config.WithFoldingFactor(fFoldingFactor)
	}
	if fConfig == "" || flags.Changed("remainder") {
		config.WithRemainderMaxDegree(fRemainder)
	}
	return config, nil
}
