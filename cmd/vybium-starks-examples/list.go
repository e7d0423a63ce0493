package main

import (
	"fmt"

	"github.com/spf13/cobra"

	examples "github.com/vybium/vybium-starks-examples/pkg/vybium-starks-examples"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "lists the available examples and hash functions",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "examples:")
		for _, name := range examples.Examples() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		fmt.Fprintln(out, "hash functions:")
		for _, fn := range examples.HashFunctions() {
			fmt.Fprintf(out, "  %s\n", fn)
		}
	},
}
