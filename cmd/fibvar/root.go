package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	fSeedA  uint64
	fSeedB  uint64
	fSeedC  uint64
	fLength int
	fK      uint
)

var rootCmd = &cobra.Command{
	Use:   "fibvar",
	Short: "synthesize and check the Fibonacci-variant circuit",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&fLength, "n", 10, "sequence length (at least 4)")
	rootCmd.PersistentFlags().UintVar(&fK, "k", 8, "log2 of the number of layout rows")
	rootCmd.PersistentFlags().Uint64Var(&fSeedA, "a", 1, "first seed")
	rootCmd.PersistentFlags().Uint64Var(&fSeedB, "b", 2, "second seed")
	rootCmd.PersistentFlags().Uint64Var(&fSeedC, "c", 3, "third seed")
}
