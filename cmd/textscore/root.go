package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textscore",
		Short: "Score text on a heuristic AI-generated vs human-written scale",
		Long: `textscore extracts seven stylometric features from text (sentence length
variance, average sentence length, vocabulary diversity, repetition,
conjunction rate, punctuation density and structural complexity) and turns
them into AI-generated / human-written percentages using fixed thresholds.

The percentages are heuristic, not calibrated probabilities.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging to stderr")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file")

	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
