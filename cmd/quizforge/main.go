// Package main is the entry point for the quizforge CLI, a terminal
// counterpart to the HTTP API: it turns a document into assignment prompts
// and quiz questions without a running server.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the quizforge CLI.
var rootCmd = &cobra.Command{
	Use:   "quizforge",
	Short: "Generate assignments and quiz questions from text",
	Long: `quizforge turns a block of free-form text into a first draft of assessment
material: two essay-style assignment prompts and a small set of multiple-choice
quiz questions. Feed it a document on stdin or as a file argument.

Generation is random by default; pass --seed for reproducible output.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
