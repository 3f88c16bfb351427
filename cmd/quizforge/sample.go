package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quiz-forge/internal/domain"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the built-in sample text",
	Long: `Sample prints the fixed demonstration paragraph. Pipe it back into
generate to try the tool without a document of your own:

    quizforge sample | quizforge generate`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), domain.SampleText)
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
