package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/generator"
)

// generateOutput is the JSON shape of a CLI generation run.
type generateOutput struct {
	Assignments   []string       `json:"assignments"`
	QuizQuestions []quizQuestion `json:"quiz_questions"`
}

type quizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct"`
	Explanation  string   `json:"explanation"`
}

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate assignments and quiz questions from a document",
	Long: `Generate reads a document from the given file (or stdin when no file is
given) and prints two assignment prompts plus the generated multiple-choice
questions. Use --json for machine-readable output and --seed to make a run
reproducible.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("input text is empty")
		}

		seed := time.Now().UnixNano()
		if cmd.Flags().Changed("seed") {
			seed, _ = cmd.Flags().GetInt64("seed")
		}

		assignments, quiz := generator.Content(seed, text)

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return printJSON(cmd.OutOrStdout(), assignments, quiz)
		}
		printPlain(cmd.OutOrStdout(), assignments, quiz)
		return nil
	},
}

func init() {
	generateCmd.Flags().Int64("seed", 0, "random seed for reproducible output")
	generateCmd.Flags().Bool("json", false, "emit JSON instead of plain text")

	rootCmd.AddCommand(generateCmd)
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func printJSON(w io.Writer, assignments []string, quiz []domain.QuizQuestion) error {
	out := generateOutput{
		Assignments:   assignments,
		QuizQuestions: make([]quizQuestion, 0, len(quiz)),
	}
	for _, q := range quiz {
		out.QuizQuestions = append(out.QuizQuestions, quizQuestion{
			Question:     q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printPlain(w io.Writer, assignments []string, quiz []domain.QuizQuestion) {
	fmt.Fprintln(w, "Assignments")
	fmt.Fprintln(w, "-----------")
	for _, a := range assignments {
		fmt.Fprintln(w, a)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Quiz Questions")
	fmt.Fprintln(w, "--------------")
	for i, q := range quiz {
		fmt.Fprintf(w, "%d. %s\n", i+1, q.Question)
		for j, option := range q.Options {
			fmt.Fprintf(w, "   %c. %s\n", 'A'+j, option)
		}
		fmt.Fprintf(w, "   Answer: %c\n", 'A'+q.CorrectIndex)
		fmt.Fprintf(w, "   Explanation: %s\n", q.Explanation)
	}
}
