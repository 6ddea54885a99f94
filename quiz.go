package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muhammadolammi/resumeinsight/internal/advisor"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Practice with multiple-choice questions generated from a job description",
	Long: "Run an interactive quiz on the skills a job description asks for. Answer with A-D, " +
		"press n for the next question, r to restart with a fresh score, or q to quit. " +
		"A skipped question counts as answered incorrectly.",
	Args: cobra.NoArgs,
	RunE: runQuiz,
}

var (
	quizJobFile string
	quizJobText string
	quizBatch   int
)

func init() {
	quizCmd.Flags().StringVarP(&quizJobFile, "job", "j", "", "Path to the job description text file")
	quizCmd.Flags().StringVar(&quizJobText, "job-text", "", "Job description text (overrides --job)")
	quizCmd.Flags().IntVarP(&quizBatch, "batch", "b", advisor.DefaultQuizBatch, "Questions generated per batch")

	rootCmd.AddCommand(quizCmd)
}

func runQuiz(cmd *cobra.Command, _ []string) error {
	jobDescription, err := readJobDescription(quizJobText, quizJobFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	completer, err := newCompleter(ctx)
	if err != nil {
		return err
	}
	session, err := advisor.NewQuizSession(ctx, completer, jobDescription, quizBatch)
	if err != nil {
		return err
	}
	return quizLoop(ctx, session, cmd.InOrStdin(), cmd.OutOrStdout())
}

func printQuizQuestion(out io.Writer, number int, q advisor.QuizQuestion) {
	fmt.Fprintf(out, "\nQuestion %d: %s\n", number, q.Question)
	for _, opt := range q.Options {
		fmt.Fprintf(out, "  %s\n", opt)
	}
}

func printQuizScore(out io.Writer, s *advisor.QuizSession) {
	correct, total := s.Score()
	fmt.Fprintf(out, "Score: %d/%d (%.1f%%)\n", correct, total, s.Percent())
}

// quizLoop reads one command per line until q or end of input.
func quizLoop(ctx context.Context, s *advisor.QuizSession, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	show := true
	for {
		if show {
			printQuizQuestion(out, s.Number(), s.Current())
			show = false
		}
		fmt.Fprint(out, "Answer (A-D), n = next, r = restart, q = quit: ")
		if !scanner.Scan() {
			break
		}

		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch input {
		case "q", "quit":
			fmt.Fprintln(out)
			printQuizScore(out, s)
			return nil
		case "n", "next":
			if err := s.Next(ctx); err != nil {
				fmt.Fprintf(out, "Could not generate new questions, repeating this set: %v\n", err)
			}
			show = true
		case "r", "restart":
			if err := s.Reset(ctx); err != nil {
				return fmt.Errorf("failed to restart quiz: %w", err)
			}
			fmt.Fprintln(out, "Quiz restarted.")
			show = true
		case "a", "b", "c", "d":
			ok, err := s.Submit(input)
			if errors.Is(err, advisor.ErrAlreadyGraded) {
				fmt.Fprintln(out, "Already answered. Press n for the next question.")
				continue
			}
			if err != nil {
				return err
			}
			q := s.Current()
			if ok {
				fmt.Fprintln(out, "Correct!")
			} else {
				fmt.Fprintf(out, "Incorrect. The correct answer is %s.\n", q.CorrectAnswer)
			}
			if q.Explanation != "" {
				fmt.Fprintf(out, "Explanation: %s\n", q.Explanation)
			}
			printQuizScore(out, s)
		default:
			fmt.Fprintln(out, "Please enter A, B, C or D.")
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	fmt.Fprintln(out)
	printQuizScore(out, s)
	return nil
}
