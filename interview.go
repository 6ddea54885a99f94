package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muhammadolammi/resumeinsight/internal/advisor"
	"github.com/spf13/cobra"
)

var interviewCmd = &cobra.Command{
	Use:   "interview <resume>",
	Short: "Generate interview questions from a resume",
	Long:  "Generate general, technical, behavioral or situational interview questions tailored to the resume, with what a good answer covers and possible follow-ups.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterview,
}

var (
	interviewType  string
	interviewCount int
)

func init() {
	interviewCmd.Flags().StringVarP(&interviewType, "type", "t", "general", "Question type: general, technical, behavioral or situational")
	interviewCmd.Flags().IntVarP(&interviewCount, "count", "n", advisor.DefaultInterviewQuestions, "Number of questions")

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(cmd *cobra.Command, args []string) error {
	qt, err := advisor.ParseQuestionType(interviewType)
	if err != nil {
		return err
	}
	resumeText, err := readResume(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	completer, err := newCompleter(ctx)
	if err != nil {
		return err
	}
	questions, err := advisor.InterviewQuestions(ctx, completer, resumeText, qt, interviewCount)
	if err != nil {
		return err
	}
	printInterviewQuestions(cmd.OutOrStdout(), qt, questions)
	return nil
}

func printInterviewQuestions(out io.Writer, qt advisor.QuestionType, questions []advisor.InterviewQuestion) {
	fmt.Fprintf(out, "%s interview questions\n", strings.ToUpper(string(qt[:1]))+string(qt[1:]))
	for i, q := range questions {
		fmt.Fprintf(out, "\n%d. %s\n", i+1, q.Question)
		if q.Reasoning != "" {
			fmt.Fprintf(out, "   Why: %s\n", q.Reasoning)
		}
		if q.GoodAnswerCriteria != "" {
			fmt.Fprintf(out, "   A good answer: %s\n", q.GoodAnswerCriteria)
		}
		for _, f := range q.FollowUps {
			fmt.Fprintf(out, "   - %s\n", f)
		}
	}
}
