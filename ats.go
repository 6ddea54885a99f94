package main

import (
	"fmt"

	"github.com/muhammadolammi/resumeinsight/internal/advisor"
	"github.com/spf13/cobra"
)

var atsCmd = &cobra.Command{
	Use:   "ats <resume>",
	Short: "Score a resume against a job description the way an ATS would",
	Args:  cobra.ExactArgs(1),
	RunE:  runATS,
}

var (
	atsJobFile string
	atsJobText string
)

func init() {
	atsCmd.Flags().StringVarP(&atsJobFile, "job", "j", "", "Path to the job description text file")
	atsCmd.Flags().StringVar(&atsJobText, "job-text", "", "Job description text (overrides --job)")

	rootCmd.AddCommand(atsCmd)
}

func runATS(cmd *cobra.Command, args []string) error {
	resumeText, err := readResume(args[0])
	if err != nil {
		return err
	}
	jobDescription, err := readJobDescription(atsJobText, atsJobFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	completer, err := newCompleter(ctx)
	if err != nil {
		return err
	}
	report, err := advisor.ScoreATS(ctx, completer, resumeText, jobDescription)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if report.Scored {
		fmt.Fprintf(out, "ATS Score: %d/100\n\n", report.Score)
	} else {
		fmt.Fprint(out, "ATS Score: unavailable\n\n")
	}
	fmt.Fprintln(out, report.Analysis)
	return nil
}
