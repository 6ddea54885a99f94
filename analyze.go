package main

import (
	"encoding/json"
	"fmt"

	"github.com/muhammadolammi/resumeinsight/internal/advisor"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume>",
	Short: "Parse a resume into a structured profile and suggest improvements",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var analyzeJSON bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the whole analysis as JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	resumeText, err := readResume(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	completer, err := newCompleter(ctx)
	if err != nil {
		return err
	}
	analysis, err := advisor.AnalyzeResume(ctx, completer, resumeText)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		encoded, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis: %w", err)
		}
		fmt.Fprintln(out, string(encoded))
		return nil
	}
	fmt.Fprintf(out, "Parsed Resume:\n%s\n\nImprovement Suggestions:\n%s\n", analysis.MarshalProfile(), analysis.Suggestions)
	return nil
}
