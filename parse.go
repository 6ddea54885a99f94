package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume.pdf|resume.docx>",
	Short: "Extract contact details, skills, education and experience from a resume",
	Long: "Extract the text of a PDF or DOCX resume and pull out the candidate's name, email, phone, " +
		"skills from the skills vocabulary, and the sentences mentioning education or experience. " +
		"No model call is made.",
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var (
	parseSkillsFile string
	parseJSON       bool
	parseShowText   bool
)

func init() {
	parseCmd.Flags().StringVar(&parseSkillsFile, "skills", "", "YAML file with a skills: list (overrides SKILLS_FILE env var)")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print the fields as JSON")
	parseCmd.Flags().BoolVar(&parseShowText, "text", false, "Also print the extracted text")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := readResume(args[0])
	if err != nil {
		return err
	}

	skillsFile := parseSkillsFile
	if skillsFile == "" {
		skillsFile = os.Getenv("SKILLS_FILE")
	}
	parser, err := newFieldParser(skillsFile)
	if err != nil {
		return err
	}
	fields := parser.Parse(text)

	out := cmd.OutOrStdout()
	if parseJSON {
		payload := map[string]any{"fields": fields}
		if parseShowText {
			payload["text"] = text
		}
		encoded, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal fields: %w", err)
		}
		fmt.Fprintln(out, string(encoded))
		return nil
	}

	if parseShowText {
		fmt.Fprintf(out, "Extracted Text:\n%s\n\n", text)
	}
	fmt.Fprint(out, fields.String())
	return nil
}
