// Package main provides the resumeinsight command line and queue worker.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/muhammadolammi/resumeinsight/internal/logger"
	"github.com/spf13/cobra"
)

var (
	rootAPIKey    string
	rootModel     string
	rootLogLevel  string
	rootLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "resumeinsight",
	Short: "Resume text extraction, field parsing and AI-assisted review",
	Long: "resumeinsight extracts text from PDF and DOCX resumes, pulls out contact details, skills, " +
		"education and experience, and uses Gemini to score resumes against job descriptions, " +
		"generate interview questions and quizzes, and suggest improvements. " +
		"The worker command runs the same operations for jobs queued on RabbitMQ.",
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cfg := logger.ConfigFromEnv()
		if rootLogLevel != "" {
			cfg.Level = rootLogLevel
		}
		if rootLogFormat != "" {
			cfg.Format = rootLogFormat
		}
		logger.Init(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootAPIKey, "api-key", "", "Gemini API key (overrides GOOGLE_API_KEY env var)")
	rootCmd.PersistentFlags().StringVar(&rootModel, "model", "", "Gemini model (overrides GEMINI_MODEL env var)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "", "Log format: json or pretty (overrides LOG_FORMAT)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
