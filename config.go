package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/muhammadolammi/resumeinsight/internal/document"
	"github.com/muhammadolammi/resumeinsight/internal/llm"
	"github.com/muhammadolammi/resumeinsight/internal/resumefields"
)

const defaultWorkerCount = 3

// WorkerEnv holds the settings the queue worker reads from the environment.
type WorkerEnv struct {
	DBURL        string
	RabbitMQURL  string
	R2           R2Config
	GoogleAPIKey string
	Model        string
	WorkerCount  int
	SkillsFile   string
}

// loadWorkerEnv reads the worker settings and reports every missing
// required variable at once.
func loadWorkerEnv(getenv func(string) string) (WorkerEnv, error) {
	var missing []string
	require := func(key string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}

	env := WorkerEnv{
		DBURL:       require("DB_URL"),
		RabbitMQURL: require("RABBITMQ_URL"),
		R2: R2Config{
			AccountID: require("R2_ACCOUNT_ID"),
			Bucket:    require("R2_BUCKET"),
			AccessKey: require("R2_ACCESS_KEY"),
			SecretKey: require("R2_SECRET_KEY"),
		},
		GoogleAPIKey: require("GOOGLE_API_KEY"),
		Model:        getenv("GEMINI_MODEL"),
		SkillsFile:   getenv("SKILLS_FILE"),
		WorkerCount:  defaultWorkerCount,
	}
	if len(missing) > 0 {
		return env, fmt.Errorf("empty %s in environment", strings.Join(missing, ", "))
	}

	if raw := getenv("WORKER_COUNT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return env, fmt.Errorf("WORKER_COUNT must be a positive integer, got %q", raw)
		}
		env.WorkerCount = n
	}
	return env, nil
}

func resolveAPIKey() (string, error) {
	apiKey := rootAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return "", fmt.Errorf("API key is required (set GOOGLE_API_KEY environment variable or use --api-key flag)")
	}
	return apiKey, nil
}

func resolveModel() string {
	if rootModel != "" {
		return rootModel
	}
	return os.Getenv("GEMINI_MODEL")
}

func newCompleter(ctx context.Context) (llm.Completer, error) {
	apiKey, err := resolveAPIKey()
	if err != nil {
		return nil, err
	}
	client, err := llm.NewAgentClient(ctx, llm.AgentConfig{
		APIKey: apiKey,
		Model:  resolveModel(),
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// newFieldParser uses the vocabulary file when one is given and the built-in
// skills list otherwise.
func newFieldParser(skillsFile string) (*resumefields.Parser, error) {
	if skillsFile == "" {
		return resumefields.NewParser(), nil
	}
	vocab, err := resumefields.LoadVocabulary(skillsFile)
	if err != nil {
		return nil, err
	}
	return resumefields.NewParser(resumefields.WithVocabulary(vocab)), nil
}

// readResume loads a resume file and extracts its text.
func readResume(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}
	text, err := document.ExtractFile(path, data)
	if err != nil {
		return "", err
	}
	return text, nil
}

// readJobDescription prefers inline text over a file path.
func readJobDescription(text, path string) (string, error) {
	if strings.TrimSpace(text) != "" {
		return text, nil
	}
	if path == "" {
		return "", fmt.Errorf("a job description is required (use --job or --job-text)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("job description file %s is empty", path)
	}
	return string(data), nil
}
