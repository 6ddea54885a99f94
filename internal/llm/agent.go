package llm

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-pro"

const defaultInstruction = `
You are an expert career assistant working with resumes and job descriptions.
Follow the task described in each message exactly.
Base every statement only on the text you are given; never invent employers, dates,
skills or qualifications.
When a message asks for JSON, reply with a single JSON object and nothing else:
no markdown fences, no commentary before or after it.
`

type AgentConfig struct {
	APIKey      string
	Model       string
	AgentName   string
	Instruction string
	// UserID tags the throwaway sessions created per call.
	UserID string
}

// AgentClient runs prompts through an ADK llm agent backed by Gemini. Each
// call gets its own in-memory session which is deleted afterwards, so calls
// do not see each other's history.
type AgentClient struct {
	runner   *runner.Runner
	sessions session.Service
	appName  string
	userID   string
}

func NewAgentClient(ctx context.Context, cfg AgentConfig) (*AgentClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.AgentName == "" {
		cfg.AgentName = "resume_advisor"
	}
	if cfg.Instruction == "" {
		cfg.Instruction = defaultInstruction
	}
	if cfg.UserID == "" {
		cfg.UserID = "resumeinsight"
	}

	model, err := gemini.NewModel(ctx, cfg.Model, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	advisor, err := llmagent.New(llmagent.Config{
		Name:        cfg.AgentName,
		Model:       model,
		Description: "Analyze resumes and job descriptions",
		Instruction: cfg.Instruction,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	sessions := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        advisor.Name(),
		Agent:          advisor,
		SessionService: sessions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	return &AgentClient{
		runner:   r,
		sessions: sessions,
		appName:  advisor.Name(),
		userID:   cfg.UserID,
	}, nil
}

func (c *AgentClient) Complete(ctx context.Context, prompt string) (string, error) {
	created, err := c.sessions.Create(ctx, &session.CreateRequest{
		AppName:   c.appName,
		UserID:    c.userID,
		SessionID: uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	sess := created.Session
	defer func() {
		err := c.sessions.Delete(context.WithoutCancel(ctx), &session.DeleteRequest{
			AppName:   sess.AppName(),
			UserID:    sess.UserID(),
			SessionID: sess.ID(),
		})
		if err != nil {
			log.Warn().Err(err).Str("session_id", sess.ID()).Msg("failed to delete agent session")
		}
	}()

	stream := c.runner.Run(ctx, sess.UserID(), sess.ID(), &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}, agent.RunConfig{})

	var output string
	for event, err := range stream {
		if err != nil {
			return "", fmt.Errorf("agent stream error: %w", err)
		}
		if event != nil && event.IsFinalResponse() && event.Content != nil && len(event.Content.Parts) > 0 {
			output = event.Content.Parts[0].Text
		}
	}
	if output == "" {
		return "", ErrEmptyResponse
	}
	return output, nil
}
