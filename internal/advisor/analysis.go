package advisor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muhammadolammi/resumeinsight/internal/llm"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type ResumeProfile struct {
	Contact struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Location string `json:"location"`
	} `json:"contact"`
	Summary string `json:"summary"`
	Skills  struct {
		Technical []string `json:"technical"`
		Soft      []string `json:"soft"`
	} `json:"skills"`
	Experience     []WorkEntry      `json:"experience"`
	Education      []EducationEntry `json:"education"`
	Certifications []string         `json:"certifications"`
	Projects       []Project        `json:"projects"`
}

type WorkEntry struct {
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ResumeAnalysis keeps the raw structured-profile reply alongside its decoded
// form; Profile is nil when the model did not return well-formed JSON.
type ResumeAnalysis struct {
	Profile     *ResumeProfile `json:"profile,omitempty"`
	RawProfile  string         `json:"raw_profile"`
	Suggestions string         `json:"suggestions"`
}

// AnalyzeResume requests the structured profile and the improvement
// suggestions concurrently. Either request failing fails the analysis.
func AnalyzeResume(ctx context.Context, c llm.Completer, resumeText string) (*ResumeAnalysis, error) {
	if err := requireText(resumeText); err != nil {
		return nil, err
	}

	analysis := &ResumeAnalysis{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw, err := c.Complete(gCtx, profilePrompt(resumeText))
		if err != nil {
			return fmt.Errorf("failed to parse resume: %w", err)
		}
		analysis.RawProfile = raw

		var profile ResumeProfile
		if err := llm.DecodeJSON(raw, &profile); err != nil {
			log.Debug().Err(err).Msg("resume profile is not well-formed JSON, keeping raw reply")
			return nil
		}
		analysis.Profile = &profile
		return nil
	})

	g.Go(func() error {
		suggestions, err := c.Complete(gCtx, suggestionsPrompt(resumeText))
		if err != nil {
			return fmt.Errorf("failed to get improvement suggestions: %w", err)
		}
		analysis.Suggestions = suggestions
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return analysis, nil
}

// MarshalProfile renders the decoded profile, or the raw reply if decoding failed.
func (a *ResumeAnalysis) MarshalProfile() string {
	if a.Profile == nil {
		return a.RawProfile
	}
	out, err := json.MarshalIndent(a.Profile, "", "  ")
	if err != nil {
		return a.RawProfile
	}
	return string(out)
}
