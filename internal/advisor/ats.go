package advisor

import (
	"context"
	"regexp"
	"strconv"

	"github.com/muhammadolammi/resumeinsight/internal/llm"
)

// ATSReport is the model's freeform match analysis plus the score parsed out
// of it. Scored is false when the reply carried no recognisable score.
type ATSReport struct {
	Score    int    `json:"score"`
	Scored   bool   `json:"scored"`
	Analysis string `json:"analysis"`
}

// matches "Score: 85", "**Score:** 85/100", "**Score**: 85", "Score: [85]", "ATS score = 72"
var scorePattern = regexp.MustCompile(`(?i)score[\s*_]*[:=]?[\s*_\[]*(\d{1,3})`)

// ParseScore finds the first score in an analysis and clamps it to 0..100.
func ParseScore(analysis string) (int, bool) {
	m := scorePattern.FindStringSubmatch(analysis)
	if m == nil {
		return 0, false
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return min(max(score, 0), 100), true
}

func ScoreATS(ctx context.Context, c llm.Completer, resumeText, jobDescription string) (*ATSReport, error) {
	if err := requireText(resumeText, jobDescription); err != nil {
		return nil, err
	}

	analysis, err := c.Complete(ctx, atsPrompt(resumeText, jobDescription))
	if err != nil {
		return nil, err
	}
	if analysis == "" {
		return nil, llm.ErrEmptyResponse
	}

	score, ok := ParseScore(analysis)
	return &ATSReport{Score: score, Scored: ok, Analysis: analysis}, nil
}
