package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/muhammadolammi/resumeinsight/internal/llm"
)

type QuestionType string

const (
	QuestionGeneral     QuestionType = "general"
	QuestionTechnical   QuestionType = "technical"
	QuestionBehavioral  QuestionType = "behavioral"
	QuestionSituational QuestionType = "situational"
)

const DefaultInterviewQuestions = 5

func ParseQuestionType(s string) (QuestionType, error) {
	qt := QuestionType(strings.ToLower(strings.TrimSpace(s)))
	if qt == "" {
		return QuestionGeneral, nil
	}
	if _, ok := questionTypeFocus[qt]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return qt, nil
}

type InterviewQuestion struct {
	Question           string   `json:"question" validate:"required"`
	Reasoning          string   `json:"reasoning"`
	GoodAnswerCriteria string   `json:"good_answer_criteria"`
	FollowUps          []string `json:"follow_ups"`
}

type interviewSet struct {
	Questions []InterviewQuestion `json:"questions" validate:"required,min=1,dive"`
}

// InterviewQuestions asks for n questions of the given type about the resume.
// n <= 0 means DefaultInterviewQuestions.
func InterviewQuestions(ctx context.Context, c llm.Completer, resumeText string, qt QuestionType, n int) ([]InterviewQuestion, error) {
	if err := requireText(resumeText); err != nil {
		return nil, err
	}
	if _, ok := questionTypeFocus[qt]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, qt)
	}
	if n <= 0 {
		n = DefaultInterviewQuestions
	}

	var set interviewSet
	if err := completeJSON(ctx, c, interviewPrompt(resumeText, qt, n), &set); err != nil {
		return nil, fmt.Errorf("failed to generate interview questions: %w", err)
	}
	return set.Questions, nil
}
