package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/muhammadolammi/resumeinsight/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompleter answers prompts from a queue and records what it was sent.
type fakeCompleter struct {
	mu        sync.Mutex
	responses []string
	err       error
	prompts   []string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", llm.ErrEmptyResponse
	}
	r := f.responses[0]
	f.responses = f.responses[1:]
	return r, nil
}

func quizJSON(prefix string, answers ...string) string {
	var qs []string
	for i, a := range answers {
		qs = append(qs, fmt.Sprintf(`{"question": "%s question %d", "options": ["A) one", "B) two", "C) three", "D) four"], "correct_answer": "%s", "explanation": "because"}`, prefix, i+1, a))
	}
	return "```json\n{\"questions\": [" + strings.Join(qs, ",") + "]}\n```"
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "plain", input: "Score: 85\nKeyword Match: Go", want: 85, wantOK: true},
		{name: "markdown bold", input: "**Score:** 72/100", want: 72, wantOK: true},
		{name: "bold label before colon", input: "**Score**: 85", want: 85, wantOK: true},
		{name: "bracketed", input: "Score: [85]", want: 85, wantOK: true},
		{name: "bold number", input: "Score: **85**/100", want: 85, wantOK: true},
		{name: "underscored label", input: "__Score__ = 90", want: 90, wantOK: true},
		{name: "ats prefix", input: "ATS score = 64", want: 64, wantOK: true},
		{name: "clamped", input: "Score: 140", want: 100, wantOK: true},
		{name: "missing", input: "The resume is strong overall.", wantOK: false},
		{name: "score without number", input: "score out of 100", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseScore(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreATS(t *testing.T) {
	fc := &fakeCompleter{responses: []string{"Score: 78\nStrengths:\n- Go"}}

	report, err := ScoreATS(context.Background(), fc, "resume text", "job text")
	require.NoError(t, err)
	assert.Equal(t, 78, report.Score)
	assert.True(t, report.Scored)
	assert.Contains(t, report.Analysis, "Strengths")

	require.Len(t, fc.prompts, 1)
	assert.Contains(t, fc.prompts[0], "resume text")
	assert.Contains(t, fc.prompts[0], "job text")
}

func TestScoreATS_EmptyInput(t *testing.T) {
	fc := &fakeCompleter{}
	_, err := ScoreATS(context.Background(), fc, "resume", "  ")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Empty(t, fc.prompts, "no model call on empty input")
}

func TestScoreATS_ModelError(t *testing.T) {
	boom := errors.New("rate limited")
	_, err := ScoreATS(context.Background(), &fakeCompleter{err: boom}, "r", "j")
	assert.ErrorIs(t, err, boom)
}

func TestParseQuestionType(t *testing.T) {
	qt, err := ParseQuestionType(" Technical ")
	require.NoError(t, err)
	assert.Equal(t, QuestionTechnical, qt)

	qt, err = ParseQuestionType("")
	require.NoError(t, err)
	assert.Equal(t, QuestionGeneral, qt)

	_, err = ParseQuestionType("trick")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestInterviewQuestions(t *testing.T) {
	fc := &fakeCompleter{responses: []string{`Here you go:
{"questions": [
  {"question": "Tell me about the payments API.", "reasoning": "core project", "good_answer_criteria": "metrics", "follow_ups": ["What broke?"]},
  {"question": "Why Go?", "reasoning": "stack", "good_answer_criteria": "tradeoffs", "follow_ups": []}
]}`}}

	questions, err := InterviewQuestions(context.Background(), fc, "resume text", QuestionBehavioral, 2)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "Tell me about the payments API.", questions[0].Question)
	assert.Equal(t, []string{"What broke?"}, questions[0].FollowUps)
	assert.Contains(t, fc.prompts[0], "2 behavioral interview questions")
}

func TestInterviewQuestions_InvalidOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantErr  error
	}{
		{name: "no json", response: "Sorry, I can't.", wantErr: llm.ErrNoJSON},
		{name: "empty list", response: `{"questions": []}`, wantErr: ErrInvalidOutput},
		{name: "blank question", response: `{"questions": [{"question": ""}]}`, wantErr: ErrInvalidOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeCompleter{responses: []string{tt.response}}
			_, err := InterviewQuestions(context.Background(), fc, "resume", QuestionGeneral, 0)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInterviewQuestions_UnknownType(t *testing.T) {
	_, err := InterviewQuestions(context.Background(), &fakeCompleter{}, "resume", QuestionType("riddle"), 3)
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestGenerateQuiz_NormalizesAnswers(t *testing.T) {
	fc := &fakeCompleter{responses: []string{quizJSON("go", "b)", "Option C", "d")}}

	questions, err := GenerateQuiz(context.Background(), fc, "Go developer", 3)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, "B", questions[0].CorrectAnswer)
	assert.Equal(t, "C", questions[1].CorrectAnswer)
	assert.Equal(t, "D", questions[2].CorrectAnswer)
}

func TestGenerateQuiz_RejectsBadQuestions(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "three options", response: `{"questions": [{"question": "q", "options": ["A) a", "B) b", "C) c"], "correct_answer": "A"}]}`},
		{name: "answer out of range", response: `{"questions": [{"question": "q", "options": ["A) a", "B) b", "C) c", "D) d"], "correct_answer": "E"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeCompleter{responses: []string{tt.response}}
			_, err := GenerateQuiz(context.Background(), fc, "job", 1)
			assert.ErrorIs(t, err, ErrInvalidOutput)
		})
	}
}

func TestQuizQuestion_IsCorrect(t *testing.T) {
	q := QuizQuestion{CorrectAnswer: "B"}
	assert.True(t, q.IsCorrect("B) two"))
	assert.True(t, q.IsCorrect(" b"))
	assert.False(t, q.IsCorrect("A) one"))
	assert.False(t, q.IsCorrect(""))
}

func TestQuizSession(t *testing.T) {
	ctx := context.Background()
	fc := &fakeCompleter{responses: []string{
		quizJSON("first", "A", "B"),
		quizJSON("second", "C", "D"),
	}}

	s, err := NewQuizSession(ctx, fc, "Go developer", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Number())
	assert.Equal(t, "first question 1", s.Current().Question)

	ok, err := s.Submit("A) one")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, s.Number())

	_, err = s.Submit("A) one")
	assert.ErrorIs(t, err, ErrAlreadyGraded)

	require.NoError(t, s.Next(ctx))
	assert.Equal(t, 2, s.Number())
	assert.Equal(t, "first question 2", s.Current().Question)

	// skipping counts as a wrong answer and wraps into a fresh batch
	require.NoError(t, s.Next(ctx))
	assert.Equal(t, "second question 1", s.Current().Question)
	correct, total := s.Score()
	assert.Equal(t, 1, correct)
	assert.Equal(t, 2, total)
	assert.InDelta(t, 50.0, s.Percent(), 0.001)
	assert.Len(t, fc.prompts, 2)
}

func TestQuizSession_RefillFailureKeepsBatch(t *testing.T) {
	ctx := context.Background()
	fc := &fakeCompleter{responses: []string{quizJSON("only", "A")}}

	s, err := NewQuizSession(ctx, fc, "job", 1)
	require.NoError(t, err)

	_, err = s.Submit("C")
	require.NoError(t, err)
	err = s.Next(ctx)
	require.Error(t, err)
	assert.Equal(t, "only question 1", s.Current().Question)
	assert.Equal(t, 0.0, s.Percent())
}

func TestQuizSession_Reset(t *testing.T) {
	ctx := context.Background()
	fc := &fakeCompleter{responses: []string{quizJSON("a", "A"), quizJSON("b", "B")}}

	s, err := NewQuizSession(ctx, fc, "job", 1)
	require.NoError(t, err)
	_, _ = s.Submit("A")

	require.NoError(t, s.Reset(ctx))
	correct, total := s.Score()
	assert.Zero(t, correct)
	assert.Zero(t, total)
	assert.Equal(t, "b question 1", s.Current().Question)
}

func TestNewQuizSession_EmptyJobDescription(t *testing.T) {
	_, err := NewQuizSession(context.Background(), &fakeCompleter{}, "", 3)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

// routedCompleter answers by prompt content so concurrent calls are deterministic.
type routedCompleter struct {
	profile, suggestions string
	suggestionsErr       error
}

func (r routedCompleter) Complete(_ context.Context, prompt string) (string, error) {
	if strings.Contains(prompt, "actionable advice") {
		return r.suggestions, r.suggestionsErr
	}
	return r.profile, nil
}

func TestAnalyzeResume(t *testing.T) {
	c := routedCompleter{
		profile:     `{"contact": {"name": "Jane Doe", "email": "jane@example.com"}, "skills": {"technical": ["Go"]}, "education": [{"degree": "BSc", "institution": "State", "year": "2018"}]}`,
		suggestions: "Overall Assessment: solid.",
	}

	analysis, err := AnalyzeResume(context.Background(), c, "resume text")
	require.NoError(t, err)
	require.NotNil(t, analysis.Profile)
	assert.Equal(t, "Jane Doe", analysis.Profile.Contact.Name)
	assert.Equal(t, []string{"Go"}, analysis.Profile.Skills.Technical)
	assert.Equal(t, "BSc", analysis.Profile.Education[0].Degree)
	assert.Equal(t, "Overall Assessment: solid.", analysis.Suggestions)
	assert.Contains(t, analysis.MarshalProfile(), `"name": "Jane Doe"`)
}

func TestAnalyzeResume_MalformedProfileKeepsRaw(t *testing.T) {
	c := routedCompleter{profile: "**Name:** Jane Doe", suggestions: "tips"}

	analysis, err := AnalyzeResume(context.Background(), c, "resume text")
	require.NoError(t, err)
	assert.Nil(t, analysis.Profile)
	assert.Equal(t, "**Name:** Jane Doe", analysis.RawProfile)
	assert.Equal(t, "**Name:** Jane Doe", analysis.MarshalProfile())
}

func TestAnalyzeResume_Failure(t *testing.T) {
	boom := errors.New("quota exceeded")
	c := routedCompleter{profile: "{}", suggestionsErr: boom}

	_, err := AnalyzeResume(context.Background(), c, "resume text")
	assert.ErrorIs(t, err, boom)
}
