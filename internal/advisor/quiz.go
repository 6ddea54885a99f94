package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/muhammadolammi/resumeinsight/internal/llm"
)

const DefaultQuizBatch = 5

type QuizQuestion struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"len=4,dive,required"`
	CorrectAnswer string   `json:"correct_answer" validate:"required,oneof=A B C D"`
	Explanation   string   `json:"explanation"`
}

// IsCorrect grades an answer given either as a letter ("b") or as the full
// option text ("B) A goroutine"), by its leading letter.
func (q QuizQuestion) IsCorrect(answer string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" || q.CorrectAnswer == "" {
		return false
	}
	return strings.EqualFold(answer[:1], q.CorrectAnswer[:1])
}

type quizSet struct {
	Questions []QuizQuestion `json:"questions" validate:"required,min=1,dive"`
}

// models answer "a", "A)" or "Option A"; keep just the letter
func (s *quizSet) normalize() {
	for i := range s.Questions {
		ans := strings.ToUpper(strings.TrimSpace(s.Questions[i].CorrectAnswer))
		ans = strings.TrimPrefix(ans, "OPTION ")
		if ans != "" {
			ans = ans[:1]
		}
		s.Questions[i].CorrectAnswer = ans
	}
}

// GenerateQuiz asks for n multiple-choice questions about the job description.
func GenerateQuiz(ctx context.Context, c llm.Completer, jobDescription string, n int) ([]QuizQuestion, error) {
	if err := requireText(jobDescription); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultQuizBatch
	}

	var set quizSet
	if err := completeJSON(ctx, c, quizPrompt(jobDescription, n), &set); err != nil {
		return nil, fmt.Errorf("failed to generate quiz: %w", err)
	}
	return set.Questions, nil
}

// QuizSession walks through batches of generated questions and keeps score.
// When the last question of a batch is passed a fresh batch is generated, so
// the quiz never runs out. A QuizSession is not safe for concurrent use.
type QuizSession struct {
	completer      llm.Completer
	jobDescription string
	batch          int

	questions []QuizQuestion
	current   int
	correct   int
	total     int
	graded    bool
}

func NewQuizSession(ctx context.Context, c llm.Completer, jobDescription string, batch int) (*QuizSession, error) {
	if batch <= 0 {
		batch = DefaultQuizBatch
	}
	s := &QuizSession{completer: c, jobDescription: jobDescription, batch: batch}
	if err := s.refill(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *QuizSession) refill(ctx context.Context) error {
	questions, err := GenerateQuiz(ctx, s.completer, s.jobDescription, s.batch)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return ErrNoQuizQuestion
	}
	s.questions = questions
	return nil
}

func (s *QuizSession) Current() QuizQuestion {
	return s.questions[s.current]
}

// Number is the 1-based position of the current question across batches.
func (s *QuizSession) Number() int {
	if s.graded {
		return s.total
	}
	return s.total + 1
}

// Submit grades the current question. Each question can be graded once.
func (s *QuizSession) Submit(answer string) (bool, error) {
	if s.graded {
		return false, ErrAlreadyGraded
	}
	s.graded = true
	s.total++
	ok := s.Current().IsCorrect(answer)
	if ok {
		s.correct++
	}
	return ok, nil
}

// Next moves to the following question; a skipped question counts as
// answered incorrectly. Wrapping past the batch regenerates it; if that
// fails the previous batch is reused from the start and the error returned.
func (s *QuizSession) Next(ctx context.Context) error {
	if !s.graded {
		s.total++
	}
	s.graded = false
	s.current = (s.current + 1) % len(s.questions)
	if s.current == 0 {
		return s.refill(ctx)
	}
	return nil
}

func (s *QuizSession) Score() (correct, total int) {
	return s.correct, s.total
}

func (s *QuizSession) Percent() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.correct) / float64(s.total) * 100
}

// Reset clears the score and starts over with a new batch.
func (s *QuizSession) Reset(ctx context.Context) error {
	s.current, s.correct, s.total, s.graded = 0, 0, 0, false
	return s.refill(ctx)
}
