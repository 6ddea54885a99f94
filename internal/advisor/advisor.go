// Package advisor builds task prompts around resume and job description text,
// sends them to a language model and interprets the replies.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/muhammadolammi/resumeinsight/internal/llm"
)

var (
	ErrEmptyInput     = errors.New("input text is empty")
	ErrInvalidOutput  = errors.New("model output failed validation")
	ErrUnknownType    = errors.New("unknown question type")
	ErrAlreadyGraded  = errors.New("question already answered")
	ErrNoQuizQuestion = errors.New("quiz has no questions")
)

var validate = validator.New()

func requireText(fields ...string) error {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return ErrEmptyInput
		}
	}
	return nil
}

// normalizer is implemented by replies that tidy model quirks before validation.
type normalizer interface {
	normalize()
}

// completeJSON sends prompt, decodes the reply into v and validates it.
func completeJSON(ctx context.Context, c llm.Completer, prompt string, v any) error {
	response, err := c.Complete(ctx, prompt)
	if err != nil {
		return err
	}
	if err := llm.DecodeJSON(response, v); err != nil {
		return err
	}
	if n, ok := v.(normalizer); ok {
		n.normalize()
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return nil
}
