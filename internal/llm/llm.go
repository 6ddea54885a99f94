// Package llm is the boundary to the hosted language model. Callers depend on
// Completer; responses are free text that may or may not hold valid JSON.
package llm

import (
	"context"
	"errors"
)

var ErrEmptyResponse = errors.New("empty model response")

// Completer sends one prompt and returns the model's final text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
