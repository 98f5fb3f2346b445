package mock

import (
	"context"

	"github.com/fwojciec/linkx"
)

var _ linkx.Prompter = (*Prompter)(nil)

// Prompter is a mock implementation of linkx.Prompter.
type Prompter struct {
	InputFn  func(ctx context.Context, message string, validate func(string) error) (string, error)
	SelectFn func(ctx context.Context, message string, options []string) (int, error)
}

func (p *Prompter) Input(ctx context.Context, message string, validate func(string) error) (string, error) {
	return p.InputFn(ctx, message, validate)
}

func (p *Prompter) Select(ctx context.Context, message string, options []string) (int, error) {
	return p.SelectFn(ctx, message, options)
}
