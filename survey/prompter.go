// Package survey implements linkx.Prompter with interactive terminal
// prompts from github.com/AlecAivazis/survey/v2.
package survey

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fwojciec/linkx"
)

// ErrAborted is returned when the user interrupts a prompt (Ctrl-C).
var ErrAborted = errors.New("prompt aborted")

// Ensure Prompter implements linkx.Prompter at compile time.
var _ linkx.Prompter = (*Prompter)(nil)

// Prompter asks questions on the controlling terminal.
type Prompter struct {
	// PageSize is the number of options shown at once by Select.
	PageSize int

	opts []survey.AskOpt
}

// NewPrompter creates a Prompter. The options are applied to every prompt,
// e.g. survey.WithStdio for tests or non-default terminals.
func NewPrompter(opts ...survey.AskOpt) *Prompter {
	return &Prompter{PageSize: 15, opts: opts}
}

// Input asks for a single line of text.
func (p *Prompter) Input(ctx context.Context, message string, validate func(string) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	prompt := &survey.Input{Message: message}
	opts := append([]survey.AskOpt{}, p.opts...)
	if validate != nil {
		opts = append(opts, survey.WithValidator(stringValidator(validate)))
	}
	var out string
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// Select asks the user to pick one option and returns its index.
func (p *Prompter) Select(ctx context.Context, message string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(options) == 0 {
		return 0, linkx.Errorf(linkx.EINVALID, "no options to select from")
	}
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: p.PageSize,
	}
	var out int
	if err := survey.AskOne(prompt, &out, p.opts...); err != nil {
		return 0, translateSurveyErr(err)
	}
	return out, nil
}

// stringValidator adapts a string validator to survey's answer type.
func stringValidator(fn func(string) error) survey.Validator {
	return func(ans any) error {
		s, _ := ans.(string)
		err := fn(s)
		if err != nil && linkx.ErrorCode(err) != linkx.EINTERNAL {
			return errors.New(linkx.ErrorMessage(err))
		}
		return err
	}
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
