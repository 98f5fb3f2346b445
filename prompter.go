package linkx

import "context"

// Prompter asks the user for input in a terminal.
type Prompter interface {
	// Input asks for a line of text. The validate function, if non-nil,
	// is applied to the answer before it is accepted.
	Input(ctx context.Context, message string, validate func(string) error) (string, error)

	// Select asks the user to pick one of options and returns its index.
	Select(ctx context.Context, message string, options []string) (int, error)
}
