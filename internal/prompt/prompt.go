// Package prompt asks the user questions on the terminal.
//
// Every prompt returns ErrCancelled when the user presses esc or ctrl+c,
// or when the context is cancelled; callers abort without saving.
package prompt

import (
	"context"
	"errors"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("operation cancelled")

// Item is one entry of a select prompt.
type Item struct {
	Label string
	// Note is shown dimmed after the label.
	Note string
	// Disabled items are shown but cannot be chosen.
	Disabled bool
	// Selected pre-selects the item in a multi-select.
	Selected bool
}

// TextPrompt configures a single-line text question.
type TextPrompt struct {
	Label       string
	Default     string
	Placeholder string
	// Required rejects empty (all-space) answers.
	Required bool
	// Validate, when set, rejects answers it returns an error for.
	Validate func(string) error
}

// Prompter asks questions. The terminal implementation is interactive;
// tests supply scripted answers.
type Prompter interface {
	// Text asks for one line of text. Surrounding space is trimmed.
	Text(ctx context.Context, p TextPrompt) (string, error)
	// Editor asks for multi-line text, starting from initial.
	Editor(ctx context.Context, label, initial string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, label string, def bool) (bool, error)
	// Select returns the index of the chosen item.
	Select(ctx context.Context, label string, items []Item) (int, error)
	// MultiSelect returns the indices of the chosen items in list order.
	// Choosing nothing is allowed.
	MultiSelect(ctx context.Context, label string, items []Item) ([]int, error)
}

// ErrNoChoices is returned by Select when every item is disabled.
var ErrNoChoices = errors.New("nothing to choose from")

func anyEnabled(items []Item) bool {
	for _, it := range items {
		if !it.Disabled {
			return true
		}
	}
	return false
}
