package prompt

import (
	"context"
	"fmt"
	"slices"
)

// Cancel, queued in a Script, makes the next prompt return ErrCancelled.
var Cancel = cancelAnswer{}

type cancelAnswer struct{}

// Choose answers a Select by item label.
type Choose string

// ChooseAll answers a MultiSelect by item labels.
type ChooseAll []string

// Script is a Prompter that replays queued answers. Text and Editor take a
// string, Confirm a bool, Select an int or Choose, MultiSelect an []int or
// ChooseAll. Any prompt accepts Cancel.
type Script struct {
	answers []any
	// Asked records every prompt label in order.
	Asked []string
}

// NewScript queues answers.
func NewScript(answers ...any) *Script {
	return &Script{answers: answers}
}

// Remaining is the number of unused answers.
func (s *Script) Remaining() int {
	return len(s.answers)
}

func (s *Script) next(ctx context.Context, label string) (any, error) {
	s.Asked = append(s.Asked, label)
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}
	if len(s.answers) == 0 {
		return nil, fmt.Errorf("script: no answer left for %q", label)
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	if _, ok := a.(cancelAnswer); ok {
		return nil, ErrCancelled
	}
	return a, nil
}

func mismatch(label string, a any) error {
	return fmt.Errorf("script: unexpected answer %#v for %q", a, label)
}

// Text implements Prompter.
func (s *Script) Text(ctx context.Context, p TextPrompt) (string, error) {
	a, err := s.next(ctx, p.Label)
	if err != nil {
		return "", err
	}
	v, ok := a.(string)
	if !ok {
		return "", mismatch(p.Label, a)
	}
	if v == "" {
		v = p.Default
	}
	if v == "" && p.Required {
		return "", fmt.Errorf("script: %q requires an answer", p.Label)
	}
	if p.Validate != nil {
		if err := p.Validate(v); err != nil {
			return "", fmt.Errorf("script: %q rejected %q: %w", p.Label, v, err)
		}
	}
	return v, nil
}

// Editor implements Prompter.
func (s *Script) Editor(ctx context.Context, label, initial string) (string, error) {
	a, err := s.next(ctx, label)
	if err != nil {
		return "", err
	}
	v, ok := a.(string)
	if !ok {
		return "", mismatch(label, a)
	}
	return v, nil
}

// Confirm implements Prompter.
func (s *Script) Confirm(ctx context.Context, label string, def bool) (bool, error) {
	a, err := s.next(ctx, label)
	if err != nil {
		return false, err
	}
	v, ok := a.(bool)
	if !ok {
		return false, mismatch(label, a)
	}
	return v, nil
}

func indexOf(items []Item, label string) int {
	return slices.IndexFunc(items, func(it Item) bool { return it.Label == label })
}

// Select implements Prompter.
func (s *Script) Select(ctx context.Context, label string, items []Item) (int, error) {
	if !anyEnabled(items) {
		return 0, ErrNoChoices
	}
	a, err := s.next(ctx, label)
	if err != nil {
		return 0, err
	}
	var i int
	switch v := a.(type) {
	case int:
		i = v
	case Choose:
		i = indexOf(items, string(v))
	default:
		return 0, mismatch(label, a)
	}
	if i < 0 || i >= len(items) {
		return 0, fmt.Errorf("script: %q has no item %v", label, a)
	}
	if items[i].Disabled {
		return 0, fmt.Errorf("script: %q item %q is disabled", label, items[i].Label)
	}
	return i, nil
}

// MultiSelect implements Prompter.
func (s *Script) MultiSelect(ctx context.Context, label string, items []Item) ([]int, error) {
	if len(items) == 0 {
		return nil, nil
	}
	a, err := s.next(ctx, label)
	if err != nil {
		return nil, err
	}
	var picked []int
	switch v := a.(type) {
	case []int:
		picked = slices.Clone(v)
	case ChooseAll:
		for _, l := range v {
			i := indexOf(items, l)
			if i < 0 {
				return nil, fmt.Errorf("script: %q has no item %q", label, l)
			}
			picked = append(picked, i)
		}
	default:
		return nil, mismatch(label, a)
	}
	for _, i := range picked {
		if i < 0 || i >= len(items) || items[i].Disabled {
			return nil, fmt.Errorf("script: %q cannot pick item %d", label, i)
		}
	}
	slices.Sort(picked)
	return slices.Compact(picked), nil
}
