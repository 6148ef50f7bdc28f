package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dori/crabd/internal/ui/theme"
)

// Terminal is the interactive Prompter.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	keys   KeyMap
	styles theme.Styles
	width  int
}

// NewTerminal returns a Prompter reading keys from in and drawing on out.
func NewTerminal(in io.Reader, out io.Writer, styles theme.Styles, width int) *Terminal {
	return &Terminal{
		in:     in,
		out:    out,
		keys:   DefaultKeyMap(),
		styles: styles,
		width:  width,
	}
}

// outcome is implemented by every prompt model.
type outcome interface {
	tea.Model
	cancelled() bool
}

// base holds what every prompt model shares.
type base struct {
	keys    KeyMap
	styles  theme.Styles
	help    help.Model
	label   string
	aborted bool
	done    bool
}

func (t *Terminal) base(label string) base {
	h := help.New()
	h.Styles.ShortKey = t.styles.HelpKey
	h.Styles.ShortDesc = t.styles.HelpDesc
	return base{keys: t.keys, styles: t.styles, help: h, label: label}
}

func (b base) cancelled() bool { return b.aborted }

func (b base) helpView(bindings ...key.Binding) string {
	return b.help.ShortHelpView(bindings)
}

// answered renders the line left on screen once a prompt is finished.
func (b base) answered(answer string) string {
	if b.aborted {
		return fmt.Sprintf("%s %s\n", b.styles.Prompt.Render("? "+b.label), b.styles.Muted.Render("cancelled"))
	}
	return fmt.Sprintf("%s %s\n", b.styles.Prompt.Render("? "+b.label), b.styles.Value.Render(answer))
}

func (t *Terminal) run(ctx context.Context, m outcome) (outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}
	p := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	res, ok := final.(outcome)
	if !ok {
		return nil, fmt.Errorf("run prompt: unexpected model %T", final)
	}
	if res.cancelled() {
		return nil, ErrCancelled
	}
	return res, nil
}

// Text implements Prompter.
func (t *Terminal) Text(ctx context.Context, p TextPrompt) (string, error) {
	res, err := t.run(ctx, newTextModel(t.base(p.Label), p, t.width))
	if err != nil {
		return "", err
	}
	return res.(textModel).value, nil
}

// Editor implements Prompter.
func (t *Terminal) Editor(ctx context.Context, label, initial string) (string, error) {
	res, err := t.run(ctx, newEditorModel(t.base(label), initial, t.width))
	if err != nil {
		return "", err
	}
	return res.(editorModel).value, nil
}

// Confirm implements Prompter.
func (t *Terminal) Confirm(ctx context.Context, label string, def bool) (bool, error) {
	res, err := t.run(ctx, newConfirmModel(t.base(label), def))
	if err != nil {
		return false, err
	}
	return res.(confirmModel).value, nil
}

// Select implements Prompter.
func (t *Terminal) Select(ctx context.Context, label string, items []Item) (int, error) {
	if !anyEnabled(items) {
		return 0, ErrNoChoices
	}
	res, err := t.run(ctx, newSelectModel(t.base(label), items, false))
	if err != nil {
		return 0, err
	}
	return res.(selectModel).cursor, nil
}

// MultiSelect implements Prompter.
func (t *Terminal) MultiSelect(ctx context.Context, label string, items []Item) ([]int, error) {
	if len(items) == 0 {
		return nil, nil
	}
	res, err := t.run(ctx, newSelectModel(t.base(label), items, true))
	if err != nil {
		return nil, err
	}
	return res.(selectModel).chosen(), nil
}
