package prompt

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/rapo/cli/internal/templates"
)

// InputSpec describes a free-text question.
type InputSpec struct {
	Title       string
	Placeholder string

	// Default is returned when the user submits an empty answer.
	Default string
}

// SelectSpec describes a single-choice question.
type SelectSpec struct {
	Title   string
	Options []templates.Option
}

// ConfirmSpec describes a yes/no question.
type ConfirmSpec struct {
	Title   string
	Default bool
}

// Prompter asks questions. A cancelled prompt is reported through the
// Answer, not the error; the error is reserved for terminal failures.
type Prompter interface {
	Input(ctx context.Context, spec InputSpec) (Answer[string], error)
	Select(ctx context.Context, spec SelectSpec) (Answer[string], error)
	Confirm(ctx context.Context, spec ConfirmSpec) (Answer[bool], error)
}

// HuhPrompter asks questions on the terminal with charmbracelet/huh.
type HuhPrompter struct {
	// Accessible switches huh to line-based prompts for screen readers and
	// non-terminal input.
	Accessible bool

	// In and Out override the terminal; nil means stdin/stdout.
	In  io.Reader
	Out io.Writer
}

var _ Prompter = (*HuhPrompter)(nil)

// Input implements Prompter.
func (p *HuhPrompter) Input(ctx context.Context, spec InputSpec) (Answer[string], error) {
	var value string
	field := huh.NewInput().
		Title(spec.Title).
		Placeholder(spec.Placeholder).
		Value(&value)

	cancelled, err := p.run(ctx, field)
	if err != nil || cancelled {
		return Cancelled[string](), err
	}

	if strings.TrimSpace(value) == "" {
		value = spec.Default
	}
	return Answered(value), nil
}

// Select implements Prompter.
func (p *HuhPrompter) Select(ctx context.Context, spec SelectSpec) (Answer[string], error) {
	options := make([]huh.Option[string], 0, len(spec.Options))
	for _, o := range spec.Options {
		options = append(options, huh.NewOption(o.Label, o.Value))
	}

	var value string
	field := huh.NewSelect[string]().
		Title(spec.Title).
		Options(options...).
		Value(&value)

	cancelled, err := p.run(ctx, field)
	if err != nil || cancelled {
		return Cancelled[string](), err
	}
	return Answered(value), nil
}

// Confirm implements Prompter.
func (p *HuhPrompter) Confirm(ctx context.Context, spec ConfirmSpec) (Answer[bool], error) {
	value := spec.Default
	field := huh.NewConfirm().
		Title(spec.Title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	cancelled, err := p.run(ctx, field)
	if err != nil || cancelled {
		return Cancelled[bool](), err
	}
	return Answered(value), nil
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field) (bool, error) {
	form := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(p.Accessible).
		WithShowHelp(true)
	if p.In != nil {
		form = form.WithInput(p.In)
	}
	if p.Out != nil {
		form = form.WithOutput(p.Out)
	}

	err := form.RunWithContext(ctx)
	if isCancel(err) {
		return true, nil
	}
	return false, err
}

// isCancel reports whether err means the user backed out of a prompt.
func isCancel(err error) bool {
	return errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, io.EOF)
}
