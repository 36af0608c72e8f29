package prompt

import (
	"context"
	"fmt"

	"github.com/rapo/cli/internal/project"
	"github.com/rapo/cli/internal/templates"
)

// DefaultProjectName is offered when the user does not type a name.
const DefaultProjectName = "rapo-project"

// ProjectName asks for the project name and returns it normalized.
func ProjectName(ctx context.Context, p Prompter, defaultName string) (Answer[string], error) {
	if defaultName == "" {
		defaultName = DefaultProjectName
	}

	answer, err := p.Input(ctx, InputSpec{
		Title:       "What is the name of your project?",
		Placeholder: defaultName,
		Default:     defaultName,
	})
	if err != nil {
		return Cancelled[string](), err
	}

	name, ok := answer.Value()
	if !ok {
		return answer, nil
	}
	return Answered(project.Normalize(name)), nil
}

// ConfirmOverwrite asks whether a non-empty directory may be cleared.
func ConfirmOverwrite(ctx context.Context, p Prompter, dir string) (Answer[bool], error) {
	return p.Confirm(ctx, ConfirmSpec{
		Title:   fmt.Sprintf("Directory %q already exists. Overwrite?", dir),
		Default: true,
	})
}

// Framework asks for a framework family and returns its value.
func Framework(ctx context.Context, p Prompter) (Answer[string], error) {
	frameworks := templates.Frameworks()
	options := make([]templates.Option, 0, len(frameworks))
	for _, f := range frameworks {
		options = append(options, f.Option)
	}

	return p.Select(ctx, SelectSpec{
		Title:   "What framework do you want to use?",
		Options: options,
	})
}

// Template asks for one of the framework's templates and returns its value.
func Template(ctx context.Context, p Prompter, f templates.Framework) (Answer[string], error) {
	return p.Select(ctx, SelectSpec{
		Title:   "What template do you want to use?",
		Options: f.Templates,
	})
}
