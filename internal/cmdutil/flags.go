// Package cmdutil provides shared command utilities: flag groups, selection
// validation and exit handling.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/rapo/cli/internal/errors"
	"github.com/rapo/cli/internal/templates"
)

// SelectionFlags holds the flags that preselect a framework and template.
type SelectionFlags struct {
	Framework string
	Template  string
}

// AddTo registers the selection flags on the given cobra command.
func (f *SelectionFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Framework, "framework", "f", "",
		fmt.Sprintf("Framework to use (%s)", strings.Join(templates.FrameworkNames(), ", ")))
	cmd.Flags().StringVarP(&f.Template, "template", "t", "",
		fmt.Sprintf("Template to use (%s)", strings.Join(templates.Names(), ", ")))
}

// Resolve validates the flags against the catalog. When only --template is
// set the framework is inferred from it. Unset flags stay empty and are
// asked for interactively.
func (f *SelectionFlags) Resolve() (SelectionFlags, error) {
	out := *f

	if out.Framework != "" {
		if _, ok := templates.GetFramework(out.Framework); !ok {
			return SelectionFlags{}, &oerrors.DetailError{
				Type:    "validation failed",
				Message: fmt.Sprintf("unknown framework: %s", out.Framework),
				Hint:    fmt.Sprintf("Valid frameworks: %s", strings.Join(templates.FrameworkNames(), ", ")),
				Cause:   oerrors.ErrValidation,
			}
		}
	}

	if out.Template == "" {
		return out, nil
	}

	if !templates.IsValidTemplate(out.Template) {
		return SelectionFlags{}, &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("unknown template: %s", out.Template),
			Hint:    fmt.Sprintf("Valid templates: %s", strings.Join(templates.Names(), ", ")),
			Cause:   oerrors.ErrValidation,
		}
	}

	owner, _ := templates.FrameworkOf(out.Template)
	switch {
	case out.Framework == "":
		out.Framework = owner.Value
	case out.Framework != owner.Value:
		return SelectionFlags{}, &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("template %s does not belong to framework %s", out.Template, out.Framework),
			Hint:    fmt.Sprintf("Use --framework %s or drop --framework.", owner.Value),
			Cause:   oerrors.ErrValidation,
		}
	}

	return out, nil
}
