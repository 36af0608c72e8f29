package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rapo/cli/internal/cmdtypes"
	"github.com/rapo/cli/internal/cmdutil"
	oerrors "github.com/rapo/cli/internal/errors"
	"github.com/rapo/cli/internal/fsutil"
	"github.com/rapo/cli/internal/output"
	"github.com/rapo/cli/internal/project"
	"github.com/rapo/cli/internal/prompt"
	"github.com/rapo/cli/internal/templates"
)

// creator drives one scaffolding run.
type creator struct {
	globals   *cmdtypes.GlobalConfig
	prompter  prompt.Prompter
	selection cmdutil.SelectionFlags
	workDir   string
	stdout    io.Writer
	stderr    io.Writer
}

func runCreate(cmd *cobra.Command, args []string, globals *cmdtypes.GlobalConfig, flags *cmdutil.SelectionFlags, ro *rootOptions) error {
	selection, err := flags.Resolve()
	if err != nil {
		return err
	}

	workDir := ro.workDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
	}

	p := ro.prompter
	if p == nil {
		p = &prompt.HuhPrompter{
			Accessible: globals.Config.Accessible || !output.IsInteractive(),
		}
	}

	c := &creator{
		globals:   globals,
		prompter:  p,
		selection: selection,
		workDir:   workDir,
		stdout:    cmd.OutOrStdout(),
		stderr:    cmd.ErrOrStderr(),
	}

	var dir string
	if len(args) > 0 {
		dir = project.TrimTrailingSlashes(args[0])
	}

	return cmdutil.HandleCancel(c.stdout, c.run(cmd.Context(), dir, len(args) > 0))
}

// run performs the steps in order: directory, overwrite check, framework,
// template, copy, manifest, summary. dirGiven is false when the directory
// must be asked for.
func (c *creator) run(ctx context.Context, dir string, dirGiven bool) error {
	if !dirGiven {
		answer, err := prompt.ProjectName(ctx, c.prompter, c.globals.Config.DefaultProjectName)
		if err != nil {
			return err
		}
		name, ok := answer.Value()
		if !ok {
			return oerrors.NewCancelError("")
		}
		dir = name
	}

	target := project.ResolveTarget(c.workDir, dir)
	if target.PackageName() == "" {
		output.Warn("project name is empty after normalization", "directory", target.ResolvedPath)
	}

	if err := c.prepareTarget(ctx, target); err != nil {
		return err
	}

	templateName, err := c.chooseTemplate(ctx)
	if err != nil {
		return err
	}

	source := templates.NewSource(c.globals.TemplatesDir)
	if !source.Exists(templateName) {
		output.Debug("template directory missing", "template", templateName, "source", source.Origin())
		return oerrors.NewCancelError("Template not found")
	}

	planned, err := source.ListFiles(templateName)
	if err != nil {
		return err
	}

	gen := templates.NewGenerator(source, templates.GenerateOptions{
		TargetDir:    target.ResolvedPath,
		TemplateName: templateName,
		PackageName:  target.PackageName(),
	})

	var result *templates.GenerateResult
	err = output.RunWithSpinner(ctx, func() error {
		var genErr error
		result, genErr = gen.Generate()
		return genErr
	}, output.WithTitle(fmt.Sprintf("Copying %d template files...", len(planned))))
	if err != nil {
		return err
	}

	output.ProjectLogger(target.PackageName()).Debug("project generated",
		"template", result.TemplateName,
		"files", len(result.Files))

	if c.globals.Verbose {
		files := make(map[string]string, len(result.Files))
		for _, f := range result.Files {
			files[f] = templates.FileDescription(f)
		}
		fmt.Fprint(c.stderr, output.RenderFileTree(target.DisplayPath(), files))
	}

	fmt.Fprint(c.stdout, output.FormatSummary(target.DisplayPath(), c.nextSteps(target)))
	return nil
}

// prepareTarget asks before clearing a non-empty target directory.
func (c *creator) prepareTarget(ctx context.Context, target project.Target) error {
	empty, err := fsutil.IsEmptyDirectory(target.ResolvedPath)
	if err != nil {
		return fmt.Errorf("checking %s: %w", target.ResolvedPath, err)
	}
	if empty {
		return nil
	}

	answer, err := prompt.ConfirmOverwrite(ctx, c.prompter, target.DisplayPath())
	if err != nil {
		return err
	}
	if overwrite, ok := answer.Value(); !ok || !overwrite {
		return oerrors.NewCancelError("")
	}

	output.Debug("clearing directory", "path", target.ResolvedPath)
	if err := fsutil.ClearDirectory(target.ResolvedPath); err != nil {
		return fmt.Errorf("clearing %s: %w", target.ResolvedPath, err)
	}
	return nil
}

// chooseTemplate returns the template to generate, asking for whatever the
// flags left open.
func (c *creator) chooseTemplate(ctx context.Context) (string, error) {
	frameworkName := c.selection.Framework
	if frameworkName == "" {
		answer, err := prompt.Framework(ctx, c.prompter)
		if err != nil {
			return "", err
		}
		v, ok := answer.Value()
		if !ok {
			return "", oerrors.NewCancelError("")
		}
		frameworkName = v
	}

	framework, ok := templates.GetFramework(frameworkName)
	if !ok {
		return "", oerrors.NewCancelError("Invalid framework selected")
	}

	if c.selection.Template != "" {
		return c.selection.Template, nil
	}

	answer, err := prompt.Template(ctx, c.prompter, framework)
	if err != nil {
		return "", err
	}
	templateName, ok := answer.Value()
	if !ok {
		return "", oerrors.NewCancelError("")
	}
	return templateName, nil
}

func (c *creator) nextSteps(target project.Target) []output.NextStep {
	dir := target.DisplayPath()
	if strings.ContainsAny(dir, " \t") {
		dir = fmt.Sprintf("%q", dir)
	}

	pm := c.globals.Config.PackageManager
	return []output.NextStep{
		{Command: "cd", Arg: dir},
		{Command: pm + " install"},
		{Command: pm + " dev"},
	}
}
