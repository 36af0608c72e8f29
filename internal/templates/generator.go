package templates

import (
	"fmt"
	"path"

	oerrors "github.com/rapo/cli/internal/errors"
	"github.com/rapo/cli/internal/fsutil"
	"github.com/rapo/cli/internal/manifest"
	"github.com/rapo/cli/internal/output"
)

// Generator lays a template down on disk and patches its manifest.
type Generator struct {
	source *Source
	opts   GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(source *Source, opts GenerateOptions) *Generator {
	return &Generator{source: source, opts: opts}
}

// Generate copies the template into the target directory and sets the
// package.json name. The copy finishes before the manifest is touched.
func (g *Generator) Generate() (*GenerateResult, error) {
	if !g.source.Exists(g.opts.TemplateName) {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("template %q not found", g.opts.TemplateName),
			path.Join(g.source.Origin(), g.opts.TemplateName),
			"",
		)
	}

	output.Debug("generating project",
		"template", g.opts.TemplateName,
		"source", g.source.Origin(),
		"package", g.opts.PackageName,
		"target", g.opts.TargetDir)

	files, err := fsutil.Copy(g.source.FS(), g.opts.TemplateName, g.opts.TargetDir)
	if err != nil {
		return nil, fmt.Errorf("copying template: %w", err)
	}

	if err := manifest.Update(g.opts.TargetDir, g.opts.PackageName); err != nil {
		return nil, err
	}

	return &GenerateResult{
		Files:        files,
		TemplateName: g.opts.TemplateName,
		TargetDir:    g.opts.TargetDir,
	}, nil
}
