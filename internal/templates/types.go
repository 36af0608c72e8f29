// Package templates holds the template catalog, the bundled template trees
// and the generator that lays a template down on disk.
package templates

// Option is a selectable catalog entry.
type Option struct {
	// Label is shown in prompts.
	Label string

	// Value identifies the entry; for templates it is also the directory name.
	Value string
}

// Framework is a framework family and the templates it offers.
type Framework struct {
	Option

	// Templates are the concrete templates, in prompt order.
	Templates []Option
}

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// TargetDir is the absolute directory to generate into.
	TargetDir string

	// TemplateName is the template value, e.g. "vanilla-library".
	TemplateName string

	// PackageName is written to package.json's name field.
	PackageName string
}

// GenerateResult contains the result of project generation.
type GenerateResult struct {
	// Files is the list of files created, relative to TargetDir.
	Files []string

	// TemplateName is the template that was used.
	TemplateName string

	// TargetDir is the directory where files were created.
	TargetDir string
}
