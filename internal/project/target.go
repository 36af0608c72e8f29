package project

import (
	"path/filepath"
)

// Target is where a project is generated.
type Target struct {
	// RequestedPath is the directory as given on the command line or prompt.
	RequestedPath string

	// ResolvedPath is RequestedPath made absolute against the working directory.
	ResolvedPath string
}

// ResolveTarget resolves requested against cwd.
func ResolveTarget(cwd, requested string) Target {
	resolved := requested
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(cwd, requested)
	}
	return Target{
		RequestedPath: requested,
		ResolvedPath:  filepath.Clean(resolved),
	}
}

// PackageName returns the normalized base name of the resolved directory.
func (t Target) PackageName() string {
	return Normalize(filepath.Base(t.ResolvedPath))
}

// DisplayPath is the path shown to the user in prompts and the summary.
func (t Target) DisplayPath() string {
	if t.RequestedPath == "" {
		return "."
	}
	return t.RequestedPath
}
