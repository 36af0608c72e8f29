package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/rapo/cli/internal/fsutil"
)

//go:embed all:templates
var bundledFS embed.FS

// EmbeddedOrigin is reported by Source.Origin for the bundled templates.
const EmbeddedOrigin = "embedded"

// Source is a tree of template directories, one per template value.
type Source struct {
	fsys   fs.FS
	origin string
}

// Embedded returns the templates compiled into the binary.
func Embedded() *Source {
	sub, err := fs.Sub(bundledFS, "templates")
	if err != nil {
		panic(fmt.Sprintf("templates: bundled tree: %v", err))
	}
	return &Source{fsys: sub, origin: EmbeddedOrigin}
}

// FromDir returns templates read from dir on disk, laid out as dir/<template>.
func FromDir(dir string) *Source {
	return &Source{fsys: os.DirFS(dir), origin: dir}
}

// NewSource resolves a templates directory; empty means Embedded.
func NewSource(dir string) *Source {
	if dir == "" {
		return Embedded()
	}
	return FromDir(dir)
}

// FS returns the underlying filesystem.
func (s *Source) FS() fs.FS {
	return s.fsys
}

// Origin describes where templates are read from.
func (s *Source) Origin() string {
	return s.origin
}

// Exists reports whether a directory for the template is present.
func (s *Source) Exists(name string) bool {
	if name == "" || strings.Contains(name, "/") || !fs.ValidPath(name) {
		return false
	}
	info, err := fs.Stat(s.fsys, name)
	return err == nil && info.IsDir()
}

// ListFiles returns the files a template will create, relative to the project
// root, with leading underscores already stripped from every segment.
func (s *Source) ListFiles(name string) ([]string, error) {
	if !s.Exists(name) {
		return nil, fmt.Errorf("template %q not found in %s: %w", name, s.origin, fs.ErrNotExist)
	}

	var files []string
	err := fs.WalkDir(s.fsys, name, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, name+"/")
		segments := strings.Split(rel, "/")
		for i, seg := range segments {
			segments[i] = fsutil.StripUnderscore(seg)
		}
		files = append(files, path.Join(segments...))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing template %s: %w", name, err)
	}

	return files, nil
}
