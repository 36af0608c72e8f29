// Package fsutil provides the filesystem operations used to lay down a project.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rapo/cli/internal/output"
)

// GitDirectory is preserved by ClearDirectory.
const GitDirectory = ".git"

// IsEmptyDirectory reports whether dir is missing or has no entries.
// Hidden entries count.
func IsEmptyDirectory(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	return len(entries) == 0, nil
}

// ClearDirectory removes every immediate child of dir except .git.
// A missing dir is a no-op.
func ClearDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.Name() == GitDirectory {
			continue
		}
		target := filepath.Join(dir, e.Name())
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("removing %s: %w", target, err)
		}
		output.Debug("removed", "path", target)
	}

	return nil
}

// StripUnderscore drops a single leading "_" from a file name.
func StripUnderscore(name string) string {
	return strings.TrimPrefix(name, "_")
}

// Copy mirrors the tree rooted at root in src into dest and returns the
// created files relative to dest, slash separated.
//
// Each path segment that starts with "_" loses that prefix in dest. dest is
// created when missing; existing files are overwritten. The first failure
// aborts the copy.
func Copy(src fs.FS, root, dest string) ([]string, error) {
	var created []string
	if err := copyDir(src, root, dest, "", &created); err != nil {
		return nil, err
	}
	return created, nil
}

// CopyDir is Copy for a directory on disk.
func CopyDir(srcDir, dest string) ([]string, error) {
	return Copy(os.DirFS(srcDir), ".", dest)
}

func copyDir(src fs.FS, dir, dest, rel string, created *[]string) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dest, err)
	}

	entries, err := fs.ReadDir(src, dir)
	if err != nil {
		return fmt.Errorf("reading template directory %s: %w", dir, err)
	}

	for _, e := range entries {
		name := StripUnderscore(e.Name())
		srcPath := path.Join(dir, e.Name())
		destPath := filepath.Join(dest, name)
		relPath := path.Join(rel, name)

		if e.IsDir() {
			if err := copyDir(src, srcPath, destPath, relPath, created); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(src, srcPath, destPath, e); err != nil {
			return err
		}
		output.Debug("created file", "path", relPath)
		*created = append(*created, relPath)
	}

	return nil
}

func copyFile(src fs.FS, srcPath, destPath string, e fs.DirEntry) error {
	content, err := fs.ReadFile(src, srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}

	perm := fs.FileMode(0o644)
	if info, err := e.Info(); err == nil && info.Mode().Perm()&0o111 != 0 {
		perm = 0o755
	}

	if err := os.WriteFile(destPath, content, perm); err != nil {
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	return nil
}
