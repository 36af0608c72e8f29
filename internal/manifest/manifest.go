// Package manifest patches the package.json of a generated project.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	oerrors "github.com/rapo/cli/internal/errors"
)

// FileName is the manifest read and rewritten by Update.
const FileName = "package.json"

// ErrInvalid marks a manifest that is not a JSON object.
var ErrInvalid = errors.New("invalid manifest")

// Width 0 keeps every array element on its own line.
var prettyOptions = &pretty.Options{Indent: "  "}

// Patch sets the top-level name of a JSON object and re-indents it with two
// spaces and a trailing newline. Key order and string escapes are kept; a
// missing name is appended as the last key.
func Patch(data []byte, name string) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalid)
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrInvalid)
	}

	patched, err := sjson.SetBytes(data, "name", name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	out := bytes.TrimRight(pretty.PrettyOptions(patched, prettyOptions), "\n")
	return append(out, '\n'), nil
}

// Update sets the name field of projectPath/package.json.
//
// A missing or malformed manifest is returned as an error; the caller treats
// it as fatal.
func Update(projectPath, name string) error {
	path := filepath.Join(projectPath, FileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return oerrors.NewNotFoundError(
			fmt.Sprintf("%s not found in generated project", FileName),
			path,
			"The selected template must ship a package.json at its root.",
		)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out, err := Patch(data, name)
	if err != nil {
		return &oerrors.DetailError{
			Type:     "invalid manifest",
			Message:  fmt.Sprintf("parsing %s: %v", FileName, err),
			Location: path,
			Cause:    err,
		}
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
