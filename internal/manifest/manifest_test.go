package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	oerrors "github.com/rapo/cli/internal/errors"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))
	return dir
}

func readManifest(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	return string(data)
}

func TestUpdate(t *testing.T) {
	dir := writeManifest(t, `{"name":"template","version":"0.0.0","private":true,"scripts":{"dev":"vite","build":"tsc && vite build"},"files":[],"keywords":["a","b"]}`)

	require.NoError(t, Update(dir, "my-app"))

	want := `{
  "name": "my-app",
  "version": "0.0.0",
  "private": true,
  "scripts": {
    "dev": "vite",
    "build": "tsc && vite build"
  },
  "files": [],
  "keywords": [
    "a",
    "b"
  ]
}
`
	assert.Equal(t, want, readManifest(t, dir))
}

func TestUpdate_PreservesOtherFields(t *testing.T) {
	original := `{
	"version": "1.2.3",
	"name": "old",
	"dependencies": {"react": "^19.0.0"},
	"engines": {"node": ">=20"},
	"count": 3.5
}`
	dir := writeManifest(t, original)

	require.NoError(t, Update(dir, "fresh"))

	var before, after map[string]any
	require.NoError(t, json.Unmarshal([]byte(original), &before))
	require.NoError(t, json.Unmarshal([]byte(readManifest(t, dir)), &after))

	assert.Equal(t, "fresh", after["name"])
	delete(before, "name")
	delete(after, "name")
	assert.Equal(t, before, after)
}

func TestUpdate_AddsMissingName(t *testing.T) {
	dir := writeManifest(t, `{"version":"0.1.0"}`)

	require.NoError(t, Update(dir, "named"))

	var keys []string
	gjson.Parse(readManifest(t, dir)).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	assert.Equal(t, []string{"version", "name"}, keys)
}

func TestUpdate_Errors(t *testing.T) {
	t.Run("missing manifest", func(t *testing.T) {
		err := Update(t.TempDir(), "x")
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrNotFound)
	})

	tests := []struct {
		name    string
		content string
	}{
		{"malformed JSON", `{"name": `},
		{"array at top level", `["name"]`},
		{"trailing data", `{"name":"a"} {"name":"b"}`},
		{"empty file", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeManifest(t, tt.content)

			err := Update(dir, "x")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.NotErrorIs(t, err, oerrors.ErrValidation)
			assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
			assert.Contains(t, err.Error(), "parsing package.json")
			assert.Equal(t, tt.content, readManifest(t, dir), "file must be left untouched")
		})
	}
}

func TestPatch_NoHTMLEscaping(t *testing.T) {
	out, err := Patch([]byte(`{"scripts":{"build":"tsc && vite build","x":"<b>"}}`), "a<b>&c")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"name": "a<b>&c"`)
	assert.Contains(t, string(out), `"build": "tsc && vite build"`)
	assert.Contains(t, string(out), `"x": "<b>"`)
}

func TestPatch_EmptyObject(t *testing.T) {
	out, err := Patch([]byte(`{}`), "")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"\"\n}\n", string(out))
}
