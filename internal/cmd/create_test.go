package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapo/cli/internal/config"
	oerrors "github.com/rapo/cli/internal/errors"
	"github.com/rapo/cli/internal/manifest"
	"github.com/rapo/cli/internal/prompt"
	"github.com/rapo/cli/internal/prompt/prompttest"
	"github.com/rapo/cli/internal/testutil"
)

// isolate points HOME at a temp dir, clears RAPO_* variables and returns a
// working directory for the run.
func isolate(t *testing.T) string {
	t.Helper()

	testutil.Setenv(t, map[string]string{
		"HOME":                       t.TempDir(),
		config.EnvConfig:             "",
		config.EnvTemplatesDir:       "",
		config.EnvPackageManager:     "",
		config.EnvDefaultProjectName: "",
		config.EnvAccessible:         "",
	})
	return t.TempDir()
}

func execute(t *testing.T, p prompt.Prompter, workDir string, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCmd(WithPrompter(p), WithWorkDir(workDir))
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func packageName(t *testing.T, dir string) string {
	t.Helper()

	name, _ := testutil.ReadJSON(t, filepath.Join(dir, "package.json"))["name"].(string)
	return name
}

func requireCancelled(t *testing.T, err error) {
	t.Helper()

	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, oerrors.ExitSuccess, exitErr.Code)
	assert.True(t, exitErr.Printed)
	assert.ErrorIs(t, err, oerrors.ErrCancelled)
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "create-rapo [directory]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"framework", "template", "templates-dir", "init-config", "force", "print-config", "version"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	for _, name := range []string{"config", "verbose", "timestamps"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestCreate_PromptedName(t *testing.T) {
	workDir := isolate(t)
	p := prompttest.New(
		prompttest.Text("My App"),
		prompttest.Choose("react"),
		prompttest.Choose("react-basic-mantine"),
	)

	stdout, _, err := execute(t, p, workDir)
	require.NoError(t, err)
	assert.Zero(t, p.Remaining())

	projectDir := filepath.Join(workDir, "my-app")
	assert.Equal(t, "my-app", packageName(t, projectDir))
	assert.FileExists(t, filepath.Join(projectDir, ".gitignore"))
	assert.NoFileExists(t, filepath.Join(projectDir, "_gitignore"))
	assert.FileExists(t, filepath.Join(projectDir, "src", "App.tsx"))

	assert.Contains(t, stdout, "Project created successfully!")
	assert.Contains(t, stdout, "my-app")
	assert.Contains(t, stdout, "pnpm install")
	assert.Contains(t, stdout, "pnpm dev")
}

func TestCreate_PromptedNameDefault(t *testing.T) {
	workDir := isolate(t)
	p := prompttest.New(
		prompttest.Text(""),
		prompttest.Choose("vanilla"),
		prompttest.Choose("vanilla-library"),
	)

	_, _, err := execute(t, p, workDir)
	require.NoError(t, err)
	assert.Equal(t, "rapo-project", packageName(t, filepath.Join(workDir, "rapo-project")))
}

func TestCreate_DirectoryArgument(t *testing.T) {
	workDir := isolate(t)
	p := prompttest.New()

	stdout, _, err := execute(t, p, workDir, "libs/My Lib/", "--template", "vanilla-library")
	require.NoError(t, err)
	assert.Empty(t, p.Asked(), "directory and template flags skip every prompt")

	projectDir := filepath.Join(workDir, "libs", "My Lib")
	assert.Equal(t, "my-lib", packageName(t, projectDir))
	assert.FileExists(t, filepath.Join(projectDir, "src", "index.ts"))
	assert.Contains(t, stdout, `"libs/My Lib"`)
}

func TestCreate_FrameworkFlagSkipsFrameworkPrompt(t *testing.T) {
	workDir := isolate(t)
	p := prompttest.New(prompttest.Choose("react-basic-mantine"))

	_, _, err := execute(t, p, workDir, "web", "-f", "react")
	require.NoError(t, err)

	asked := p.Asked()
	require.Len(t, asked, 1)
	assert.Equal(t, "What template do you want to use?", asked[0].Title)
	assert.Equal(t, []string{"react-basic-mantine"}, asked[0].Options)
}

func TestCreate_OverwriteKeepsGit(t *testing.T) {
	workDir := isolate(t)
	projectDir := filepath.Join(workDir, "app")
	testutil.WriteFiles(t, projectDir, map[string]string{
		".git/HEAD": "ref: main\n",
		"old.txt":   "old",
	})

	p := prompttest.New(
		prompttest.Yes(),
		prompttest.Choose("vanilla"),
		prompttest.Choose("vanilla-library"),
	)

	_, _, err := execute(t, p, workDir, "app")
	require.NoError(t, err)

	assert.Equal(t, `Directory "app" already exists. Overwrite?`, p.Asked()[0].Title)
	assert.NoFileExists(t, filepath.Join(projectDir, "old.txt"))
	assert.FileExists(t, filepath.Join(projectDir, ".git", "HEAD"))
	assert.Equal(t, "app", packageName(t, projectDir))
}

func TestCreate_OverwriteDeclined(t *testing.T) {
	workDir := isolate(t)
	projectDir := filepath.Join(workDir, "app")
	require.NoError(t, os.MkdirAll(projectDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "old.txt"), []byte("old"), 0o644))

	p := prompttest.New(prompttest.No())

	stdout, _, err := execute(t, p, workDir, "app")
	requireCancelled(t, err)
	assert.Contains(t, stdout, "Operation cancelled")
	assert.FileExists(t, filepath.Join(projectDir, "old.txt"))
	assert.NoFileExists(t, filepath.Join(projectDir, "package.json"))
}

func TestCreate_EmptyDirectoryIsNotConfirmed(t *testing.T) {
	workDir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(workDir, "app"), 0o755))

	p := prompttest.New(prompttest.Choose("vanilla"), prompttest.Choose("vanilla-library"))

	_, _, err := execute(t, p, workDir, "app")
	require.NoError(t, err)
	assert.Equal(t, "What framework do you want to use?", p.Asked()[0].Title)
}

func TestCreate_CancelledAtEachStep(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		replies []prompttest.Reply
	}{
		{"name", nil, []prompttest.Reply{prompttest.Cancel()}},
		{"framework", []string{"app"}, []prompttest.Reply{prompttest.Cancel()}},
		{"template", []string{"app"}, []prompttest.Reply{prompttest.Choose("react"), prompttest.Cancel()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workDir := isolate(t)

			stdout, _, err := execute(t, prompttest.New(tt.replies...), workDir, tt.args...)
			requireCancelled(t, err)
			assert.Contains(t, stdout, "Operation cancelled")
			assert.NoFileExists(t, filepath.Join(workDir, "app", "package.json"))
		})
	}
}

func TestCreate_InvalidFrameworkSelection(t *testing.T) {
	workDir := isolate(t)
	p := prompttest.New(prompttest.Choose("svelte"))

	stdout, _, err := execute(t, p, workDir, "app")
	requireCancelled(t, err)
	assert.Contains(t, stdout, "Invalid framework selected")
}

func TestCreate_TemplateNotFound(t *testing.T) {
	workDir := isolate(t)
	p := prompttest.New(prompttest.Choose("vanilla"), prompttest.Choose("ghost"))

	stdout, _, err := execute(t, p, workDir, "app")
	requireCancelled(t, err)
	assert.Contains(t, stdout, "Template not found")
	assert.NoDirExists(t, filepath.Join(workDir, "app"))
}

func TestCreate_UnknownFlagValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"template", []string{"app", "--template", "nope"}, "unknown template: nope"},
		{"framework", []string{"app", "--framework", "svelte"}, "unknown framework: svelte"},
		{"mismatch", []string{"app", "-f", "react", "-t", "vanilla-library"}, "does not belong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workDir := isolate(t)
			p := prompttest.New()

			_, _, err := execute(t, p, workDir, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
			assert.Empty(t, p.Asked())
			assert.NoDirExists(t, filepath.Join(workDir, "app"))
		})
	}
}

func TestCreate_PromptFailure(t *testing.T) {
	workDir := isolate(t)
	p := prompttest.New(prompttest.Fail(errors.New("terminal gone")))

	_, _, err := execute(t, p, workDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal gone")
	assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
}

func TestCreate_TargetIsFile(t *testing.T) {
	workDir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "app"), []byte("x"), 0o644))

	_, _, err := execute(t, prompttest.New(), workDir, "app")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
}

func TestCreate_TemplatesDir(t *testing.T) {
	workDir := isolate(t)
	templatesDir := t.TempDir()
	testutil.WriteFiles(t, templatesDir, map[string]string{
		"vanilla-library/package.json": `{"name":"x","private":true}`,
		"vanilla-library/_npmrc":       "strict=true\n",
	})

	_, _, err := execute(t, prompttest.New(), workDir, "lib", "-t", "vanilla-library", "--templates-dir", templatesDir)
	require.NoError(t, err)

	projectDir := filepath.Join(workDir, "lib")
	assert.FileExists(t, filepath.Join(projectDir, ".npmrc"))
	assert.NoFileExists(t, filepath.Join(projectDir, "tsconfig.json"))
	assert.Equal(t, "lib", packageName(t, projectDir))
}

func TestCreate_TemplatesDirFromEnv(t *testing.T) {
	workDir := isolate(t)
	templatesDir := t.TempDir()
	t.Setenv(config.EnvTemplatesDir, templatesDir)

	_, _, err := execute(t, prompttest.New(), workDir, "lib", "-t", "vanilla-library")
	requireCancelled(t, err)
}

func TestCreate_TemplateWithoutManifest(t *testing.T) {
	workDir := isolate(t)
	templatesDir := t.TempDir()
	testutil.WriteFiles(t, templatesDir, map[string]string{"vanilla-library/README.md": "hi"})

	_, _, err := execute(t, prompttest.New(), workDir, "lib", "-t", "vanilla-library", "--templates-dir", templatesDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
	assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
}

func TestCreate_ConfigFile(t *testing.T) {
	workDir := isolate(t)
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("packageManager: npm\ndefaultProjectName: starter\n"), 0o644))

	p := prompttest.New(
		prompttest.Text(""),
		prompttest.Choose("vanilla"),
		prompttest.Choose("vanilla-library"),
	)

	stdout, _, err := execute(t, p, workDir, "--config", configFile)
	require.NoError(t, err)
	assert.Equal(t, "starter", packageName(t, filepath.Join(workDir, "starter")))
	assert.Contains(t, stdout, "npm install")
	assert.NotContains(t, stdout, "pnpm")
}

func TestCreate_PackageManagerFromEnv(t *testing.T) {
	workDir := isolate(t)
	t.Setenv(config.EnvPackageManager, "yarn")

	stdout, _, err := execute(t, prompttest.New(), workDir, "lib", "-t", "vanilla-library")
	require.NoError(t, err)
	assert.Contains(t, stdout, "yarn install")
	assert.Contains(t, stdout, "yarn dev")
}

func TestCreate_VerboseTree(t *testing.T) {
	workDir := isolate(t)

	_, stderr, err := execute(t, prompttest.New(), workDir, "lib", "-t", "vanilla-library", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "package.json")
	assert.Contains(t, stderr, ".gitignore")
	assert.Contains(t, stderr, "index.ts")
	assert.Contains(t, stderr, "lib/\n")
	assert.Contains(t, stderr, "└── ")
}

func TestCreate_ExtraArgsIgnored(t *testing.T) {
	workDir := isolate(t)

	_, _, err := execute(t, prompttest.New(), workDir, "lib", "extra", "more", "-t", "vanilla-library")
	require.NoError(t, err)
	assert.Equal(t, "lib", packageName(t, filepath.Join(workDir, "lib")))
	assert.NoDirExists(t, filepath.Join(workDir, "extra"))
}

func TestCreate_DirectoryNamedLikeCommand(t *testing.T) {
	for _, dir := range []string{"version", "config", "help", "init"} {
		t.Run(dir, func(t *testing.T) {
			workDir := isolate(t)

			stdout, _, err := execute(t, prompttest.New(), workDir, dir, "-t", "vanilla-library")
			require.NoError(t, err)
			assert.Equal(t, dir, packageName(t, filepath.Join(workDir, dir)))
			assert.Contains(t, stdout, "Project created successfully!")
		})
	}
}

func TestCreate_MalformedManifest(t *testing.T) {
	workDir := isolate(t)
	templatesDir := t.TempDir()
	testutil.WriteFiles(t, templatesDir, map[string]string{"vanilla-library/package.json": `{"name": `})

	_, _, err := execute(t, prompttest.New(), workDir, "lib", "-t", "vanilla-library", "--templates-dir", templatesDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, manifest.ErrInvalid)
	assert.Contains(t, err.Error(), "parsing package.json")
	assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
}
