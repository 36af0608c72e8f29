package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rapo/cli/internal/cmdtypes"
	"github.com/rapo/cli/internal/config"
	oerrors "github.com/rapo/cli/internal/errors"
	"github.com/rapo/cli/internal/output"
)

// RunInit writes the default configuration to the resolved config path.
// An existing file is only replaced when force is set.
func RunInit(w io.Writer, cfg *cmdtypes.GlobalConfig, force bool) error {
	configFile := cfg.ConfigPath
	if configFile == "" {
		paths, err := config.DefaultPaths()
		if err != nil {
			return oerrors.WrapCause(oerrors.ErrNotFound, err, "could not determine home directory")
		}
		configFile = paths.ConfigFile
	}

	configFile, err := config.ExpandPath(configFile)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: configFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0o700); err != nil {
		return oerrors.WrapCause(oerrors.ErrPermission, err, "could not create config directory")
	}
	if err := os.WriteFile(configFile, data, 0o600); err != nil {
		return oerrors.WrapCause(oerrors.ErrPermission, err, "could not write config file")
	}

	output.Debug("wrote config file", "path", configFile)
	fmt.Fprintln(w, output.FormatCheckmark("Configuration initialized at "+output.StyleNoun.Render(configFile)))

	return nil
}

// RunShow prints the effective configuration, after the config file and
// RAPO_* environment variables have been applied.
func RunShow(w io.Writer, cfg *cmdtypes.GlobalConfig) error {
	data, err := yaml.Marshal(cfg.Config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Fprintf(w, "# %s\n%s", cfg.ConfigPath, data)
	return nil
}
