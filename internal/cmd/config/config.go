// Package config implements the configuration actions of the create-rapo CLI.
// They are exposed as root flags so that every positional argument stays a
// project directory.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rapo/cli/internal/cmdtypes"
	oerrors "github.com/rapo/cli/internal/errors"
)

// Flags selects a configuration action instead of scaffolding.
type Flags struct {
	Init  bool
	Force bool
	Print bool
}

// AddTo registers the configuration flags on the given cobra command.
func (f *Flags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.Init, "init-config", false,
		"Write a config file with default values and exit")
	cmd.Flags().BoolVar(&f.Force, "force", false,
		"Overwrite an existing config file (with --init-config)")
	cmd.Flags().BoolVar(&f.Print, "print-config", false,
		"Print the effective configuration as YAML and exit")
	cmd.MarkFlagsMutuallyExclusive("init-config", "print-config")
}

// Requested reports whether a configuration action was asked for.
func (f *Flags) Requested() bool {
	return f.Init || f.Print
}

// Run performs the requested action, writing to w.
func (f *Flags) Run(w io.Writer, cfg *cmdtypes.GlobalConfig) error {
	if f.Force && !f.Init {
		return oerrors.NewValidationError("--force requires --init-config", "", "Run create-rapo --init-config --force.")
	}

	switch {
	case f.Init:
		return RunInit(w, cfg, f.Force)
	case f.Print:
		return RunShow(w, cfg)
	default:
		return fmt.Errorf("no configuration action requested")
	}
}
