// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmd/config.
package cmdtypes

import "github.com/rapo/cli/internal/config"

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	Config       *config.Config
	ConfigPath   string // resolved --config path
	TemplatesDir string // resolved --templates-dir; empty means bundled templates
	Verbose      bool
}
