// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rapo/cli/internal/cmd/config"
	"github.com/rapo/cli/internal/cmdtypes"
	"github.com/rapo/cli/internal/cmdutil"
	iconfig "github.com/rapo/cli/internal/config"
	"github.com/rapo/cli/internal/output"
	"github.com/rapo/cli/internal/prompt"
	"github.com/rapo/cli/internal/version"
)

// RootOption customizes the root command.
type RootOption func(*rootOptions)

type rootOptions struct {
	prompter prompt.Prompter
	workDir  string
}

// WithPrompter replaces the terminal prompter.
func WithPrompter(p prompt.Prompter) RootOption {
	return func(o *rootOptions) {
		o.prompter = p
	}
}

// WithWorkDir resolves the target directory against dir instead of the
// process working directory.
func WithWorkDir(dir string) RootOption {
	return func(o *rootOptions) {
		o.workDir = dir
	}
}

// globalFlags holds the persistent flag values before resolution.
type globalFlags struct {
	config       string
	templatesDir string
	verbose      bool
	timestamps   bool
}

// NewRootCmd creates the root command for the create-rapo CLI.
func NewRootCmd(opts ...RootOption) *cobra.Command {
	ro := &rootOptions{}
	for _, opt := range opts {
		opt(ro)
	}

	var (
		flags       globalFlags
		selection   cmdutil.SelectionFlags
		configFlags config.Flags
	)
	globals := &cmdtypes.GlobalConfig{}
	info := version.Get()

	rootCmd := &cobra.Command{
		Use:   "create-rapo [directory]",
		Short: "Scaffold a new project from a template",
		Long: `create-rapo scaffolds a new project from a bundled template.

It asks for a project name, a framework and a template, copies the
template into the project directory and sets the package.json name.

Examples:
  # Answer every question interactively
  create-rapo

  # Create my-lib in ./my-lib with the vanilla library template
  create-rapo my-lib --template vanilla-library

  # Use templates from a local directory
  create-rapo my-app --templates-dir ~/rapo-templates

  # Write ~/.rapo/config.yaml with default values
  create-rapo --init-config`,
		Version:       info.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, &flags, globals)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFlags.Requested() || configFlags.Force {
				return configFlags.Run(cmd.OutOrStdout(), globals)
			}
			return runCreate(cmd, args, globals, &selection, ro)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: RAPO_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", false, "Show timestamps in log output")

	rootCmd.Flags().StringVar(&flags.templatesDir, "templates-dir", "", "Read templates from a directory (env: RAPO_TEMPLATES_DIR)")
	selection.AddTo(rootCmd)
	configFlags.AddTo(rootCmd)

	rootCmd.SetVersionTemplate(info.String() + "\n")

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, flags *globalFlags, globals *cmdtypes.GlobalConfig) error {
	configPath, pathErr := iconfig.ResolveConfigPath(flags.config)

	// A broken config file must not block --init-config.
	cfg, loadErr := iconfig.NewLoader().Load(configPath.Value)
	if loadErr != nil {
		cfg = iconfig.DefaultConfig()
	}

	// Resolve timestamps: flag (if explicitly set) > config > off
	logCfg := output.LogConfig{Verbose: flags.verbose}
	switch {
	case cmd.Flags().Changed("timestamps"):
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	case cfg.Log.Timestamps != nil:
		logCfg.Timestamps = cfg.Log.Timestamps
	default:
		logCfg.Timestamps = output.BoolPtr(false)
	}
	output.SetupLogging(logCfg)

	if pathErr != nil {
		output.Debug("could not resolve config path", "error", pathErr)
	}
	if loadErr != nil {
		output.Warn("ignoring config file", "path", configPath.Value, "error", loadErr)
	}

	templatesDir := iconfig.ResolveTemplatesDir(flags.templatesDir, cfg)
	expanded, err := iconfig.ExpandPath(templatesDir.Value)
	if err != nil {
		return err
	}

	iconfig.LogResolvedValues(configPath, templatesDir)

	globals.Config = cfg
	globals.ConfigPath = configPath.Value
	globals.TemplatesDir = expanded
	globals.Verbose = flags.verbose

	return nil
}
