// Package config provides configuration loading and management.
package config

// Default values.
const (
	DefaultPackageManager = "pnpm"
	DefaultProjectName    = "rapo-project"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the create-rapo configuration.
// Loaded from ~/.rapo/config.yaml, overridden by RAPO_* environment variables.
type Config struct {
	// TemplatesDir reads templates from disk instead of the bundled set.
	// Env: RAPO_TEMPLATES_DIR
	TemplatesDir string `mapstructure:"templatesDir" yaml:"templatesDir,omitempty"`

	// PackageManager is used in the printed next steps.
	// Env: RAPO_PACKAGE_MANAGER, Default: pnpm
	PackageManager string `mapstructure:"packageManager" yaml:"packageManager"`

	// DefaultProjectName is offered when the user leaves the name empty.
	// Env: RAPO_DEFAULT_PROJECT_NAME, Default: rapo-project
	DefaultProjectName string `mapstructure:"defaultProjectName" yaml:"defaultProjectName"`

	// Accessible switches prompts to line-based input.
	// Env: RAPO_ACCESSIBLE
	Accessible bool `mapstructure:"accessible" yaml:"accessible"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `create-rapo config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		PackageManager:     DefaultPackageManager,
		DefaultProjectName: DefaultProjectName,
		Log: LogConfig{
			Timestamps: boolPtr(false),
		},
	}
}

// WithDefaults fills empty fields with their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.PackageManager == "" {
		out.PackageManager = DefaultPackageManager
	}
	if out.DefaultProjectName == "" {
		out.DefaultProjectName = DefaultProjectName
	}
	return &out
}

func boolPtr(b bool) *bool {
	return &b
}
