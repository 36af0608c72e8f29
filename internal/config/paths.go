package config

import (
	"os"
	"path/filepath"
)

// Environment variables.
const (
	EnvConfig             = "RAPO_CONFIG"
	EnvTemplatesDir       = "RAPO_TEMPLATES_DIR"
	EnvPackageManager     = "RAPO_PACKAGE_MANAGER"
	EnvDefaultProjectName = "RAPO_DEFAULT_PROJECT_NAME"
	EnvAccessible         = "RAPO_ACCESSIBLE"
)

// Paths contains standard filesystem paths for create-rapo.
type Paths struct {
	// ConfigFile is the path to the config file (~/.rapo/config.yaml).
	ConfigFile string

	// HomeDir is the rapo home directory (~/.rapo).
	HomeDir string
}

// DefaultPaths returns the default paths.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	rapoHome := filepath.Join(homeDir, ".rapo")

	return &Paths{
		ConfigFile: filepath.Join(rapoHome, "config.yaml"),
		HomeDir:    rapoHome,
	}, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}
