package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix.
const envPrefix = "RAPO"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("templatesDir", EnvTemplatesDir)
	_ = v.BindEnv("packageManager", EnvPackageManager)
	_ = v.BindEnv("defaultProjectName", EnvDefaultProjectName)
	_ = v.BindEnv("accessible", EnvAccessible)

	v.SetDefault("packageManager", DefaultPackageManager)
	v.SetDefault("defaultProjectName", DefaultProjectName)

	return &Loader{v: v}
}

// Load loads configuration from configFile. A missing file is not an error;
// defaults and environment variables still apply. Environment variables take
// precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	if expandedPath != "" {
		l.v.SetConfigFile(expandedPath)
		l.v.SetConfigType("yaml")

		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg.WithDefaults(), nil
}
