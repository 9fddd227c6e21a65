// Package config provides configuration loading and management for sticks.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mAmineChniti/sticks/internal/buildsys"
	"github.com/mAmineChniti/sticks/internal/lang"
)

const (
	// DefaultConfigFile is the config file name looked up in the project directory.
	DefaultConfigFile = ".sticks.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "STICKS"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	// STICKS_MAKEFILE_RULE_NAME overrides makefile.rule_name
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, NewConfig())

	return &Loader{v: v}
}

// setDefaults registers every key so AutomaticEnv can see it even when the
// config file does not mention it.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("makefile.filename", cfg.Makefile.Filename)
	v.SetDefault("makefile.aggregate_target", cfg.Makefile.AggregateTarget)
	v.SetDefault("makefile.rule_name", cfg.Makefile.RuleName)
	v.SetDefault("makefile.install_prefix", cfg.Makefile.InstallPrefix)
	v.SetDefault("makefile.sort_dependencies", cfg.Makefile.SortDependencies)
	v.SetDefault("project.language", string(cfg.Project.Language))
	v.SetDefault("project.build_system", string(cfg.Project.BuildSystem))
	v.SetDefault("project.package_manager", cfg.Project.PackageManager)
	v.SetDefault("project.version", cfg.Project.Version)
	v.SetDefault("project.editor_files", cfg.Project.EditorFiles)
	v.SetDefault("log.dir", cfg.Log.Dir)
	v.SetDefault("log.json", cfg.Log.JSON)
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// The file must exist; use LoadConfigFromDir for an optional file.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{
			Path:    path,
			Message: "config file not found",
			Err:     err,
		}
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	return l.decode(path)
}

// LoadConfigFromDir loads .sticks.yaml from dir. A missing file is not an
// error: defaults plus environment overrides are returned.
func (l *Loader) LoadConfigFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultConfigFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return l.decode(path)
	}
	return l.LoadConfig(path)
}

func (l *Loader) decode(path string) (*Config, error) {
	cfg := NewConfig()

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// Viper's decoder stays weakly typed, so "false" from the environment
// still decodes into a bool.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc accepts the same aliases the command line does
// ("c++", "make"). Unknown values pass through so Validate can name the field.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		s := data.(string)

		switch to {
		case reflect.TypeOf(lang.Language("")):
			if s == "" {
				return lang.Language(""), nil
			}
			if l, err := lang.Parse(s); err == nil {
				return l, nil
			}
			return lang.Language(s), nil
		case reflect.TypeOf(buildsys.Kind("")):
			if s == "" {
				return buildsys.Kind(""), nil
			}
			if k, err := buildsys.Parse(s); err == nil {
				return k, nil
			}
			return buildsys.Kind(s), nil
		}

		return data, nil
	}
}

// Save writes cfg as YAML to path, creating parent directories.
// If path is empty, DefaultConfigFile in the working directory is used.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigFile
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadFromDir is a convenience function that loads the optional config from a directory.
func LoadFromDir(dir string) (*Config, error) {
	return NewLoader().LoadConfigFromDir(dir)
}
