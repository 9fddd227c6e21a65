// Package config provides configuration data structures for sticks.
package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/mAmineChniti/sticks/internal/buildsys"
	"github.com/mAmineChniti/sticks/internal/lang"
	"github.com/mAmineChniti/sticks/internal/makefile"
	"github.com/mAmineChniti/sticks/internal/pkgmgr"
)

// Config represents the complete sticks configuration loaded from .sticks.yaml.
type Config struct {
	Makefile MakefileConfig `yaml:"makefile" json:"makefile" mapstructure:"makefile"`
	Project  ProjectConfig  `yaml:"project"  json:"project"  mapstructure:"project"`
	Log      LogConfig      `yaml:"log"      json:"log"      mapstructure:"log"`
}

// MakefileConfig configures the install-deps rule editor.
type MakefileConfig struct {
	// Filename is the build file edited by add/remove (default: Makefile).
	Filename string `yaml:"filename" json:"filename" mapstructure:"filename"`
	// AggregateTarget is the target that lists the rule as a prerequisite (default: all).
	AggregateTarget string `yaml:"aggregate_target" json:"aggregate_target" mapstructure:"aggregate_target"`
	// RuleName is the dependency rule (default: install-deps).
	RuleName string `yaml:"rule_name" json:"rule_name" mapstructure:"rule_name"`
	// InstallPrefix starts the rule's command line (default: "sudo apt install -y").
	InstallPrefix string `yaml:"install_prefix" json:"install_prefix" mapstructure:"install_prefix"`
	// SortDependencies writes names sorted; false keeps insertion order (default: true).
	SortDependencies bool `yaml:"sort_dependencies" json:"sort_dependencies" mapstructure:"sort_dependencies"`
}

// ProjectConfig holds defaults for scaffolding commands.
type ProjectConfig struct {
	// Language is the default language for new/init (default: c).
	Language lang.Language `yaml:"language" json:"language" mapstructure:"language"`
	// BuildSystem is the default build system (default: makefile).
	BuildSystem buildsys.Kind `yaml:"build_system" json:"build_system" mapstructure:"build_system"`
	// PackageManager adds a manifest to new projects. Empty means none.
	PackageManager string `yaml:"package_manager,omitempty" json:"package_manager,omitempty" mapstructure:"package_manager"`
	// Version is the initial project version, written to manifests (default: 0.1.0).
	Version string `yaml:"version" json:"version" mapstructure:"version"`
	// EditorFiles writes .editorconfig, .clang-format and .vscode (default: true).
	EditorFiles bool `yaml:"editor_files" json:"editor_files" mapstructure:"editor_files"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Dir keeps a log file per run in this directory. Empty means stderr only.
	Dir string `yaml:"dir,omitempty" json:"dir,omitempty" mapstructure:"dir"`
	// JSON switches log output to JSON.
	JSON bool `yaml:"json,omitempty" json:"json,omitempty" mapstructure:"json"`
}

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Makefile: MakefileConfig{
			Filename:         makefile.DefaultFilename,
			AggregateTarget:  makefile.DefaultAggregateTarget,
			RuleName:         makefile.DefaultRuleName,
			InstallPrefix:    makefile.DefaultInstallPrefix,
			SortDependencies: true,
		},
		Project: ProjectConfig{
			Language:    lang.C,
			BuildSystem: buildsys.Makefile,
			Version:     pkgmgr.DefaultVersion,
			EditorFiles: true,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// Booleans cannot be told apart from an explicit false, so they are left alone.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Makefile.Filename == "" {
		c.Makefile.Filename = defaults.Makefile.Filename
	}
	if c.Makefile.AggregateTarget == "" {
		c.Makefile.AggregateTarget = defaults.Makefile.AggregateTarget
	}
	if c.Makefile.RuleName == "" {
		c.Makefile.RuleName = defaults.Makefile.RuleName
	}
	if strings.TrimSpace(c.Makefile.InstallPrefix) == "" {
		c.Makefile.InstallPrefix = defaults.Makefile.InstallPrefix
	}

	if c.Project.Language == "" {
		c.Project.Language = defaults.Project.Language
	}
	if c.Project.BuildSystem == "" {
		c.Project.BuildSystem = defaults.Project.BuildSystem
	}
	if c.Project.Version == "" {
		c.Project.Version = defaults.Project.Version
	}
}

// Editor returns a dependency rule editor configured from the makefile section.
func (c *Config) Editor() *makefile.Editor {
	e := makefile.NewEditor()
	e.AggregateTarget = c.Makefile.AggregateTarget
	e.RuleName = c.Makefile.RuleName
	e.InstallPrefix = strings.TrimSpace(c.Makefile.InstallPrefix)
	e.Sorted = c.Makefile.SortDependencies
	return e
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	// Makefile targets must be single make tokens
	for _, f := range []struct {
		field string
		value string
	}{
		{"makefile.aggregate_target", c.Makefile.AggregateTarget},
		{"makefile.rule_name", c.Makefile.RuleName},
	} {
		if err := validateTarget(f.field, f.value); err != nil {
			errs = append(errs, err)
		}
	}
	if strings.ContainsAny(c.Makefile.Filename, "/\\") {
		errs = append(errs, &ValidationError{
			Field:   "makefile.filename",
			Message: "must be a file name, not a path",
		})
	}

	if c.Project.Language != "" && !c.Project.Language.Valid() {
		errs = append(errs, &ValidationError{
			Field:   "project.language",
			Message: "must be 'c' or 'cpp'",
		})
	}
	if c.Project.BuildSystem != "" && !c.Project.BuildSystem.Valid() {
		errs = append(errs, &ValidationError{
			Field:   "project.build_system",
			Message: "must be 'makefile' or 'cmake'",
		})
	}
	if c.Project.PackageManager != "" {
		if _, err := pkgmgr.Parse(c.Project.PackageManager); err != nil {
			errs = append(errs, &ValidationError{
				Field:   "project.package_manager",
				Message: "must be 'conan' or 'vcpkg'",
			})
		}
	}
	if c.Project.Version != "" {
		if _, err := semver.NewVersion(c.Project.Version); err != nil {
			errs = append(errs, &ValidationError{
				Field:   "project.version",
				Message: fmt.Sprintf("must be a semantic version: %v", err),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateTarget(field, value string) *ValidationError {
	if value == "" {
		return nil
	}
	if strings.ContainsAny(value, " \t:#=") {
		return &ValidationError{
			Field:   field,
			Message: "must not contain whitespace, ':', '#' or '='",
		}
	}
	return nil
}
