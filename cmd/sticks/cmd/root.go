// Package cmd provides the CLI commands for sticks.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mAmineChniti/sticks/internal/config"
	"github.com/mAmineChniti/sticks/internal/errors"
	"github.com/mAmineChniti/sticks/internal/logging"
	"github.com/mAmineChniti/sticks/internal/project"
	"github.com/mAmineChniti/sticks/internal/ui/styles"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sticks",
	Short: "Scaffold and manage C/C++ projects",
	Long: `Sticks creates C and C++ project layouts with a build file, editor
configuration and optional package manager manifest, and keeps the
Makefile's install-deps rule in sync as you add or remove dependencies.

Examples:
  sticks c hello              # New C project in ./hello
  sticks new app --lang cpp --build cmake --pm vcpkg
  sticks add libcurl openssl  # Add apt packages to install-deps
  sticks features             # Show what the current project uses`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	addGlobalFlags(rootCmd)
}

// addGlobalFlags registers the persistent flags every command understands.
func addGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().String("config", "", "Path to a config file (default: <dir>/.sticks.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log every file operation to stderr")
	root.PersistentFlags().StringP("dir", "C", ".", "Run as if sticks was started in this directory")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("sticks {{.Version}}\n")
	rootCmd.SetOut(os.Stdout)

	err := rootCmd.Execute()
	_ = logging.CloseGlobal()
	if err != nil {
		fmt.Fprint(os.Stderr, errors.FormatError(err))
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}

// session is the state a command runs with: the working directory, the
// loaded configuration and output styles bound to the command's writer.
type session struct {
	dir    string
	cfg    *config.Config
	styles *styles.Styles
}

// setup loads configuration for the command's --dir and initializes logging.
func setup(cmd *cobra.Command) (*session, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = "."
	}
	cfgPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	var (
		cfg *config.Config
		err error
	)
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.LoadFromDir(dir)
	}
	if err != nil {
		path := cfgPath
		if path == "" {
			path = config.DefaultConfigFile
		}
		return nil, errors.ConfigInvalid(path, err)
	}

	logCfg := logging.DefaultConfig()
	logCfg.LogDir = cfg.Log.Dir
	logCfg.JSONFormat = cfg.Log.JSON
	logCfg.Output = cmd.ErrOrStderr()
	if verbose {
		logCfg.Level = logging.LevelDebug
		logCfg.Console = true
	}
	_ = logging.CloseGlobal()
	if err := logging.InitGlobal(logCfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrIO, "failed to initialize logging")
	}
	logging.Debug("configuration loaded", "dir", dir, "config", cfgPath)

	return &session{
		dir:    dir,
		cfg:    cfg,
		styles: styles.New(cmd.OutOrStdout()),
	}, nil
}

func (s *session) scaffolder() *project.Scaffolder {
	return project.NewScaffolder(s.dir, s.cfg)
}

// printResult lists the files a scaffolding operation created or skipped.
func (s *session) printResult(cmd *cobra.Command, res *project.Result) {
	for _, p := range res.Created {
		cmd.Println(s.styles.Done("created " + p))
	}
	for _, p := range res.Skipped {
		cmd.Println(s.styles.Muted.Render("○ kept existing " + p))
	}
	if res.Instructions != "" {
		cmd.Println("")
		cmd.Println(s.styles.Note(res.Instructions))
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// addOutputFlag registers --output/-o on c.
func addOutputFlag(c *cobra.Command) {
	c.Flags().StringP("output", "o", "text", "Output format: text, json or yaml")
}

// printStructured writes v as JSON or YAML. It reports false for text
// output so the caller can render its own form.
func printStructured(cmd *cobra.Command, v any) (bool, error) {
	format, _ := cmd.Flags().GetString("output")
	switch format {
	case "", "text":
		return false, nil
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, err
		}
		cmd.Println(string(data))
		return true, nil
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return true, err
		}
		cmd.Print(string(data))
		return true, nil
	default:
		return true, errors.UnsupportedValue("output format", format, []string{"text", "json", "yaml"})
	}
}
