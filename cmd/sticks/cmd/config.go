package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mAmineChniti/sticks/internal/config"
	"github.com/mAmineChniti/sticks/internal/errors"
)

// configCmd prints the effective configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration sticks runs with: built-in defaults,
overridden by .sticks.yaml and STICKS_* environment variables.

Examples:
  sticks config
  STICKS_MAKEFILE_INSTALL_PREFIX="brew install" sticks config`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

// configInitCmd writes a config file.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write .sticks.yaml with the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(s.cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfig, "failed to render configuration")
	}
	cmd.Print(string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, config.DefaultConfigFile)
	force, _ := cmd.Flags().GetBool("force")
	if !force && fileExists(path) {
		return errors.WithSuggestion(errors.ErrExists,
			config.DefaultConfigFile+" already exists",
			"Use 'sticks config init --force' to overwrite it.")
	}

	if err := config.Save(s.cfg, path); err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to write "+config.DefaultConfigFile)
	}
	cmd.Println(s.styles.Done("created " + config.DefaultConfigFile))
	return nil
}
