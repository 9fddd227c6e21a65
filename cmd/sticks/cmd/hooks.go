package cmd

import (
	"github.com/spf13/cobra"
)

// hooksCmd installs the git pre-commit hook.
var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Install the pre-commit hook",
	Long: `Install a git pre-commit hook that checks the formatting of src/
and include/ with clang-format.

An existing pre-commit hook is kept.`,
	Args: cobra.NoArgs,
	RunE: runHooks,
}

func init() {
	rootCmd.AddCommand(hooksCmd)
}

func runHooks(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}

	res, err := s.scaffolder().InstallHooks()
	if err != nil {
		return err
	}
	s.printResult(cmd, res)
	return nil
}
