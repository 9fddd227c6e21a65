package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mAmineChniti/sticks/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show detailed version information for sticks.

Displays the current version, commit hash, build date,
and Go/platform information.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	addOutputFlag(versionCmd)
}

// runVersion handles the version command.
func runVersion(cmd *cobra.Command, args []string) error {
	info := version.NewInfo(Version, Commit, Date)
	if done, err := printStructured(cmd, info); done || err != nil {
		return err
	}

	cmd.Println(info.FullString())
	if !info.IsRelease() {
		cmd.Println("  (development build)")
	}
	return nil
}
