package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mAmineChniti/sticks/internal/buildsys"
)

// convertCmd switches build systems.
var convertCmd = &cobra.Command{
	Use:   "convert <makefile|cmake>",
	Short: "Convert the project to another build system",
	Long: `Replace the project's build files with fresh ones for another
build system.

Packages listed in the Makefile's install-deps rule are not carried over;
they are printed so you can add them again.

Examples:
  sticks convert cmake
  sticks convert makefile`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"makefile", "cmake"},
	RunE:      runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	to, err := buildsys.Parse(args[0])
	if err != nil {
		return err
	}

	s, err := setup(cmd)
	if err != nil {
		return err
	}

	res, err := s.scaffolder().ConvertBuildSystem(to)
	if err != nil {
		return err
	}

	for _, p := range res.Removed {
		cmd.Println(s.styles.Done("removed " + p))
	}
	for _, p := range res.Created {
		cmd.Println(s.styles.Done("created " + p))
	}
	if len(res.DroppedDependencies) > 0 {
		cmd.Println(s.styles.Warn("dependencies not carried over: " + strings.Join(res.DroppedDependencies, " ")))
	}
	cmd.Println(s.styles.Title.Render("Converted to " + res.To.String()))
	return nil
}
