package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mAmineChniti/sticks/internal/lang"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init <c|cpp>",
	Short: "Initialize a project in the current directory",
	Long: `Initialize a C or C++ project in the current directory (or --dir).

The project is named after the directory. Files that already exist are
kept as they are and reported.

Examples:
  sticks init c
  sticks init cpp --build cmake --pm vcpkg`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	addProjectFlags(initCmd)
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	l, err := lang.Parse(args[0])
	if err != nil {
		return err
	}

	s, err := setup(cmd)
	if err != nil {
		return err
	}
	sc := s.scaffolder()

	opts, err := projectOptions(cmd, sc, l)
	if err != nil {
		return err
	}

	res, err := sc.Init(opts)
	if err != nil {
		return err
	}

	cmd.Println(s.styles.Title.Render("Initialized " + l.String() + " project " + res.Name))
	s.printResult(cmd, res)
	return nil
}
