package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mAmineChniti/sticks/internal/pkgmgr"
)

// pmCmd groups package manager commands.
var pmCmd = &cobra.Command{
	Use:   "pm",
	Short: "Manage the package manager manifest",
	Long: `Add or remove a Conan or vcpkg manifest in the current project.

Examples:
  sticks pm add vcpkg
  sticks pm remove conan`,
}

var pmAddCmd = &cobra.Command{
	Use:       "add <conan|vcpkg>",
	Short:     "Add a package manager manifest",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"conan", "vcpkg"},
	RunE:      runPMAdd,
}

var pmRemoveCmd = &cobra.Command{
	Use:       "remove <conan|vcpkg>",
	Short:     "Remove a package manager manifest",
	Aliases:   []string{"rm"},
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"conan", "vcpkg"},
	RunE:      runPMRemove,
}

func init() {
	rootCmd.AddCommand(pmCmd)
	pmCmd.AddCommand(pmAddCmd, pmRemoveCmd)
}

func runPMAdd(cmd *cobra.Command, args []string) error {
	m, err := pkgmgr.Parse(args[0])
	if err != nil {
		return err
	}

	s, err := setup(cmd)
	if err != nil {
		return err
	}

	res, err := s.scaffolder().AddPackageManager(m)
	if err != nil {
		return err
	}

	if len(res.Others) > 0 {
		others := make([]string, len(res.Others))
		for i, o := range res.Others {
			others[i] = o.String()
		}
		cmd.Println(s.styles.Warn("project also uses " + strings.Join(others, ", ")))
	}
	cmd.Println(s.styles.Done("created " + res.File))
	if res.Instructions != "" {
		cmd.Println("")
		cmd.Println(s.styles.Note(res.Instructions))
	}
	return nil
}

func runPMRemove(cmd *cobra.Command, args []string) error {
	m, err := pkgmgr.Parse(args[0])
	if err != nil {
		return err
	}

	s, err := setup(cmd)
	if err != nil {
		return err
	}

	res, err := s.scaffolder().RemovePackageManager(m)
	if err != nil {
		return err
	}
	cmd.Println(s.styles.Done("removed " + res.File))
	return nil
}
