package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// addCmd adds packages to the Makefile's install-deps rule.
var addCmd = &cobra.Command{
	Use:   "add <package>...",
	Short: "Add dependencies to the Makefile",
	Long: `Add packages to the install-deps rule of the project's Makefile.

The rule is created when missing and hooked into the "all" target.
Packages that are already listed are left alone.

Examples:
  sticks add libcurl4-openssl-dev
  sticks add zlib1g-dev libssl-dev`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

// removeCmd removes packages from the install-deps rule.
var removeCmd = &cobra.Command{
	Use:   "remove <package>...",
	Short: "Remove dependencies from the Makefile",
	Long: `Remove packages from the install-deps rule of the project's Makefile.

When the last package goes, the rule is deleted and dropped from the
"all" target.

Examples:
  sticks remove libssl-dev`,
	Aliases: []string{"rm"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRemove,
}

// depsCmd lists the install-deps packages.
var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "List dependencies in the Makefile",
	Args:  cobra.NoArgs,
	RunE:  runDeps,
}

func init() {
	rootCmd.AddCommand(addCmd, removeCmd, depsCmd)
	addOutputFlag(depsCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, s.cfg.Makefile.Filename)
	res, err := s.cfg.Editor().AddToFile(path, args)
	if err != nil {
		return err
	}

	if len(res.Added) > 0 {
		cmd.Println(s.styles.Done("added " + strings.Join(res.Added, " ") + " to " + s.cfg.Makefile.RuleName))
	}
	if len(res.Present) > 0 {
		cmd.Println(s.styles.Muted.Render("○ already present: " + strings.Join(res.Present, " ")))
	}
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, s.cfg.Makefile.Filename)
	res, err := s.cfg.Editor().RemoveFromFile(path, args)
	if err != nil {
		return err
	}

	if len(res.Removed) > 0 {
		cmd.Println(s.styles.Done("removed " + strings.Join(res.Removed, " ") + " from " + s.cfg.Makefile.RuleName))
	}
	if res.RuleDeleted {
		cmd.Println(s.styles.Done("deleted empty " + s.cfg.Makefile.RuleName + " rule"))
	}
	if len(res.Missing) > 0 {
		cmd.Println(s.styles.Warn("not found: " + strings.Join(res.Missing, " ")))
	}
	return nil
}

func runDeps(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}

	deps, err := s.cfg.Editor().ListFromFile(filepath.Join(s.dir, s.cfg.Makefile.Filename))
	if err != nil {
		return err
	}
	if deps == nil {
		deps = []string{}
	}

	if done, err := printStructured(cmd, deps); done || err != nil {
		return err
	}

	if len(deps) == 0 {
		cmd.Println(s.styles.Muted.Render("No dependencies."))
		return nil
	}
	for _, d := range deps {
		cmd.Println(d)
	}
	return nil
}
