package cmd

import (
	"github.com/spf13/cobra"
)

// srcCmd adds source/header pairs.
var srcCmd = &cobra.Command{
	Use:   "src <name>...",
	Short: "Add source files and headers to src/",
	Long: `Add <name>.c (or .cpp) and <name>.h to the project's src directory.

The extension follows the sources already in src/. Existing files are
not touched.

Examples:
  sticks src parser lexer`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSrc,
}

func init() {
	rootCmd.AddCommand(srcCmd)
}

func runSrc(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}

	res, err := s.scaffolder().AddSources(args)
	if err != nil {
		return err
	}

	for _, p := range res.Added {
		cmd.Println(s.styles.Done("created src/" + p))
	}
	for _, p := range res.Skipped {
		cmd.Println(s.styles.Muted.Render("○ kept existing src/" + p))
	}
	return nil
}
