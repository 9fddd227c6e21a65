package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// featuresCmd prints what the project uses.
var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Show the features of the current project",
	Long: `Detect the language, build system, package managers and tooling
files of the project in the current directory.

Examples:
  sticks features
  sticks features -o json`,
	Args: cobra.NoArgs,
	RunE: runFeatures,
}

func init() {
	rootCmd.AddCommand(featuresCmd)
	addOutputFlag(featuresCmd)
}

func runFeatures(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}

	f, err := s.scaffolder().Features()
	if err != nil {
		return err
	}

	if done, err := printStructured(cmd, f); done || err != nil {
		return err
	}

	const width = 18
	st := s.styles

	build := st.Muted.Render("none")
	if f.BuildSystem != "" {
		build = st.Value.Render(f.BuildSystem.String())
	}
	pms := st.Muted.Render("none")
	if len(f.PackageManagers) > 0 {
		names := make([]string, len(f.PackageManagers))
		for i, m := range f.PackageManagers {
			names[i] = m.String()
		}
		pms = st.Value.Render(strings.Join(names, ", "))
	}

	cmd.Println(st.Title.Render("Project " + f.Name))
	cmd.Println(st.Row("Language:", st.Value.Render(f.Language.String()), width))
	cmd.Println(st.Row("Build system:", build, width))
	cmd.Println(st.Row("Package manager:", pms, width))
	cmd.Println(st.Row("src/", st.Mark(f.HasSrc), width))
	cmd.Println(st.Row("include/", st.Mark(f.HasInclude), width))
	cmd.Println(st.Row("Git:", st.Mark(f.IsGitRepo), width))
	cmd.Println(st.Row(".gitignore", st.Mark(f.HasGitignore), width))
	cmd.Println(st.Row(".editorconfig", st.Mark(f.HasEditorConfig), width))
	cmd.Println(st.Row(".clang-format", st.Mark(f.HasClangFormat), width))
	cmd.Println(st.Row("VS Code:", st.Mark(f.HasVSCode), width))
	if len(f.Dependencies) > 0 {
		cmd.Println(st.Row("Dependencies:", strings.Join(f.Dependencies, " "), width))
	}
	return nil
}
