package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mAmineChniti/sticks/internal/buildsys"
	"github.com/mAmineChniti/sticks/internal/lang"
	"github.com/mAmineChniti/sticks/internal/pkgmgr"
	"github.com/mAmineChniti/sticks/internal/project"
)

// cCmd creates C projects.
var cCmd = &cobra.Command{
	Use:   "c <name>...",
	Short: "Create new C projects",
	Long: `Create a new C project in ./<name> for each name given.

Examples:
  sticks c hello
  sticks c server client --build cmake`,
	Args: cobra.MinimumNArgs(1),
	RunE: runC,
}

// cppCmd creates C++ projects.
var cppCmd = &cobra.Command{
	Use:   "cpp <name>...",
	Short: "Create new C++ projects",
	Long: `Create a new C++ project in ./<name> for each name given.

Examples:
  sticks cpp engine
  sticks cpp engine --pm vcpkg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCpp,
}

// newCmd creates a project with every option spelled out.
var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new project",
	Long: `Create a new project in ./<name>.

Language, build system and package manager default to the values in
.sticks.yaml (c, makefile, none).

Examples:
  sticks new app --lang cpp --build cmake --pm conan`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(cCmd, cppCmd, newCmd)

	addProjectFlags(cCmd)
	addProjectFlags(cppCmd)
	addProjectFlags(newCmd)
	newCmd.Flags().StringP("lang", "l", "", "Language: c or cpp")
}

// addProjectFlags registers the build system and package manager flags.
func addProjectFlags(c *cobra.Command) {
	c.Flags().StringP("build", "b", "", "Build system: makefile or cmake")
	c.Flags().String("pm", "", "Package manager: conan, vcpkg or none")
}

func runC(cmd *cobra.Command, args []string) error {
	return createProjects(cmd, args, lang.C)
}

func runCpp(cmd *cobra.Command, args []string) error {
	return createProjects(cmd, args, lang.Cpp)
}

func runNew(cmd *cobra.Command, args []string) error {
	var l lang.Language
	if s, _ := cmd.Flags().GetString("lang"); s != "" {
		parsed, err := lang.Parse(s)
		if err != nil {
			return err
		}
		l = parsed
	}
	return createProjects(cmd, args, l)
}

// createProjects scaffolds one project per name, stopping at the first failure.
func createProjects(cmd *cobra.Command, names []string, l lang.Language) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	sc := s.scaffolder()

	opts, err := projectOptions(cmd, sc, l)
	if err != nil {
		return err
	}

	for _, name := range names {
		res, err := sc.New(name, opts)
		if err != nil {
			return err
		}
		cmd.Println(s.styles.Title.Render(opts.Language.String() + " project " + name))
		s.printResult(cmd, res)
		cmd.Println("")
	}
	return nil
}

// projectOptions starts from the configured defaults and applies flags.
// An empty l keeps the configured language.
func projectOptions(cmd *cobra.Command, sc *project.Scaffolder, l lang.Language) (project.Options, error) {
	opts := sc.DefaultOptions()
	if l != "" {
		opts.Language = l
	}

	if s, _ := cmd.Flags().GetString("build"); s != "" {
		k, err := buildsys.Parse(s)
		if err != nil {
			return opts, err
		}
		opts.BuildSystem = k
	}

	if s, _ := cmd.Flags().GetString("pm"); s != "" {
		if s == "none" {
			opts.PackageManager = ""
		} else {
			m, err := pkgmgr.Parse(s)
			if err != nil {
				return opts, err
			}
			opts.PackageManager = m
		}
	}
	return opts, nil
}
