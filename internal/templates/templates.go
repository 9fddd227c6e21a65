// Package templates renders the static files sticks writes into a project.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"
	"text/template"
	"unicode"

	"github.com/mAmineChniti/sticks/internal/lang"
)

//go:embed files/*.tmpl
var templateFS embed.FS

// Template names.
const (
	Main              = "main.tmpl"
	Makefile          = "Makefile.tmpl"
	CMakeLists        = "CMakeLists.txt.tmpl"
	BuildScript       = "build.sh.tmpl"
	DebugScript       = "debug.sh.tmpl"
	Readme            = "README.md.tmpl"
	GitIgnore         = "gitignore.tmpl"
	GitAttributes     = "gitattributes.tmpl"
	EditorConfig      = "editorconfig.tmpl"
	VSCodeSettings    = "vscode_settings.json.tmpl"
	VSCodeLaunch      = "vscode_launch.json.tmpl"
	VSCodeTasks       = "vscode_tasks.json.tmpl"
	PreCommitHook     = "pre-commit.tmpl"
	Source            = "source.tmpl"
	Header            = "header.tmpl"
	ConanfileTemplate = "conanfile.txt.tmpl"
)

// Data holds the variables available to project templates.
type Data struct {
	Project     string        // project name, also the binary name
	Language    lang.Language // c or cpp
	BuildSystem string        // "makefile" or "cmake"
	BuildFile   string        // Makefile or CMakeLists.txt
	Name        string        // source/header base name for Source and Header
}

var (
	parsed    *template.Template
	parseOnce sync.Once
	parseErr  error
)

var funcs = template.FuncMap{
	"guard": IncludeGuard,
}

func load() (*template.Template, error) {
	parseOnce.Do(func() {
		parsed, parseErr = template.New("sticks").Funcs(funcs).ParseFS(templateFS, "files/*.tmpl")
		if parseErr != nil {
			parseErr = fmt.Errorf("parsing templates: %w", parseErr)
		}
	})
	return parsed, parseErr
}

// Render executes the named template with data.
func Render(name string, data Data) (string, error) {
	tmpl, err := load()
	if err != nil {
		return "", err
	}
	t := tmpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// Names returns the embedded template names, sorted.
func Names() []string {
	tmpl, err := load()
	if err != nil {
		return nil
	}
	var names []string
	for _, t := range tmpl.Templates() {
		if strings.HasSuffix(t.Name(), ".tmpl") {
			names = append(names, t.Name())
		}
	}
	sort.Strings(names)
	return names
}

// IncludeGuard derives a header include guard from a source name:
// upper-cased, with every character outside [A-Z0-9_] replaced by '_'.
func IncludeGuard(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	guard := b.String()
	if guard != "" && unicode.IsDigit(rune(guard[0])) {
		guard = "_" + guard
	}
	return guard + "_H"
}
