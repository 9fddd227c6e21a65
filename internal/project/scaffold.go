package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mAmineChniti/sticks/internal/buildsys"
	"github.com/mAmineChniti/sticks/internal/config"
	"github.com/mAmineChniti/sticks/internal/errors"
	"github.com/mAmineChniti/sticks/internal/lang"
	"github.com/mAmineChniti/sticks/internal/logging"
	"github.com/mAmineChniti/sticks/internal/pkgmgr"
	"github.com/mAmineChniti/sticks/internal/templates"
)

// Options selects what Create writes.
type Options struct {
	Language       lang.Language
	BuildSystem    buildsys.Kind
	PackageManager pkgmgr.Manager // empty for none
	EditorFiles    bool
	Version        string
}

// Result lists what a scaffolding operation did. Paths are relative to Dir.
type Result struct {
	Dir          string
	Name         string
	Created      []string
	Skipped      []string
	Instructions string
}

// Scaffolder creates and edits projects rooted under Dir.
type Scaffolder struct {
	// Dir is the working directory: the parent for New, the project for everything else.
	Dir    string
	Config *config.Config
	Logger *logging.Logger
}

// NewScaffolder returns a Scaffolder for dir. A nil cfg uses defaults.
func NewScaffolder(dir string, cfg *config.Config) *Scaffolder {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Scaffolder{
		Dir:    dir,
		Config: cfg,
		Logger: logging.With("dir", dir),
	}
}

// DefaultOptions returns the options implied by the configuration.
func (s *Scaffolder) DefaultOptions() Options {
	p := s.Config.Project
	opts := Options{
		Language:    p.Language,
		BuildSystem: p.BuildSystem,
		EditorFiles: p.EditorFiles,
		Version:     p.Version,
	}
	if m, err := pkgmgr.Parse(p.PackageManager); err == nil {
		opts.PackageManager = m
	}
	return opts
}

// New creates <Dir>/<name> and scaffolds a project in it. The directory
// must not exist yet.
func (s *Scaffolder) New(name string, opts Options) (*Result, error) {
	if err := validateProjectName(name); err != nil {
		return nil, err
	}

	root := filepath.Join(s.Dir, name)
	if _, err := os.Stat(root); err == nil {
		return nil, errors.DirectoryExists(root)
	} else if !os.IsNotExist(err) {
		return nil, errors.IOFailure("stat", root, err)
	}

	if err := os.Mkdir(root, 0755); err != nil {
		return nil, errors.IOFailure("create directory", root, err)
	}
	s.Logger.Info("created project directory", "path", root)

	return s.create(root, name, opts)
}

// Init scaffolds a project into Dir itself, named after the directory.
// Files that already exist are kept and reported as skipped.
func (s *Scaffolder) Init(opts Options) (*Result, error) {
	abs, err := filepath.Abs(s.Dir)
	if err != nil {
		return nil, errors.IOFailure("resolve", s.Dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.IOFailure("stat", abs, err)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, abs+" is not a directory")
	}
	return s.create(abs, filepath.Base(abs), opts)
}

// Create scaffolds the project called name into root. Existing files are
// never overwritten.
func (s *Scaffolder) Create(root, name string, opts Options) (*Result, error) {
	if err := validateProjectName(name); err != nil {
		return nil, err
	}
	return s.create(root, name, opts)
}

func (s *Scaffolder) create(root, name string, opts Options) (*Result, error) {
	opts = s.fill(opts)
	res := &Result{Dir: root, Name: name}

	for _, dir := range []string{"src", "include"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			return res, errors.IOFailure("create directory", filepath.Join(root, dir), err)
		}
	}

	gen := buildsys.For(opts.BuildSystem)
	data := templates.Data{
		Project:     name,
		Language:    opts.Language,
		BuildSystem: string(gen.Kind()),
		BuildFile:   gen.FileName(),
	}

	files, err := s.projectFiles(gen, data, opts)
	if err != nil {
		return res, err
	}

	if opts.PackageManager != "" {
		pm := pkgmgr.For(opts.PackageManager)
		manifest, err := pm.Manifest(name, opts.Version)
		if err != nil {
			return res, err
		}
		files = append(files, buildsys.File{Path: pm.FileName(), Content: manifest, Mode: 0644})
		res.Instructions = pm.Instructions()
	}

	for _, f := range files {
		created, err := s.writeFile(root, f, false)
		if err != nil {
			return res, err
		}
		if created {
			res.Created = append(res.Created, f.Path)
		} else {
			res.Skipped = append(res.Skipped, f.Path)
		}
	}

	s.Logger.Info("scaffolded project",
		"name", name,
		"language", opts.Language,
		"build_system", opts.BuildSystem,
		"created", len(res.Created),
		"skipped", len(res.Skipped))
	return res, nil
}

// projectFiles renders everything except the package manager manifest.
func (s *Scaffolder) projectFiles(gen buildsys.Generator, data templates.Data, opts Options) ([]buildsys.File, error) {
	var files []buildsys.File

	render := func(path, tmpl string, mode uint32) error {
		content, err := templates.Render(tmpl, data)
		if err != nil {
			return err
		}
		files = append(files, buildsys.File{Path: path, Content: content, Mode: mode})
		return nil
	}

	if err := render(filepath.Join("src", "main."+opts.Language.Extension()), templates.Main, 0644); err != nil {
		return nil, err
	}

	build, err := gen.Render(opts.Language, data.Project)
	if err != nil {
		return nil, err
	}
	files = append(files, build...)

	common := []struct {
		path string
		tmpl string
	}{
		{"README.md", templates.Readme},
		{".gitignore", templates.GitIgnore},
		{".gitattributes", templates.GitAttributes},
	}
	for _, c := range common {
		if err := render(c.path, c.tmpl, 0644); err != nil {
			return nil, err
		}
	}

	if opts.EditorFiles {
		editor := []struct {
			path string
			tmpl string
		}{
			{".editorconfig", templates.EditorConfig},
			{filepath.Join(".vscode", "settings.json"), templates.VSCodeSettings},
			{filepath.Join(".vscode", "launch.json"), templates.VSCodeLaunch},
			{filepath.Join(".vscode", "tasks.json"), templates.VSCodeTasks},
		}
		for _, e := range editor {
			if err := render(e.path, e.tmpl, 0644); err != nil {
				return nil, err
			}
		}

		clang, err := templates.RenderClangFormat(opts.Language)
		if err != nil {
			return nil, err
		}
		files = append(files, buildsys.File{Path: ".clang-format", Content: clang, Mode: 0644})
	}

	return files, nil
}

// InstallHooks writes the pre-commit hook into .git/hooks when the project
// is a git repository.
func (s *Scaffolder) InstallHooks() (*Result, error) {
	hooksDir := filepath.Join(s.Dir, ".git", "hooks")
	res := &Result{Dir: s.Dir, Name: filepath.Base(s.Dir)}
	if info, err := os.Stat(filepath.Join(s.Dir, ".git")); err != nil || !info.IsDir() {
		return res, errors.WithSuggestion(errors.ErrNotFound,
			"not a git repository",
			"Run 'git init' first, then install the hooks again.")
	}

	content, err := templates.Render(templates.PreCommitHook, templates.Data{
		Project:  res.Name,
		Language: lang.Detect(filepath.Join(s.Dir, "src")),
	})
	if err != nil {
		return res, err
	}

	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return res, errors.IOFailure("create directory", hooksDir, err)
	}
	f := buildsys.File{Path: filepath.Join(".git", "hooks", "pre-commit"), Content: content, Mode: 0755}
	created, err := s.writeFile(s.Dir, f, false)
	if err != nil {
		return res, err
	}
	if created {
		res.Created = append(res.Created, f.Path)
	} else {
		res.Skipped = append(res.Skipped, f.Path)
	}
	return res, nil
}

// fill replaces unset options with configured defaults.
func (s *Scaffolder) fill(opts Options) Options {
	def := s.DefaultOptions()
	if opts.Language == "" {
		opts.Language = def.Language
	}
	if opts.BuildSystem == "" {
		opts.BuildSystem = def.BuildSystem
	}
	if opts.Version == "" {
		opts.Version = def.Version
	}
	return opts
}

// writeFile writes f under root, creating parent directories. It reports
// false without writing when the file exists and overwrite is off.
func (s *Scaffolder) writeFile(root string, f buildsys.File, overwrite bool) (bool, error) {
	path := filepath.Join(root, f.Path)

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			s.Logger.Debug("file exists, skipping", "path", path)
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, errors.IOFailure("create directory", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(f.Content), os.FileMode(f.Mode)); err != nil {
		return false, errors.IOFailure("write", path, err)
	}
	// WriteFile honours the umask; scripts must stay executable.
	if err := os.Chmod(path, os.FileMode(f.Mode)); err != nil {
		return false, errors.IOFailure("chmod", path, err)
	}
	s.Logger.Debug("wrote file", "path", path)
	return true, nil
}

func validateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NoNames("project")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return errors.InvalidName("project", name, "must be a plain directory name")
	}
	if strings.ContainsAny(name, " \t\n") {
		return errors.InvalidName("project", name, "must not contain whitespace")
	}
	return nil
}
