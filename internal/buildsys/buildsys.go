// Package buildsys generates the build files for a project: a Makefile, or a
// CMakeLists.txt with release and debug helper scripts.
package buildsys

import (
	"strings"

	"github.com/mAmineChniti/sticks/internal/errors"
	"github.com/mAmineChniti/sticks/internal/lang"
	"github.com/mAmineChniti/sticks/internal/templates"
)

// Kind is a supported build system.
type Kind string

const (
	// Makefile is a plain GNU make project.
	Makefile Kind = "makefile"
	// CMake is a CMake project.
	CMake Kind = "cmake"
)

// Parse converts a user supplied name into a Kind.
func Parse(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "makefile", "make":
		return Makefile, nil
	case "cmake":
		return CMake, nil
	}
	return "", errors.UnsupportedValue("build system", s, []string{"makefile", "cmake"})
}

// String returns the display name.
func (k Kind) String() string {
	switch k {
	case Makefile:
		return "Makefile"
	case CMake:
		return "CMake"
	}
	return string(k)
}

// Valid reports whether k is a known build system.
func (k Kind) Valid() bool {
	return k == Makefile || k == CMake
}

// File is a generated file, relative to the project root.
type File struct {
	Path    string
	Content string
	Mode    uint32
}

// Generator renders the build files for one build system.
type Generator interface {
	// Kind returns the build system this generator renders.
	Kind() Kind
	// Name returns the display name.
	Name() string
	// FileName returns the main build file name.
	FileName() string
	// Paths lists every file Render produces.
	Paths() []string
	// Render returns every file the build system needs.
	Render(l lang.Language, project string) ([]File, error)
}

// For returns the generator for k. Unknown kinds fall back to Makefile.
func For(k Kind) Generator {
	if k == CMake {
		return CMakeGenerator{}
	}
	return MakefileGenerator{}
}

// MakefileGenerator renders a single Makefile.
type MakefileGenerator struct{}

func (MakefileGenerator) Kind() Kind       { return Makefile }
func (MakefileGenerator) Name() string     { return "Makefile" }
func (MakefileGenerator) FileName() string { return "Makefile" }

func (g MakefileGenerator) Paths() []string { return []string{g.FileName()} }

func (g MakefileGenerator) Render(l lang.Language, project string) ([]File, error) {
	content, err := templates.Render(templates.Makefile, data(g, l, project))
	if err != nil {
		return nil, err
	}
	return []File{{Path: g.FileName(), Content: content, Mode: 0644}}, nil
}

// CMakeGenerator renders CMakeLists.txt plus build.sh and debug.sh.
type CMakeGenerator struct{}

func (CMakeGenerator) Kind() Kind       { return CMake }
func (CMakeGenerator) Name() string     { return "CMake" }
func (CMakeGenerator) FileName() string { return "CMakeLists.txt" }

func (g CMakeGenerator) Render(l lang.Language, project string) ([]File, error) {
	d := data(g, l, project)
	specs := []struct {
		path string
		tmpl string
		mode uint32
	}{
		{g.FileName(), templates.CMakeLists, 0644},
		{"build.sh", templates.BuildScript, 0755},
		{"debug.sh", templates.DebugScript, 0755},
	}

	files := make([]File, 0, len(specs))
	for _, s := range specs {
		content, err := templates.Render(s.tmpl, d)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: s.path, Content: content, Mode: s.mode})
	}
	return files, nil
}

func (g CMakeGenerator) Paths() []string {
	return []string{g.FileName(), "build.sh", "debug.sh"}
}

func data(g Generator, l lang.Language, project string) templates.Data {
	return templates.Data{
		Project:     project,
		Language:    l,
		BuildSystem: string(g.Kind()),
		BuildFile:   g.FileName(),
	}
}
