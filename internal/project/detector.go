// Package project scaffolds C/C++ projects and inspects existing ones.
package project

import (
	"os"
	"path/filepath"

	"github.com/mAmineChniti/sticks/internal/buildsys"
	"github.com/mAmineChniti/sticks/internal/lang"
	"github.com/mAmineChniti/sticks/internal/pkgmgr"
)

// MarkerKind groups markers by what they reveal about a project.
type MarkerKind string

const (
	// MarkerBuild identifies the build system.
	MarkerBuild MarkerKind = "build"
	// MarkerPackage identifies a package manager.
	MarkerPackage MarkerKind = "package"
	// MarkerStructure records layout and tooling files.
	MarkerStructure MarkerKind = "structure"
)

// Marker represents a file or directory that indicates a project feature.
type Marker struct {
	// Name is the file or directory name to look for.
	Name string
	// IsDir indicates whether this is a directory marker.
	IsDir bool
	// Kind is what the marker tells us.
	Kind MarkerKind
	// Value is the build system or package manager the marker implies.
	Value string
}

// DefaultMarkers are checked in order; the first build marker found wins,
// so CMakeLists.txt takes precedence over Makefile.
var DefaultMarkers = []Marker{
	{Name: "CMakeLists.txt", Kind: MarkerBuild, Value: string(buildsys.CMake)},
	{Name: "Makefile", Kind: MarkerBuild, Value: string(buildsys.Makefile)},
	{Name: "conanfile.txt", Kind: MarkerPackage, Value: string(pkgmgr.Conan)},
	{Name: "conanfile.py", Kind: MarkerPackage, Value: string(pkgmgr.Conan)},
	{Name: "vcpkg.json", Kind: MarkerPackage, Value: string(pkgmgr.Vcpkg)},
	{Name: "src", IsDir: true, Kind: MarkerStructure},
	{Name: "include", IsDir: true, Kind: MarkerStructure},
	{Name: ".git", IsDir: true, Kind: MarkerStructure},
	{Name: ".vscode", IsDir: true, Kind: MarkerStructure},
	{Name: ".gitignore", Kind: MarkerStructure},
	{Name: ".editorconfig", Kind: MarkerStructure},
	{Name: ".clang-format", Kind: MarkerStructure},
}

// Features describes what a project directory contains.
type Features struct {
	Path            string           `json:"path" yaml:"path"`
	Name            string           `json:"name" yaml:"name"`
	Language        lang.Language    `json:"language" yaml:"language"`
	BuildSystem     buildsys.Kind    `json:"build_system,omitempty" yaml:"build_system,omitempty"`
	PackageManagers []pkgmgr.Manager `json:"package_managers" yaml:"package_managers"`
	HasSrc          bool             `json:"has_src" yaml:"has_src"`
	HasInclude      bool             `json:"has_include" yaml:"has_include"`
	IsGitRepo       bool             `json:"is_git_repo" yaml:"is_git_repo"`
	HasVSCode       bool             `json:"has_vscode" yaml:"has_vscode"`
	HasGitignore    bool             `json:"has_gitignore" yaml:"has_gitignore"`
	HasEditorConfig bool             `json:"has_editorconfig" yaml:"has_editorconfig"`
	HasClangFormat  bool             `json:"has_clang_format" yaml:"has_clang_format"`
	Dependencies    []string         `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Markers         []string         `json:"markers" yaml:"markers"`
}

// HasPackageManager reports whether m was detected.
func (f *Features) HasPackageManager(m pkgmgr.Manager) bool {
	for _, pm := range f.PackageManagers {
		if pm == m {
			return true
		}
	}
	return false
}

// Detector detects project features from marker files.
type Detector struct {
	// Markers are the markers to check.
	Markers []Marker
}

// NewDetector creates a new Detector with default markers.
func NewDetector() *Detector {
	return &Detector{
		Markers: DefaultMarkers,
	}
}

// Detect inspects dir. It fails only when dir is missing or not a directory.
func (d *Detector) Detect(dir string) (*Features, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, os.ErrNotExist
	}

	f := &Features{
		Path:            absPath,
		Name:            filepath.Base(absPath),
		Language:        lang.Detect(filepath.Join(absPath, "src")),
		PackageManagers: []pkgmgr.Manager{},
		Markers:         []string{},
	}

	for _, marker := range d.Markers {
		if !d.checkMarker(absPath, marker) {
			continue
		}
		f.Markers = append(f.Markers, marker.Name)

		switch marker.Kind {
		case MarkerBuild:
			if f.BuildSystem == "" {
				f.BuildSystem = buildsys.Kind(marker.Value)
			}
		case MarkerPackage:
			if m := pkgmgr.Manager(marker.Value); !f.HasPackageManager(m) {
				f.PackageManagers = append(f.PackageManagers, m)
			}
		case MarkerStructure:
			switch marker.Name {
			case "src":
				f.HasSrc = true
			case "include":
				f.HasInclude = true
			case ".git":
				f.IsGitRepo = true
			case ".vscode":
				f.HasVSCode = true
			case ".gitignore":
				f.HasGitignore = true
			case ".editorconfig":
				f.HasEditorConfig = true
			case ".clang-format":
				f.HasClangFormat = true
			}
		}
	}

	return f, nil
}

// checkMarker checks if a specific marker exists in the directory.
func (d *Detector) checkMarker(dir string, marker Marker) bool {
	info, err := os.Stat(filepath.Join(dir, marker.Name))
	if err != nil {
		return false
	}
	return info.IsDir() == marker.IsDir
}

// IsProjectDirectory returns true if dir has a build file.
func (d *Detector) IsProjectDirectory(dir string) bool {
	f, err := d.Detect(dir)
	return err == nil && f.BuildSystem != ""
}
