package project

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mAmineChniti/sticks/internal/buildsys"
	"github.com/mAmineChniti/sticks/internal/lang"
	"github.com/mAmineChniti/sticks/internal/pkgmgr"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func mkdir(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, name), 0755); err != nil {
		t.Fatal(err)
	}
}

func TestNewDetector(t *testing.T) {
	d := NewDetector()
	if d == nil {
		t.Fatal("NewDetector returned nil")
	}
	if len(d.Markers) == 0 {
		t.Error("Detector should have default markers")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T, dir string)
		wantBuild buildsys.Kind
		wantPMs   []pkgmgr.Manager
		wantLang  lang.Language
		check     func(t *testing.T, f *Features)
	}{
		{
			name:      "empty directory",
			setup:     func(*testing.T, string) {},
			wantBuild: "",
			wantPMs:   []pkgmgr.Manager{},
			wantLang:  lang.C,
		},
		{
			name: "makefile project",
			setup: func(t *testing.T, dir string) {
				touch(t, dir, "Makefile")
				touch(t, dir, "src/main.c")
			},
			wantBuild: buildsys.Makefile,
			wantPMs:   []pkgmgr.Manager{},
			wantLang:  lang.C,
			check: func(t *testing.T, f *Features) {
				if !f.HasSrc {
					t.Error("HasSrc should be true")
				}
			},
		},
		{
			name: "cmake wins over makefile",
			setup: func(t *testing.T, dir string) {
				touch(t, dir, "Makefile")
				touch(t, dir, "CMakeLists.txt")
				touch(t, dir, "src/main.cpp")
			},
			wantBuild: buildsys.CMake,
			wantPMs:   []pkgmgr.Manager{},
			wantLang:  lang.Cpp,
		},
		{
			name: "conan via conanfile.py",
			setup: func(t *testing.T, dir string) {
				touch(t, dir, "conanfile.py")
				touch(t, dir, "conanfile.txt")
			},
			wantPMs:  []pkgmgr.Manager{pkgmgr.Conan},
			wantLang: lang.C,
		},
		{
			name: "both package managers",
			setup: func(t *testing.T, dir string) {
				touch(t, dir, "vcpkg.json")
				touch(t, dir, "conanfile.txt")
			},
			wantPMs:  []pkgmgr.Manager{pkgmgr.Conan, pkgmgr.Vcpkg},
			wantLang: lang.C,
		},
		{
			name: "structure flags",
			setup: func(t *testing.T, dir string) {
				mkdir(t, dir, ".git")
				mkdir(t, dir, ".vscode")
				mkdir(t, dir, "include")
				touch(t, dir, ".gitignore")
				touch(t, dir, ".editorconfig")
				touch(t, dir, ".clang-format")
			},
			wantPMs:  []pkgmgr.Manager{},
			wantLang: lang.C,
			check: func(t *testing.T, f *Features) {
				if !f.IsGitRepo || !f.HasVSCode || !f.HasInclude || !f.HasGitignore || !f.HasEditorConfig || !f.HasClangFormat {
					t.Errorf("structure flags not all set: %+v", f)
				}
				if f.HasSrc {
					t.Error("HasSrc should be false")
				}
			},
		},
		{
			name: "file named like a directory marker",
			setup: func(t *testing.T, dir string) {
				touch(t, dir, "src")
			},
			wantPMs:  []pkgmgr.Manager{},
			wantLang: lang.C,
			check: func(t *testing.T, f *Features) {
				if f.HasSrc {
					t.Error("a file named src is not a src directory")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			f, err := NewDetector().Detect(dir)
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if f.BuildSystem != tt.wantBuild {
				t.Errorf("BuildSystem = %q, want %q", f.BuildSystem, tt.wantBuild)
			}
			if !reflect.DeepEqual(f.PackageManagers, tt.wantPMs) {
				t.Errorf("PackageManagers = %v, want %v", f.PackageManagers, tt.wantPMs)
			}
			if f.Language != tt.wantLang {
				t.Errorf("Language = %q, want %q", f.Language, tt.wantLang)
			}
			if f.Name != filepath.Base(dir) {
				t.Errorf("Name = %q, want %q", f.Name, filepath.Base(dir))
			}
			if tt.check != nil {
				tt.check(t, f)
			}
		})
	}
}

func TestDetect_Errors(t *testing.T) {
	d := NewDetector()

	if _, err := d.Detect(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}

	dir := t.TempDir()
	touch(t, dir, "file")
	if _, err := d.Detect(filepath.Join(dir, "file")); err == nil {
		t.Error("expected error for a file path")
	}
}

func TestIsProjectDirectory(t *testing.T) {
	d := NewDetector()
	dir := t.TempDir()

	if d.IsProjectDirectory(dir) {
		t.Error("empty directory is not a project")
	}
	touch(t, dir, "CMakeLists.txt")
	if !d.IsProjectDirectory(dir) {
		t.Error("directory with CMakeLists.txt is a project")
	}
}
