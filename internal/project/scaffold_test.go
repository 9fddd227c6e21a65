package project

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/mAmineChniti/sticks/internal/buildsys"
	"github.com/mAmineChniti/sticks/internal/config"
	stickerrors "github.com/mAmineChniti/sticks/internal/errors"
	"github.com/mAmineChniti/sticks/internal/lang"
	"github.com/mAmineChniti/sticks/internal/pkgmgr"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestNew_CProjectDefaults(t *testing.T) {
	parent := t.TempDir()
	s := NewScaffolder(parent, nil)

	res, err := s.New("demo", s.DefaultOptions())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	root := filepath.Join(parent, "demo")
	if res.Dir != root || res.Name != "demo" {
		t.Errorf("result = %+v", res)
	}
	if len(res.Skipped) != 0 {
		t.Errorf("fresh project skipped files: %v", res.Skipped)
	}

	for _, p := range []string{
		"src/main.c",
		"Makefile",
		"README.md",
		".gitignore",
		".gitattributes",
		".editorconfig",
		".clang-format",
		".vscode/settings.json",
		".vscode/launch.json",
		".vscode/tasks.json",
	} {
		if !exists(filepath.Join(root, p)) {
			t.Errorf("missing %s", p)
		}
	}
	if info, err := os.Stat(filepath.Join(root, "include")); err != nil || !info.IsDir() {
		t.Error("include directory not created")
	}

	mk := readFile(t, filepath.Join(root, "Makefile"))
	if !strings.Contains(mk, "CC = gcc") || !strings.Contains(mk, "TARGET = $(BIN_DIR)/demo") {
		t.Errorf("unexpected Makefile:\n%s", mk)
	}
	if exists(filepath.Join(root, "CMakeLists.txt")) {
		t.Error("Makefile project should not have CMakeLists.txt")
	}
}

func TestNew_CppCMakeVcpkg(t *testing.T) {
	parent := t.TempDir()
	s := NewScaffolder(parent, nil)

	res, err := s.New("my_app", Options{
		Language:       lang.Cpp,
		BuildSystem:    buildsys.CMake,
		PackageManager: pkgmgr.Vcpkg,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	root := filepath.Join(parent, "my_app")

	if !exists(filepath.Join(root, "src", "main.cpp")) {
		t.Error("missing src/main.cpp")
	}
	if !strings.Contains(readFile(t, filepath.Join(root, "CMakeLists.txt")), "project(my_app CXX)") {
		t.Error("CMakeLists.txt has wrong project line")
	}
	for _, script := range []string{"build.sh", "debug.sh"} {
		info, err := os.Stat(filepath.Join(root, script))
		if err != nil {
			t.Fatalf("missing %s", script)
		}
		if info.Mode().Perm()&0100 == 0 {
			t.Errorf("%s is not executable: %v", script, info.Mode())
		}
	}
	manifest := readFile(t, filepath.Join(root, "vcpkg.json"))
	if !strings.Contains(manifest, `"name": "my-app"`) {
		t.Errorf("vcpkg.json:\n%s", manifest)
	}
	if !strings.Contains(res.Instructions, "vcpkg") {
		t.Errorf("Instructions = %q", res.Instructions)
	}
	// EditorFiles was left false
	if exists(filepath.Join(root, ".vscode")) || exists(filepath.Join(root, ".clang-format")) {
		t.Error("editor files written although EditorFiles is false")
	}
}

func TestNew_DirectoryExists(t *testing.T) {
	parent := t.TempDir()
	mkdir(t, parent, "demo")

	_, err := NewScaffolder(parent, nil).New("demo", Options{})
	if !errors.Is(err, stickerrors.ErrExists) {
		t.Errorf("error = %v, want ErrExists", err)
	}
}

func TestNew_InvalidName(t *testing.T) {
	tests := []struct {
		name string
		want error
	}{
		{"", stickerrors.ErrInvalidInput},
		{"a/b", stickerrors.ErrInvalidInput},
		{"..", stickerrors.ErrInvalidInput},
		{"my app", stickerrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScaffolder(t.TempDir(), nil).New(tt.name, Options{})
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInit_KeepsExistingFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "existing")
	mkdir(t, dir, "")
	custom := "# my readme\n"
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := NewScaffolder(dir, nil).Init(Options{Language: lang.C})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if res.Name != "existing" {
		t.Errorf("Name = %q, want directory name", res.Name)
	}
	if got := readFile(t, filepath.Join(dir, "README.md")); got != custom {
		t.Errorf("README.md overwritten: %q", got)
	}
	if len(res.Skipped) != 1 || res.Skipped[0] != "README.md" {
		t.Errorf("Skipped = %v, want [README.md]", res.Skipped)
	}
	if !strings.Contains(readFile(t, filepath.Join(dir, "Makefile")), "$(BIN_DIR)/existing") {
		t.Error("Makefile target not named after the directory")
	}
}

func TestInit_Twice(t *testing.T) {
	dir := t.TempDir()
	s := NewScaffolder(dir, nil)

	first, err := s.Init(s.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Init(s.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	if len(second.Created) != 0 {
		t.Errorf("second Init created %v", second.Created)
	}
	a := append([]string(nil), first.Created...)
	b := append([]string(nil), second.Skipped...)
	sort.Strings(a)
	sort.Strings(b)
	if strings.Join(a, ",") != strings.Join(b, ",") {
		t.Errorf("second Init skipped %v, want %v", b, a)
	}
}

func TestDefaultOptions_FromConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Project.Language = lang.Cpp
	cfg.Project.BuildSystem = buildsys.CMake
	cfg.Project.PackageManager = "conan"
	cfg.Project.EditorFiles = false

	opts := NewScaffolder(t.TempDir(), cfg).DefaultOptions()
	if opts.Language != lang.Cpp || opts.BuildSystem != buildsys.CMake || opts.PackageManager != pkgmgr.Conan {
		t.Errorf("DefaultOptions() = %+v", opts)
	}
	if opts.EditorFiles {
		t.Error("EditorFiles should follow config")
	}
}

func TestInstallHooks(t *testing.T) {
	dir := t.TempDir()
	s := NewScaffolder(dir, nil)

	_, err := s.InstallHooks()
	if !errors.Is(err, stickerrors.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound outside a git repo", err)
	}

	mkdir(t, dir, ".git")
	res, err := s.InstallHooks()
	if err != nil {
		t.Fatalf("InstallHooks() error = %v", err)
	}
	hook := filepath.Join(dir, ".git", "hooks", "pre-commit")
	info, err := os.Stat(hook)
	if err != nil {
		t.Fatal("pre-commit hook not written")
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Error("pre-commit hook is not executable")
	}
	if len(res.Created) != 1 {
		t.Errorf("Created = %v", res.Created)
	}

	res, err = s.InstallHooks()
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Skipped) != 1 {
		t.Errorf("existing hook should be skipped, got %+v", res)
	}
}
