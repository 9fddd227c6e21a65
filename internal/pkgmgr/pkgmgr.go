// Package pkgmgr writes package manager manifests (Conan, vcpkg) for a project.
package pkgmgr

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/mAmineChniti/sticks/internal/errors"
	"github.com/mAmineChniti/sticks/internal/templates"
)

// Manager is a supported package manager.
type Manager string

const (
	// Conan is the Conan C/C++ package manager.
	Conan Manager = "conan"
	// Vcpkg is Microsoft's vcpkg.
	Vcpkg Manager = "vcpkg"
)

// DefaultVersion is the project version written when none is configured.
const DefaultVersion = "0.1.0"

// All lists the supported package managers.
var All = []Manager{Conan, Vcpkg}

// Parse converts a user supplied name into a Manager.
func Parse(s string) (Manager, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "conan":
		return Conan, nil
	case "vcpkg":
		return Vcpkg, nil
	}
	return "", errors.UnsupportedValue("package manager", s, []string{"conan", "vcpkg"})
}

// String returns the display name.
func (m Manager) String() string {
	switch m {
	case Conan:
		return "Conan"
	case Vcpkg:
		return "vcpkg"
	}
	return string(m)
}

// Generator writes the manifest for one package manager.
type Generator interface {
	Manager() Manager
	Name() string
	// FileName is the manifest sticks writes.
	FileName() string
	// Markers lists every file that means the manager is configured.
	Markers() []string
	Manifest(project, version string) (string, error)
	Instructions() string
}

// For returns the generator for m. Unknown managers fall back to Conan.
func For(m Manager) Generator {
	if m == Vcpkg {
		return VcpkgGenerator{}
	}
	return ConanGenerator{}
}

// ConanGenerator writes conanfile.txt.
type ConanGenerator struct{}

func (ConanGenerator) Manager() Manager  { return Conan }
func (ConanGenerator) Name() string      { return "Conan" }
func (ConanGenerator) FileName() string  { return "conanfile.txt" }
func (ConanGenerator) Markers() []string { return []string{"conanfile.txt", "conanfile.py"} }

// Manifest renders an empty conanfile with the CMake generators enabled.
// Conan text manifests carry no project name or version.
func (ConanGenerator) Manifest(project, version string) (string, error) {
	return templates.Render(templates.ConanfileTemplate, templates.Data{Project: project})
}

func (ConanGenerator) Instructions() string {
	return `To use Conan with this project:

1. Install Conan: pip install conan
2. Add dependencies to conanfile.txt in the [requires] section:
   Example: libcurl/8.4.0
3. Install dependencies: conan install . --build=missing
4. Use the generated CMake toolchain in your CMakeLists.txt`
}

// VcpkgManifest is the vcpkg.json document sticks writes.
type VcpkgManifest struct {
	Schema       string   `json:"$schema,omitempty"`
	Name         string   `json:"name"`
	Version      string   `json:"version-semver,omitempty"`
	Dependencies []string `json:"dependencies"`
}

// VcpkgGenerator writes vcpkg.json.
type VcpkgGenerator struct{}

func (VcpkgGenerator) Manager() Manager  { return Vcpkg }
func (VcpkgGenerator) Name() string      { return "vcpkg" }
func (VcpkgGenerator) FileName() string  { return "vcpkg.json" }
func (VcpkgGenerator) Markers() []string { return []string{"vcpkg.json"} }

// Manifest builds vcpkg.json and validates it against the embedded schema.
// The project name is folded into vcpkg's lowercase-and-hyphens form.
func (g VcpkgGenerator) Manifest(project, version string) (string, error) {
	v, err := normalizeVersion(version)
	if err != nil {
		return "", err
	}

	m := VcpkgManifest{
		Schema:       "https://raw.githubusercontent.com/microsoft/vcpkg-tool/main/docs/vcpkg.schema.json",
		Name:         VcpkgName(project),
		Version:      v,
		Dependencies: []string{},
	}

	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling vcpkg.json: %w", err)
	}

	issues, err := ValidateVcpkg(out)
	if err != nil {
		return "", err
	}
	if len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return "", errors.ManifestInvalid(g.FileName(), msgs)
	}

	return string(out) + "\n", nil
}

func (VcpkgGenerator) Instructions() string {
	return `To use vcpkg with this project:

1. Clone vcpkg: git clone https://github.com/microsoft/vcpkg.git
2. Run bootstrap: ./vcpkg/bootstrap-vcpkg.sh
3. Add dependencies to the "dependencies" array in vcpkg.json:
   Example: "curl"
4. Install: ./vcpkg/vcpkg install
5. Use the vcpkg toolchain with CMake:
   -DCMAKE_TOOLCHAIN_FILE=./vcpkg/scripts/buildsystems/vcpkg.cmake`
}

// VcpkgName lowercases name and replaces every run of characters outside
// [a-z0-9] with a single hyphen.
func VcpkgName(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	if b.Len() == 0 {
		return "project"
	}
	return b.String()
}

func normalizeVersion(version string) (string, error) {
	if version == "" {
		version = DefaultVersion
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return "", errors.InvalidName("version", version, err.Error())
	}
	return v.String(), nil
}
