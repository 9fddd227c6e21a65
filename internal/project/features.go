package project

import (
	"os"
	"path/filepath"

	"github.com/mAmineChniti/sticks/internal/buildsys"
	"github.com/mAmineChniti/sticks/internal/errors"
	"github.com/mAmineChniti/sticks/internal/pkgmgr"
)

// Features detects the features of the project in Dir. For Makefile
// projects the current install-deps names are included.
func (s *Scaffolder) Features() (*Features, error) {
	f, err := NewDetector().Detect(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrNotFound, "project directory not found: "+s.Dir)
		}
		return nil, errors.IOFailure("inspect", s.Dir, err)
	}

	if f.BuildSystem == buildsys.Makefile {
		deps, err := s.Config.Editor().ListFromFile(filepath.Join(f.Path, s.Config.Makefile.Filename))
		if err == nil {
			f.Dependencies = deps
		}
	}
	return f, nil
}

// ConvertResult reports a build system conversion.
type ConvertResult struct {
	From    buildsys.Kind
	To      buildsys.Kind
	Removed []string
	Created []string
	// DroppedDependencies were listed in the old Makefile's install-deps rule.
	DroppedDependencies []string
}

// ConvertBuildSystem replaces the project's build files with fresh ones for to.
func (s *Scaffolder) ConvertBuildSystem(to buildsys.Kind) (*ConvertResult, error) {
	f, err := s.Features()
	if err != nil {
		return nil, err
	}
	if f.BuildSystem == to {
		return nil, errors.AlreadyConfigured(to.String())
	}

	res := &ConvertResult{From: f.BuildSystem, To: to, DroppedDependencies: f.Dependencies}

	if f.BuildSystem != "" {
		for _, p := range buildsys.For(f.BuildSystem).Paths() {
			path := filepath.Join(f.Path, p)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := os.Remove(path); err != nil {
				return res, errors.IOFailure("remove", path, err)
			}
			s.Logger.Debug("removed build file", "path", path)
			res.Removed = append(res.Removed, p)
		}
	}

	files, err := buildsys.For(to).Render(f.Language, f.Name)
	if err != nil {
		return res, err
	}
	for _, file := range files {
		if _, err := s.writeFile(f.Path, file, true); err != nil {
			return res, err
		}
		res.Created = append(res.Created, file.Path)
	}

	s.Logger.Info("converted build system", "from", res.From, "to", to)
	return res, nil
}

// PackageResult reports a package manager change.
type PackageResult struct {
	Manager pkgmgr.Manager
	File    string
	// Others lists package managers that were already configured.
	Others       []pkgmgr.Manager
	Instructions string
}

// AddPackageManager writes the manifest for m. Adding a manager the project
// already uses is an error; other configured managers are reported.
func (s *Scaffolder) AddPackageManager(m pkgmgr.Manager) (*PackageResult, error) {
	f, err := s.Features()
	if err != nil {
		return nil, err
	}
	if f.HasPackageManager(m) {
		return nil, errors.AlreadyConfigured(m.String())
	}

	gen := pkgmgr.For(m)
	res := &PackageResult{Manager: m, File: gen.FileName(), Others: f.PackageManagers}

	manifest, err := gen.Manifest(f.Name, s.Config.Project.Version)
	if err != nil {
		return res, err
	}
	if _, err := s.writeFile(f.Path, buildsys.File{Path: gen.FileName(), Content: manifest, Mode: 0644}, true); err != nil {
		return res, err
	}

	res.Instructions = gen.Instructions()
	s.Logger.Info("added package manager", "manager", m, "file", gen.FileName())
	return res, nil
}

// RemovePackageManager deletes the manifest sticks writes for m.
func (s *Scaffolder) RemovePackageManager(m pkgmgr.Manager) (*PackageResult, error) {
	gen := pkgmgr.For(m)
	path := filepath.Join(s.Dir, gen.FileName())

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NotConfigured(gen.FileName())
	} else if err != nil {
		return nil, errors.IOFailure("stat", path, err)
	}

	if err := os.Remove(path); err != nil {
		return nil, errors.IOFailure("remove", path, err)
	}
	s.Logger.Info("removed package manager", "manager", m, "file", gen.FileName())
	return &PackageResult{Manager: m, File: gen.FileName()}, nil
}
