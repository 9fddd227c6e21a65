package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mAmineChniti/sticks/internal/buildsys"
	"github.com/mAmineChniti/sticks/internal/errors"
	"github.com/mAmineChniti/sticks/internal/lang"
	"github.com/mAmineChniti/sticks/internal/templates"
)

// SourcesResult lists the source files AddSources wrote or skipped.
type SourcesResult struct {
	Extension string
	Added     []string
	Skipped   []string
}

// AddSources writes a source file and a matching header into src/ for each
// name. The source extension follows the sources already present.
func (s *Scaffolder) AddSources(names []string) (*SourcesResult, error) {
	cleaned, err := normalizeSourceNames(names)
	if err != nil {
		return nil, err
	}

	srcDir := filepath.Join(s.Dir, "src")
	if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
		return nil, errors.SrcDirNotFound(srcDir)
	}

	ext := lang.Detect(srcDir).Extension()
	res := &SourcesResult{Extension: ext}

	for _, name := range cleaned {
		source := name + "." + ext
		if _, err := os.Stat(filepath.Join(srcDir, source)); err == nil {
			s.Logger.Debug("source exists, skipping", "name", source)
			res.Skipped = append(res.Skipped, source)
			continue
		}

		data := templates.Data{Name: name}
		body, err := templates.Render(templates.Source, data)
		if err != nil {
			return res, err
		}
		header, err := templates.Render(templates.Header, data)
		if err != nil {
			return res, err
		}

		if _, err := s.writeFile(srcDir, buildsys.File{Path: source, Content: body, Mode: 0644}, false); err != nil {
			return res, err
		}
		// A hand-written header with the same name is kept.
		if _, err := s.writeFile(srcDir, buildsys.File{Path: name + ".h", Content: header, Mode: 0644}, false); err != nil {
			return res, err
		}
		res.Added = append(res.Added, source)
	}

	return res, nil
}

// normalizeSourceNames trims names, drops blanks and duplicates, and strips
// a trailing source or header extension.
func normalizeSourceNames(names []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		for _, ext := range []string{".c", ".cpp", ".cc", ".cxx", ".h"} {
			name = strings.TrimSuffix(name, ext)
		}
		if name == "" {
			continue
		}
		if strings.ContainsAny(name, "/\\ \t") || name == "." || name == ".." {
			return nil, errors.InvalidName("source", raw, "must be a plain file name")
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		return nil, errors.NoNames("source")
	}
	return out, nil
}
