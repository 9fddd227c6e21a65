package makefile

import (
	"os"

	"github.com/mAmineChniti/sticks/internal/errors"
	"github.com/mAmineChniti/sticks/internal/logging"
)

// AddToFile reads the build file at path, adds names to its dependency rule
// and writes it back. The file is only rewritten when something changed.
func (e *Editor) AddToFile(path string, names []string) (AddResult, error) {
	if _, err := normalizeNames(names); err != nil {
		return AddResult{}, err
	}

	text, mode, err := readBuildFile(path, "add a dependency")
	if err != nil {
		return AddResult{}, err
	}

	updated, result, err := e.AddDependencies(text, names)
	if err != nil {
		return result, err
	}
	if !result.Changed() {
		logging.Debug("dependencies already present", "path", path, "names", result.Present)
		return result, nil
	}

	if err := writeBuildFile(path, updated, mode); err != nil {
		return result, err
	}
	logging.Debug("added dependencies", "path", path, "added", result.Added, "rule_created", result.RuleCreated)
	return result, nil
}

// RemoveFromFile reads the build file at path, removes names from its
// dependency rule and writes it back when something changed.
func (e *Editor) RemoveFromFile(path string, names []string) (RemoveResult, error) {
	if _, err := normalizeNames(names); err != nil {
		return RemoveResult{}, err
	}

	text, mode, err := readBuildFile(path, "remove a dependency")
	if err != nil {
		return RemoveResult{}, err
	}

	updated, result, err := e.RemoveDependencies(text, names)
	if err != nil {
		return result, err
	}
	if !result.Changed() {
		logging.Debug("dependencies not found", "path", path, "names", result.Missing)
		return result, nil
	}

	if err := writeBuildFile(path, updated, mode); err != nil {
		return result, err
	}
	logging.Debug("removed dependencies", "path", path, "removed", result.Removed, "rule_deleted", result.RuleDeleted)
	return result, nil
}

// ListFromFile returns the dependency names in the build file at path.
func (e *Editor) ListFromFile(path string) ([]string, error) {
	text, _, err := readBuildFile(path, "list dependencies")
	if err != nil {
		return nil, err
	}
	return e.Dependencies(text), nil
}

// readBuildFile checks that path exists before reading it whole.
func readBuildFile(path, action string) (string, os.FileMode, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", 0, errors.MakefileNotFound(path, action)
	}
	if err != nil {
		return "", 0, errors.IOFailure("stat", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, errors.IOFailure("read", path, err)
	}
	return string(data), info.Mode().Perm(), nil
}

func writeBuildFile(path, text string, mode os.FileMode) error {
	if err := os.WriteFile(path, []byte(text), mode); err != nil {
		return errors.IOFailure("write", path, err)
	}
	return nil
}
