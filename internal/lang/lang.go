// Package lang describes the source languages sticks can scaffold.
package lang

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mAmineChniti/sticks/internal/errors"
)

// Language is a supported source language.
type Language string

const (
	// C is the C language.
	C Language = "c"
	// Cpp is the C++ language.
	Cpp Language = "cpp"
)

// All lists the supported languages.
var All = []Language{C, Cpp}

// Parse converts a user supplied name into a Language.
func Parse(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c":
		return C, nil
	case "cpp", "c++", "cxx":
		return Cpp, nil
	}
	return "", errors.UnsupportedValue("language", s, []string{"c", "cpp"})
}

// String returns the display name.
func (l Language) String() string {
	switch l {
	case C:
		return "C"
	case Cpp:
		return "C++"
	}
	return string(l)
}

// Valid reports whether l is a known language.
func (l Language) Valid() bool {
	return l == C || l == Cpp
}

// Compiler returns the compiler used in generated build files.
func (l Language) Compiler() string {
	if l == Cpp {
		return "g++"
	}
	return "gcc"
}

// Extension returns the source file extension without the dot.
func (l Language) Extension() string {
	if l == Cpp {
		return "cpp"
	}
	return "c"
}

// Standard returns the language standard passed to the compiler.
func (l Language) Standard() string {
	if l == Cpp {
		return "c++17"
	}
	return "c11"
}

// CMakeName returns the language name used in CMake's project() call.
func (l Language) CMakeName() string {
	if l == Cpp {
		return "CXX"
	}
	return "C"
}

// Detect inspects srcDir and returns the language of the first source file
// found. Directories without sources default to C.
func Detect(srcDir string) Language {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return C
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.TrimPrefix(filepath.Ext(e.Name()), ".") {
		case "cpp", "cc", "cxx":
			return Cpp
		case "c":
			return C
		}
	}
	return C
}
