package templates

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mAmineChniti/sticks/internal/lang"
)

// ClangFormat mirrors the subset of .clang-format keys sticks writes.
type ClangFormat struct {
	Language                            string `yaml:"Language"`
	Standard                            string `yaml:"Standard"`
	IndentWidth                         int    `yaml:"IndentWidth"`
	UseTab                              string `yaml:"UseTab"`
	TabWidth                            int    `yaml:"TabWidth"`
	ColumnLimit                         int    `yaml:"ColumnLimit"`
	AllowShortFunctionsOnASingleLine    string `yaml:"AllowShortFunctionsOnASingleLine"`
	AllowShortIfStatementsOnASingleLine string `yaml:"AllowShortIfStatementsOnASingleLine"`
	BreakBeforeBraces                   string `yaml:"BreakBeforeBraces"`
	SpaceAfterCStyleCast                bool   `yaml:"SpaceAfterCStyleCast"`
	Cpp11BracedListStyle                *bool  `yaml:"Cpp11BracedListStyle,omitempty"`
}

// NewClangFormat returns the default style for l.
func NewClangFormat(l lang.Language) ClangFormat {
	cf := ClangFormat{
		Language:                            "C",
		Standard:                            "C11",
		IndentWidth:                         4,
		UseTab:                              "ForContinuationAndIndentation",
		TabWidth:                            4,
		ColumnLimit:                         100,
		AllowShortFunctionsOnASingleLine:    "Empty",
		AllowShortIfStatementsOnASingleLine: "Never",
		BreakBeforeBraces:                   "Linux",
		SpaceAfterCStyleCast:                true,
	}
	if l == lang.Cpp {
		braced := true
		cf.Language = "Cpp"
		cf.Standard = "c++17"
		cf.Cpp11BracedListStyle = &braced
	}
	return cf
}

// RenderClangFormat returns the .clang-format document for l.
func RenderClangFormat(l lang.Language) (string, error) {
	out, err := yaml.Marshal(NewClangFormat(l))
	if err != nil {
		return "", fmt.Errorf("marshaling .clang-format: %w", err)
	}
	return "---\n" + string(out), nil
}
