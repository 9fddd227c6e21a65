package makefile

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	stickerrors "github.com/mAmineChniti/sticks/internal/errors"
)

const scenarioTwo = "all: clean install-deps\n\tbuild\n\ninstall-deps:\n\tsudo apt install -y libcurl openssl libssl-dev\n"

func TestNewEditor(t *testing.T) {
	e := NewEditor()
	if e.AggregateTarget != "all" || e.RuleName != "install-deps" || e.InstallPrefix != "sudo apt install -y" {
		t.Errorf("NewEditor() = %+v, want default layout", e)
	}
	if !e.Sorted {
		t.Error("NewEditor() should sort tokens")
	}
}

func TestAddDependencies_CreatesRule(t *testing.T) {
	e := NewEditor()

	got, result, err := e.AddDependencies("all: clean\n\tbuild\n", []string{"libcurl", "openssl"})
	if err != nil {
		t.Fatalf("AddDependencies() error = %v", err)
	}

	want := "all: clean install-deps\n\tbuild\n\ninstall-deps:\n\tsudo apt install -y libcurl openssl\n"
	if got != want {
		t.Errorf("AddDependencies() =\n%q\nwant\n%q", got, want)
	}
	if !result.RuleCreated {
		t.Error("RuleCreated should be true")
	}
	if !reflect.DeepEqual(result.Added, []string{"libcurl", "openssl"}) {
		t.Errorf("Added = %v", result.Added)
	}
}

func TestAddDependencies_MergesIntoExistingRule(t *testing.T) {
	e := NewEditor()

	got, result, err := e.AddDependencies(scenarioTwo, []string{"zlib", "openssl", "boost"})
	if err != nil {
		t.Fatalf("AddDependencies() error = %v", err)
	}

	if !strings.Contains(got, "\tsudo apt install -y boost libcurl libssl-dev openssl zlib\n") {
		t.Errorf("rule not rewritten with sorted union:\n%s", got)
	}
	if strings.Count(got, "install-deps:") != 1 {
		t.Errorf("rule duplicated:\n%s", got)
	}
	if !strings.HasPrefix(got, "all: clean install-deps\n") {
		t.Errorf("aggregate line changed:\n%s", got)
	}
	if !reflect.DeepEqual(result.Present, []string{"openssl"}) {
		t.Errorf("Present = %v, want [openssl]", result.Present)
	}
	if result.RuleCreated {
		t.Error("RuleCreated should be false for an existing rule")
	}
}

func TestAddDependencies_NoOpIsByteForByte(t *testing.T) {
	e := NewEditor()
	// Deliberately unsorted and oddly spaced: a no-op must not normalize it.
	text := "all:  clean   install-deps\n\ninstall-deps:\n    sudo apt install -y  zlib   curl\n"

	got, result, err := e.AddDependencies(text, []string{"curl"})
	if err != nil {
		t.Fatalf("AddDependencies() error = %v", err)
	}
	if got != text {
		t.Errorf("no-op changed text:\n%q\nwant\n%q", got, text)
	}
	if result.Changed() {
		t.Error("Changed() should be false")
	}
	if !reflect.DeepEqual(result.Present, []string{"curl"}) {
		t.Errorf("Present = %v", result.Present)
	}
}

func TestAddDependencies_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"all: clean\n\tbuild\n",
		"all: $(TARGET)\n\n.PHONY: all\n",
		scenarioTwo,
		"CC = gcc\n# no aggregate here\n",
	}
	sets := [][]string{
		{"x"},
		{"libcurl", "openssl"},
		{"openssl", "openssl", " zlib "},
	}

	e := NewEditor()
	for _, in := range inputs {
		for _, set := range sets {
			once, _, err := e.AddDependencies(in, set)
			if err != nil {
				t.Fatalf("AddDependencies(%q, %v) error = %v", in, set, err)
			}
			twice, result, err := e.AddDependencies(once, set)
			if err != nil {
				t.Fatalf("second AddDependencies error = %v", err)
			}
			if twice != once {
				t.Errorf("not idempotent for %q + %v:\nonce  %q\ntwice %q", in, set, once, twice)
			}
			if result.Changed() {
				t.Errorf("second add reported a change for %q + %v", in, set)
			}
		}
	}
}

func TestAddDependencies_Union(t *testing.T) {
	e := NewEditor()

	step1, _, err := e.AddDependencies("all: clean\n", []string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	step2, _, err := e.AddDependencies(step1, []string{"b", "c"})
	if err != nil {
		t.Fatal(err)
	}

	got := e.Dependencies(step2)
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Dependencies() = %v, want [a b c]", got)
	}
}

func TestAddDependencies_InsertionOrder(t *testing.T) {
	e := NewEditor()
	e.Sorted = false

	step1, _, _ := e.AddDependencies("all: clean\n", []string{"zlib", "curl"})
	step2, _, _ := e.AddDependencies(step1, []string{"boost"})

	got := e.Dependencies(step2)
	if !reflect.DeepEqual(got, []string{"zlib", "curl", "boost"}) {
		t.Errorf("Dependencies() = %v, want insertion order", got)
	}
}

func TestAddDependencies_GeneratedMakefile(t *testing.T) {
	text := "TARGET = $(BIN_DIR)/demo\n\n# Default target\nall: $(TARGET)\n\nclean:\n\t@rm -rf build bin\n\n.PHONY: all clean run rebuild\n"

	got, _, err := NewEditor().AddDependencies(text, []string{"libcurl"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\nall: $(TARGET) install-deps\n") {
		t.Errorf("aggregate line not updated:\n%s", got)
	}
	if !strings.Contains(got, ".PHONY: all clean run rebuild\n") {
		t.Errorf(".PHONY line must stay untouched:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n\ninstall-deps:\n\tsudo apt install -y libcurl\n") {
		t.Errorf("rule not appended:\n%s", got)
	}
}

func TestAddDependencies_NoTrailingNewline(t *testing.T) {
	got, _, err := NewEditor().AddDependencies("all: clean", []string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	want := "all: clean install-deps\n\ninstall-deps:\n\tsudo apt install -y x\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAddDependencies_HeaderWithoutCommand(t *testing.T) {
	text := "all: clean install-deps\n\ninstall-deps:\n\nclean:\n\trm -rf build\n"

	got, result, err := NewEditor().AddDependencies(text, []string{"zlib"})
	if err != nil {
		t.Fatal(err)
	}
	want := "all: clean install-deps\n\ninstall-deps:\n\tsudo apt install -y zlib\n\nclean:\n\trm -rf build\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if result.RuleCreated {
		t.Error("header already existed")
	}
}

func TestAddDependencies_KeepsAggregateComment(t *testing.T) {
	got, _, err := NewEditor().AddDependencies("all: clean # build everything\n", []string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "all: clean install-deps # build everything\n") {
		t.Errorf("comment lost: %q", got)
	}
}

func TestAddDependencies_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		names []string
	}{
		{"nil", nil},
		{"empty", []string{}},
		{"blank", []string{"", "  "}},
		{"whitespace inside", []string{"lib curl"}},
		{"colon", []string{"install-deps:"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "all: clean\n"
			got, _, err := NewEditor().AddDependencies(text, tt.names)
			if !errors.Is(err, stickerrors.ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
			if got != text {
				t.Error("text must be unchanged on error")
			}
		})
	}
}

func TestRemoveDependencies_WholeToken(t *testing.T) {
	e := NewEditor()

	got, result, err := e.RemoveDependencies(scenarioTwo, []string{"openssl"})
	if err != nil {
		t.Fatalf("RemoveDependencies() error = %v", err)
	}

	deps := e.Dependencies(got)
	if !reflect.DeepEqual(deps, []string{"libcurl", "libssl-dev"}) {
		t.Errorf("Dependencies() = %v, want [libcurl libssl-dev]", deps)
	}
	for _, tok := range strings.Fields(got) {
		if tok == "openssl" {
			t.Errorf("openssl still present as a token:\n%s", got)
		}
	}
	if !strings.HasPrefix(got, "all: clean install-deps\n") {
		t.Errorf("aggregate should keep install-deps while deps remain:\n%s", got)
	}
	if result.RuleDeleted {
		t.Error("rule should survive")
	}
}

func TestRemoveDependencies_SubstringIsNotAMatch(t *testing.T) {
	text := "all: install-deps\n\ninstall-deps:\n\tsudo apt install -y libopenssl-dev libssl-dev\n"

	got, result, err := NewEditor().RemoveDependencies(text, []string{"openssl", "ssl"})
	if err != nil {
		t.Fatal(err)
	}
	if got != text {
		t.Errorf("text changed although no whole token matched:\n%s", got)
	}
	if result.Changed() {
		t.Error("Changed() should be false")
	}
	if !reflect.DeepEqual(result.Missing, []string{"openssl", "ssl"}) {
		t.Errorf("Missing = %v", result.Missing)
	}
}

func TestRemoveDependencies_LastOneDeletesRule(t *testing.T) {
	e := NewEditor()

	step, _, err := e.RemoveDependencies(scenarioTwo, []string{"openssl"})
	if err != nil {
		t.Fatal(err)
	}
	got, result, err := e.RemoveDependencies(step, []string{"libcurl", "libssl-dev"})
	if err != nil {
		t.Fatal(err)
	}

	want := "all: clean\n\tbuild\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !result.RuleDeleted {
		t.Error("RuleDeleted should be true")
	}
	if e.HasRule(got) {
		t.Error("HasRule() should be false after deleting the rule")
	}
}

func TestRemoveDependencies_RuleInMiddle(t *testing.T) {
	text := "all: install-deps build\n\ninstall-deps:\n\tsudo apt install -y zlib\n\nbuild:\n\tgcc main.c\n"

	got, _, err := NewEditor().RemoveDependencies(text, []string{"zlib"})
	if err != nil {
		t.Fatal(err)
	}
	want := "all: build\n\nbuild:\n\tgcc main.c\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRemoveDependencies_NoRule(t *testing.T) {
	text := "all: clean\n\tbuild\n"

	got, result, err := NewEditor().RemoveDependencies(text, []string{"libcurl"})
	if err != nil {
		t.Fatal(err)
	}
	if got != text {
		t.Error("text must be unchanged without a rule")
	}
	if result.Changed() || !reflect.DeepEqual(result.Missing, []string{"libcurl"}) {
		t.Errorf("result = %+v, want libcurl missing", result)
	}
}

func TestRemoveDependencies_InvalidInput(t *testing.T) {
	_, _, err := NewEditor().RemoveDependencies(scenarioTwo, nil)
	if !errors.Is(err, stickerrors.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestAddThenRemove_IsInverse(t *testing.T) {
	inputs := []string{
		"all: clean\n\tbuild\n",
		"all: $(TARGET)\n\nclean:\n\trm -rf bin\n",
		"CC = gcc\n",
	}

	e := NewEditor()
	for _, in := range inputs {
		added, _, err := e.AddDependencies(in, []string{"x"})
		if err != nil {
			t.Fatal(err)
		}
		removed, _, err := e.RemoveDependencies(added, []string{"x"})
		if err != nil {
			t.Fatal(err)
		}
		if e.HasRule(removed) {
			t.Errorf("rule block left behind for %q:\n%s", in, removed)
		}
		if removed != in {
			t.Errorf("remove(add(T)) = %q, want %q", removed, in)
		}
	}
}

func TestAggregateSyncInvariant(t *testing.T) {
	e := NewEditor()
	text := "all: clean\n\tbuild\n"

	steps := []struct {
		add  bool
		deps []string
	}{
		{true, []string{"a"}},
		{true, []string{"b", "c"}},
		{false, []string{"a"}},
		{false, []string{"zzz"}},
		{false, []string{"b", "c"}},
		{true, []string{"d"}},
		{false, []string{"d"}},
	}

	for i, step := range steps {
		var err error
		if step.add {
			text, _, err = e.AddDependencies(text, step.deps)
		} else {
			text, _, err = e.RemoveDependencies(text, step.deps)
		}
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}

		aggregate := strings.SplitN(text, "\n", 2)[0]
		prereqs, _ := splitPrerequisites(aggregate, "all")
		listed := containsToken(prereqs, "install-deps")
		nonEmpty := len(e.Dependencies(text)) > 0
		if listed != nonEmpty {
			t.Errorf("step %d: aggregate lists rule = %v, rule non-empty = %v\n%s", i, listed, nonEmpty, text)
		}
	}
}

func TestDependencies_FirstBlockWins(t *testing.T) {
	text := "install-deps:\n\tsudo apt install -y one\n\ninstall-deps:\n\tsudo apt install -y two\n"

	got := NewEditor().Dependencies(text)
	if !reflect.DeepEqual(got, []string{"one"}) {
		t.Errorf("Dependencies() = %v, want [one]", got)
	}
}

func TestDependencies_PrefixMustEndAtWhitespace(t *testing.T) {
	text := "install-deps:\n\tsudo apt install -yq zlib\n"

	if got := NewEditor().Dependencies(text); got != nil {
		t.Errorf("Dependencies() = %v, want nil for a different command", got)
	}
}

func TestCustomLayout(t *testing.T) {
	e := &Editor{
		AggregateTarget: "build",
		RuleName:        "deps",
		InstallPrefix:   "brew install",
		Sorted:          true,
	}

	got, _, err := e.AddDependencies("build: compile\n", []string{"sdl2", "glfw"})
	if err != nil {
		t.Fatal(err)
	}
	want := "build: compile deps\n\ndeps:\n\tbrew install glfw sdl2\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
