// Package makefile edits the install-deps rule of a generated Makefile.
//
// The editor works on plain text: it finds the aggregate target line
// ("all: ...") and the dependency rule block ("install-deps:" followed by
// its command line), rewrites only those lines and leaves every other line
// byte-for-byte as it was. Membership is decided on whole whitespace
// separated tokens, so "ssl" never matches inside "libssl-dev".
package makefile

import (
	"sort"
	"strings"
	"unicode"

	"github.com/mAmineChniti/sticks/internal/errors"
)

// Defaults matching the Makefiles sticks generates.
const (
	DefaultFilename        = "Makefile"
	DefaultAggregateTarget = "all"
	DefaultRuleName        = "install-deps"
	DefaultInstallPrefix   = "sudo apt install -y"
)

// Editor rewrites the dependency rule and keeps the aggregate target in sync.
// The zero value is not usable; use NewEditor or fill every field.
type Editor struct {
	// AggregateTarget is the target whose prerequisites list RuleName.
	AggregateTarget string
	// RuleName is the name of the dependency rule.
	RuleName string
	// InstallPrefix starts the rule's command line; the tokens after it are
	// the dependency names.
	InstallPrefix string
	// Sorted rewrites the token list in lexicographic order. When false,
	// insertion order is kept.
	Sorted bool
}

// NewEditor returns an editor for the default Makefile layout.
func NewEditor() *Editor {
	return &Editor{
		AggregateTarget: DefaultAggregateTarget,
		RuleName:        DefaultRuleName,
		InstallPrefix:   DefaultInstallPrefix,
		Sorted:          true,
	}
}

// AddResult reports what AddDependencies did.
type AddResult struct {
	// Added lists names that were not in the rule before.
	Added []string
	// Present lists requested names that were already in the rule.
	Present []string
	// RuleCreated is true when the rule block did not exist.
	RuleCreated bool
}

// Changed reports whether the text was modified.
func (r AddResult) Changed() bool { return len(r.Added) > 0 }

// RemoveResult reports what RemoveDependencies did.
type RemoveResult struct {
	// Removed lists names taken out of the rule.
	Removed []string
	// Missing lists requested names that were not in the rule.
	Missing []string
	// RuleDeleted is true when the last dependency went and the block was dropped.
	RuleDeleted bool
}

// Changed reports whether the text was modified.
func (r RemoveResult) Changed() bool { return len(r.Removed) > 0 }

// AddDependencies returns text with names merged into the dependency rule.
// The rule is created if missing and the aggregate target gains the rule
// name. When every name is already present the text comes back unchanged.
func (e *Editor) AddDependencies(text string, names []string) (string, AddResult, error) {
	var result AddResult

	names, err := normalizeNames(names)
	if err != nil {
		return text, result, err
	}

	doc := e.parse(text)
	current := doc.tokens
	have := make(map[string]bool, len(current))
	for _, tok := range current {
		have[tok] = true
	}

	for _, name := range names {
		if have[name] {
			result.Present = append(result.Present, name)
			continue
		}
		have[name] = true
		result.Added = append(result.Added, name)
	}

	if len(result.Added) == 0 {
		return text, result, nil
	}

	tokens := append(append([]string{}, current...), result.Added...)
	if e.Sorted {
		sort.Strings(tokens)
	}

	// Rewrite the aggregate line in place first; the rule edits below may
	// insert lines and shift indexes.
	if doc.aggregate >= 0 {
		prereqs, comment := splitPrerequisites(doc.lines[doc.aggregate], e.AggregateTarget)
		if !containsToken(prereqs, e.RuleName) {
			prereqs = append(prereqs, e.RuleName)
			doc.lines[doc.aggregate] = formatTarget(e.AggregateTarget, prereqs, comment)
		}
	}

	switch {
	case doc.command >= 0:
		doc.lines[doc.command] = doc.commandIndent + e.formatCommand(tokens)
	case doc.ruleStart >= 0:
		doc.insert(doc.ruleStart+1, "\t"+e.formatCommand(tokens))
	default:
		if n := len(doc.lines); n > 0 && !isBlank(doc.lines[n-1]) {
			doc.lines = append(doc.lines, "")
		}
		doc.lines = append(doc.lines, e.RuleName+":", "\t"+e.formatCommand(tokens))
		doc.trailingNewline = true
		result.RuleCreated = true
	}

	return doc.String(), result, nil
}

// RemoveDependencies returns text with names taken out of the dependency
// rule. If no dependency remains the rule block is deleted and the rule name
// is dropped from the aggregate target. When the rule does not exist or none
// of the names are in it the text comes back unchanged.
func (e *Editor) RemoveDependencies(text string, names []string) (string, RemoveResult, error) {
	var result RemoveResult

	names, err := normalizeNames(names)
	if err != nil {
		return text, result, err
	}

	doc := e.parse(text)
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}

	have := make(map[string]bool, len(doc.tokens))
	var remaining []string
	for _, tok := range doc.tokens {
		have[tok] = true
		if drop[tok] {
			continue
		}
		remaining = append(remaining, tok)
	}
	for _, name := range names {
		if have[name] {
			result.Removed = append(result.Removed, name)
		} else {
			result.Missing = append(result.Missing, name)
		}
	}

	if doc.ruleStart < 0 || len(result.Removed) == 0 {
		return text, result, nil
	}

	if len(remaining) > 0 {
		if e.Sorted {
			sort.Strings(remaining)
		}
		doc.lines[doc.command] = doc.commandIndent + e.formatCommand(remaining)
		return doc.String(), result, nil
	}

	if doc.aggregate >= 0 {
		prereqs, comment := splitPrerequisites(doc.lines[doc.aggregate], e.AggregateTarget)
		if containsToken(prereqs, e.RuleName) {
			kept := prereqs[:0]
			for _, p := range prereqs {
				if p != e.RuleName {
					kept = append(kept, p)
				}
			}
			doc.lines[doc.aggregate] = formatTarget(e.AggregateTarget, kept, comment)
		}
	}

	// Drop the block together with one separating blank line so that
	// removing a freshly added rule restores the original layout.
	start, end := doc.ruleStart, doc.ruleEnd
	switch {
	case start > 0 && isBlank(doc.lines[start-1]):
		start--
	case end < len(doc.lines) && isBlank(doc.lines[end]):
		end++
	}
	doc.lines = append(doc.lines[:start], doc.lines[end:]...)
	result.RuleDeleted = true

	return doc.String(), result, nil
}

// Dependencies returns the dependency names currently listed in the rule,
// in file order. It returns nil when the rule does not exist.
func (e *Editor) Dependencies(text string) []string {
	return e.parse(text).tokens
}

// HasRule reports whether text contains the dependency rule header.
func (e *Editor) HasRule(text string) bool {
	return e.parse(text).ruleStart >= 0
}

func (e *Editor) formatCommand(tokens []string) string {
	return e.InstallPrefix + " " + strings.Join(tokens, " ")
}

// document is the line view of a build file plus the positions the editor cares about.
type document struct {
	lines           []string
	trailingNewline bool

	aggregate int // index of the aggregate target line, -1 if absent
	ruleStart int // index of the "<rule>:" header, -1 if absent
	ruleEnd   int // index one past the last line of the rule block
	command   int // index of the install command line, -1 if absent

	commandIndent string
	tokens        []string
}

func (e *Editor) parse(text string) *document {
	doc := &document{aggregate: -1, ruleStart: -1, command: -1}

	if strings.HasSuffix(text, "\n") {
		doc.trailingNewline = true
		text = text[:len(text)-1]
	}
	if text != "" || doc.trailingNewline {
		doc.lines = strings.Split(text, "\n")
	}

	header := e.RuleName + ":"
	for i := 0; i < len(doc.lines); i++ {
		line := doc.lines[i]

		if doc.aggregate < 0 && strings.HasPrefix(line, e.AggregateTarget+":") {
			doc.aggregate = i
			continue
		}

		if doc.ruleStart >= 0 || strings.TrimRight(line, " \t\r") != header {
			continue
		}

		doc.ruleStart = i
		j := i + 1
		for ; j < len(doc.lines) && !isBlank(doc.lines[j]); j++ {
			if doc.command >= 0 {
				continue
			}
			if indent, toks, ok := e.parseCommand(doc.lines[j]); ok {
				doc.command = j
				doc.commandIndent = indent
				doc.tokens = toks
			}
		}
		doc.ruleEnd = j
		i = j - 1
	}

	return doc
}

// parseCommand splits an install command line into its leading whitespace
// and dependency tokens. ok is false when the line does not start with the
// install prefix followed by whitespace or end of line.
func (e *Editor) parseCommand(line string) (indent string, tokens []string, ok bool) {
	body := strings.TrimLeft(line, " \t")
	indent = line[:len(line)-len(body)]
	if !strings.HasPrefix(body, e.InstallPrefix) {
		return "", nil, false
	}
	rest := body[len(e.InstallPrefix):]
	if rest != "" && !unicode.IsSpace(rune(rest[0])) {
		return "", nil, false
	}
	return indent, strings.Fields(rest), true
}

func (d *document) insert(at int, line string) {
	d.lines = append(d.lines, "")
	copy(d.lines[at+1:], d.lines[at:])
	d.lines[at] = line
	if d.aggregate >= at {
		d.aggregate++
	}
}

// String renders the document back to text.
func (d *document) String() string {
	if len(d.lines) == 0 {
		return ""
	}
	out := strings.Join(d.lines, "\n")
	if d.trailingNewline {
		out += "\n"
	}
	return out
}

// splitPrerequisites returns the prerequisite tokens of a "target: a b c"
// line and any trailing "# comment".
func splitPrerequisites(line, target string) (prereqs []string, comment string) {
	body := strings.TrimRight(line[len(target)+1:], "\r")
	if idx := strings.Index(body, "#"); idx >= 0 {
		comment = strings.TrimSpace(body[idx:])
		body = body[:idx]
	}
	return strings.Fields(body), comment
}

func formatTarget(target string, prereqs []string, comment string) string {
	var sb strings.Builder
	sb.WriteString(target)
	sb.WriteString(":")
	if len(prereqs) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(prereqs, " "))
	}
	if comment != "" {
		sb.WriteString(" ")
		sb.WriteString(comment)
	}
	return sb.String()
}

func containsToken(tokens []string, tok string) bool {
	for _, t := range tokens {
		if t == tok {
			return true
		}
	}
	return false
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// normalizeNames trims, de-duplicates and validates names, keeping order.
func normalizeNames(names []string) ([]string, error) {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
			return nil, errors.InvalidName("dependency", name, "contains whitespace")
		}
		if strings.ContainsAny(name, "#:") {
			return nil, errors.InvalidName("dependency", name, "contains a Makefile metacharacter")
		}
		seen[name] = true
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil, errors.NoNames("dependency")
	}
	return out, nil
}
