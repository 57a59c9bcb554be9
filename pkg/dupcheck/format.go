package dupcheck

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule pairs a selection prefix with an extraction pattern.
// Rules are stateless and safe for concurrent use.
type Rule struct {
	Prefix  string         // Literal text a declaration line starts with
	Pattern *regexp.Regexp // Line-anchored; the first capturing group is the name
}

// NewRule compiles pattern and validates it against prefix.
// A pattern without a leading ^ is anchored to the start of the line.
func NewRule(prefix, pattern string) (Rule, error) {
	if prefix == "" {
		return Rule{}, fmt.Errorf("rule prefix is required")
	}
	if pattern == "" {
		return Rule{}, fmt.Errorf("rule %q: pattern is required", prefix)
	}
	if !strings.HasPrefix(pattern, "^") {
		pattern = "^(?:" + pattern + ")"
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: invalid pattern: %w", prefix, err)
	}
	if re.NumSubexp() < 1 {
		return Rule{}, fmt.Errorf("rule %q: pattern %q has no capturing group", prefix, pattern)
	}
	return Rule{Prefix: prefix, Pattern: re}, nil
}

// MustRule is like NewRule but panics on error. Used for built-in formats.
func MustRule(prefix, pattern string) Rule {
	r, err := NewRule(prefix, pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// Selects reports whether line is a declaration for this rule.
func (r Rule) Selects(line string) bool {
	return strings.HasPrefix(line, r.Prefix)
}

// Extract returns the declared name, or false when the pattern does not match.
func (r Rule) Extract(line string) (string, bool) {
	m := r.Pattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Format is a named set of declaration rules.
type Format struct {
	Name        string
	Description string
	Rules       []Rule
	Builtin     bool
}

// NewFormat creates a format from already validated rules.
func NewFormat(name, description string, rules ...Rule) Format {
	return Format{
		Name:        name,
		Description: description,
		Rules:       rules,
	}
}

// Validate checks that the format can select declarations.
func (f Format) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("format name is required")
	}
	if len(f.Rules) == 0 {
		return fmt.Errorf("format %q has no rules", f.Name)
	}
	for i, r := range f.Rules {
		if r.Prefix == "" || r.Pattern == nil {
			return fmt.Errorf("format %q: rule %d is incomplete", f.Name, i)
		}
	}
	return nil
}

// Match classifies a line. selected is false for lines that no rule's prefix
// accepts; for selected lines, ok reports whether the name was extracted.
// The first rule whose prefix matches decides.
func (f Format) Match(line string) (name string, selected, ok bool) {
	for _, r := range f.Rules {
		if !r.Selects(line) {
			continue
		}
		name, ok = r.Extract(line)
		return name, true, ok
	}
	return "", false, false
}

// RuleInfo describes a rule for listings.
type RuleInfo struct {
	Prefix  string `json:"prefix" yaml:"prefix"`
	Pattern string `json:"pattern" yaml:"pattern"`
}

// FormatInfo provides metadata about a format for documentation/tooling.
type FormatInfo struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Builtin     bool       `json:"builtin" yaml:"builtin"`
	Rules       []RuleInfo `json:"rules" yaml:"rules"`
}

// Info returns the format's metadata.
func (f Format) Info() FormatInfo {
	rules := make([]RuleInfo, len(f.Rules))
	for i, r := range f.Rules {
		rules[i] = RuleInfo{Prefix: r.Prefix, Pattern: r.Pattern.String()}
	}
	return FormatInfo{
		Name:        f.Name,
		Description: f.Description,
		Builtin:     f.Builtin,
		Rules:       rules,
	}
}
