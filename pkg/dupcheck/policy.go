package dupcheck

import (
	"fmt"
	"strings"
)

// MalformedPolicy decides what happens to a selected line whose extraction
// pattern does not match.
type MalformedPolicy int

// Malformed line policies.
const (
	// MalformedError aborts the check with a *MalformedLineError.
	MalformedError MalformedPolicy = iota
	// MalformedSkip drops the line.
	MalformedSkip
	// MalformedGroup files every unmatched line under one absent name, so two
	// or more of them are reported as a duplicate of UnmatchedName.
	MalformedGroup
)

// UnmatchedName is the name reported for lines grouped by MalformedGroup.
const UnmatchedName = "<unmatched>"

// String returns the configuration spelling of the policy.
func (p MalformedPolicy) String() string {
	switch p {
	case MalformedError:
		return "error"
	case MalformedSkip:
		return "skip"
	case MalformedGroup:
		return "group"
	default:
		return "unknown"
	}
}

// ParseMalformedPolicy converts a string to a MalformedPolicy.
// Returns MalformedError and false if the string is not a known policy.
func ParseMalformedPolicy(s string) (MalformedPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error":
		return MalformedError, true
	case "skip":
		return MalformedSkip, true
	case "group":
		return MalformedGroup, true
	default:
		return MalformedError, false
	}
}

// PolicyNames lists the accepted policy spellings.
func PolicyNames() []string {
	return []string{"error", "skip", "group"}
}

// MarshalText implements encoding.TextMarshaler.
func (p MalformedPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *MalformedPolicy) UnmarshalText(text []byte) error {
	v, ok := ParseMalformedPolicy(string(text))
	if !ok {
		return fmt.Errorf("unknown malformed-line policy %q (expected one of %s)",
			string(text), strings.Join(PolicyNames(), ", "))
	}
	*p = v
	return nil
}
