// Package dupcheck detects highlight groups that a color scheme defines more
// than once.
//
// # Formats
//
// A Format is a named set of rules. Each Rule pairs a literal line prefix
// (the selection predicate) with a line-anchored pattern whose first capturing
// group is the declared name:
//
//	rule, err := dupcheck.NewRule("call s:hi(", `^call s:hi\('(\w+)'`)
//	format := dupcheck.NewFormat("call-hi", "s:hi() helper calls", rule)
//
// The conventions the spring-night scheme used over time are registered as
// built-in formats; see All and Lookup. Additional formats can be registered
// with Register.
//
// # Checking
//
//	checker, err := dupcheck.New(dupcheck.Config{Format: format})
//	if err != nil {
//		return err // format has no usable rules
//	}
//	report, err := checker.CheckFile("colors/spring-night.vim")
//	if err != nil {
//		return err // read failure or malformed declaration
//	}
//	if err := report.Err(); err != nil {
//		return err // one *DuplicateNameError per repeated name
//	}
//
// Only lines starting at column 0 are selected. Indented declarations, such as
// the GUI and terminal alternatives the generator writes inside
// `if s:gui_running` blocks, never contribute a name.
package dupcheck
