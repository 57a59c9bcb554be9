package dupcheck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrDuplicateName is matched by every *DuplicateNameError.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrMalformedLine is matched by every *MalformedLineError.
	ErrMalformedLine = errors.New("malformed declaration")
	// ErrUnknownFormat is returned when a format name is not registered.
	ErrUnknownFormat = errors.New("unknown format")
)

// DuplicateNameError reports a name declared on more than one line.
type DuplicateNameError struct {
	Path  string
	Name  string
	Lines []int
}

func (e *DuplicateNameError) Error() string {
	lines := make([]string, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = strconv.Itoa(l)
	}
	if e.Path == "" {
		return fmt.Sprintf("'%s' duplicates! (lines %s)", e.Name, strings.Join(lines, ", "))
	}
	return fmt.Sprintf("'%s' duplicates! (%s lines %s)", e.Name, e.Path, strings.Join(lines, ", "))
}

// Is reports whether target is ErrDuplicateName.
func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// MalformedLineError reports a selected line the extraction pattern rejected.
type MalformedLineError struct {
	Path string
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	loc := strconv.Itoa(e.Line)
	if e.Path != "" {
		loc = e.Path + ":" + loc
	}
	return fmt.Sprintf("%s: declaration does not match extraction pattern: %q", loc, e.Text)
}

// Is reports whether target is ErrMalformedLine.
func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}
