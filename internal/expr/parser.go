package expr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Parsing errors. All are recoverable input errors.
var (
	// ErrMissingEquals is returned when a statement has no '=' at all.
	ErrMissingEquals = errors.New("assignment must contain '='")
	// ErrEmptyTarget is returned when the left side of '=' is blank.
	ErrEmptyTarget = errors.New("left side of assignment is empty")
	// ErrNoAssignments is returned when the input holds no statements.
	ErrNoAssignments = errors.New("no assignments provided")
)

// Runs of semicolons and newlines act as a single statement separator.
var separatorPattern = regexp.MustCompile(`[;\n]+`)

// ParseAssignments splits text into statements and parses each one.
// Blank statements are dropped. Within a statement the first '=' splits
// target from right-hand side; both sides are trimmed.
func ParseAssignments(text string) ([]Assignment, error) {
	var assignments []Assignment
	for _, segment := range separatorPattern.Split(text, -1) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		target, rhs, found := strings.Cut(segment, "=")
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrMissingEquals, segment)
		}
		target = strings.TrimSpace(target)
		if target == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyTarget, segment)
		}
		assignments = append(assignments, Assignment{
			Target: target,
			RHS:    strings.TrimSpace(rhs),
		})
	}
	if len(assignments) == 0 {
		return nil, ErrNoAssignments
	}
	return assignments, nil
}
