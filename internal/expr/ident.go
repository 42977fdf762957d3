package expr

import (
	"regexp"
	"strings"
)

var identPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// reserved holds function names that denote calls, never variables.
// Matching is case-insensitive; identifiers themselves are not.
var reserved = map[string]struct{}{
	"sin":  {},
	"cos":  {},
	"tan":  {},
	"sqrt": {},
	"sqr":  {},
	"ln":   {},
	"exp":  {},
	"log":  {},
	"abs":  {},
}

// Reserved reports whether name is a built-in function name.
func Reserved(name string) bool {
	_, ok := reserved[strings.ToLower(name)]
	return ok
}

// Identifiers scans the given texts left to right, in order, and
// returns every identifier in first-seen order with duplicates and
// reserved function names removed. The scan order across texts is
// significant: it fixes the variable ordering in generated code.
func Identifiers(texts ...string) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, text := range texts {
		for _, name := range identPattern.FindAllString(text, -1) {
			if Reserved(name) {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}
