// Package expr parses free-form algebraic assignment statements and
// computes a dependency-respecting evaluation order for them.
//
// Right-hand sides are never evaluated; they are carried verbatim as
// source text for the code generators.
package expr

// Assignment is one parsed `target = expression` statement. Multiple
// assignments may share a target name; each occurrence is a distinct
// statement keeping its own text and position.
type Assignment struct {
	Target string
	RHS    string
}
