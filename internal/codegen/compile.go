package codegen

import (
	"github.com/dzformation/algopascal/internal/expr"
)

// Default program names used when the caller does not supply any.
const (
	DefaultAlgoName   = "Calcul"
	DefaultPascalName = "Calcul"
)

// Compile parses text as one or more assignment statements and renders
// them as Algo and Pascal programs named algoName and pascalName.
//
// Variable roles are derived from the batch: identifiers assigned by
// some statement are computed, every other referenced identifier is an
// input that the generated code reads before use. The declaration list
// holds assigned variables first, in resolved order, then input
// variables in first-seen order.
//
// Parse failures are returned unchanged; resolution and rendering
// cannot fail.
func Compile(text, algoName, pascalName string) (Snippets, error) {
	assignments, err := expr.ParseAssignments(text)
	if err != nil {
		return Snippets{}, err
	}

	targets := make([]string, len(assignments))
	rhs := make([]string, len(assignments))
	for i, a := range assignments {
		targets[i] = a.Target
		rhs[i] = a.RHS
	}
	assigned := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		assigned[t] = struct{}{}
	}

	// Scan order is all right-hand sides, then all targets; it fixes
	// the input-variable ordering in the generated code.
	var inputs []string
	for _, name := range expr.Identifiers(append(rhs, targets...)...) {
		if _, ok := assigned[name]; !ok {
			inputs = append(inputs, name)
		}
	}

	ordered := expr.Resolve(assignments)

	vars := make([]string, 0, len(ordered)+len(inputs))
	declared := make(map[string]struct{}, len(ordered)+len(inputs))
	for _, a := range ordered {
		if _, ok := declared[a.Target]; ok {
			continue
		}
		declared[a.Target] = struct{}{}
		vars = append(vars, a.Target)
	}
	for _, name := range inputs {
		if _, ok := declared[name]; ok {
			continue
		}
		declared[name] = struct{}{}
		vars = append(vars, name)
	}

	if algoName == "" {
		algoName = DefaultAlgoName
	}
	if pascalName == "" {
		pascalName = DefaultPascalName
	}
	return Snippets{
		Algo:   GenerateAlgo(algoName, ordered, inputs, vars),
		Pascal: GeneratePascal(pascalName, ordered, inputs, vars),
	}, nil
}
