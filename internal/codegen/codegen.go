// Package codegen turns parsed assignment batches into Algo and Pascal
// source snippets. Rendering is pure string templating: identical input
// always produces byte-identical output.
package codegen

import (
	"fmt"
	"strings"

	"github.com/dzformation/algopascal/internal/expr"
)

// Snippets holds the generated source for both target languages.
type Snippets struct {
	Algo   string `json:"algo"`
	Pascal string `json:"pascal"`
}

// GenerateAlgo renders an Algo program: header, one Reel declaration
// line for every variable, a read statement per input variable and an
// assignment plus labeled print per statement, in the given order.
func GenerateAlgo(name string, assignments []expr.Assignment, inputs, vars []string) string {
	lines := []string{
		fmt.Sprintf("Algo %s;", name),
		fmt.Sprintf("Var %s : Reel;", strings.Join(vars, ", ")),
		"Debut",
	}
	if len(inputs) == 0 {
		lines = append(lines, "    // Pas d'entrees supplementaires")
	}
	for _, in := range inputs {
		lines = append(lines, fmt.Sprintf("    Ecrire(\"%s : \"); Lire(%s);", in, in))
	}
	for _, a := range assignments {
		lines = append(lines, fmt.Sprintf("    %s := %s;", a.Target, a.RHS))
		lines = append(lines, fmt.Sprintf("    Ecrire(\"%s = \", %s);", a.Target, a.Target))
	}
	lines = append(lines, "Fin.")
	return strings.Join(lines, "\n")
}

// GeneratePascal renders the same statements as a Pascal program.
func GeneratePascal(name string, assignments []expr.Assignment, inputs, vars []string) string {
	lines := []string{
		fmt.Sprintf("program %s;", name),
		"",
		"var",
		fmt.Sprintf("  %s: Real;", strings.Join(vars, ", ")),
		"",
		"begin",
	}
	if len(inputs) == 0 {
		lines = append(lines, "  { Pas d'entrees a lire }")
	}
	for _, in := range inputs {
		lines = append(lines, fmt.Sprintf("  Write('%s : '); ReadLn(%s);", in, in))
	}
	for _, a := range assignments {
		lines = append(lines, fmt.Sprintf("  %s := %s;", a.Target, a.RHS))
		lines = append(lines, fmt.Sprintf("  WriteLn('%s = ', %s);", a.Target, a.Target))
	}
	lines = append(lines, "end.")
	return strings.Join(lines, "\n")
}
