package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dzformation/algopascal/internal/cli/output"
	"github.com/dzformation/algopascal/internal/codegen"
)

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	var algoName, pascalName string

	cmd := &cobra.Command{
		Use:   "compile <expression>",
		Short: "Compile assignment statements to Algo and Pascal snippets",
		Long: `Compile one or more assignment statements into equivalent Algo and
Pascal programs. Statements are separated by ';' or newlines; variables
that are referenced but never assigned become inputs read at the top of
the generated program, and assignments are reordered so that each one
only uses previously computed values.`,
		Example: `  algopascal compile "SOM = A + B"

  # Multiple statements; H is computed before SOM needs it
  algopascal compile "SOM = A / H + B; H = T + 10"

  # Custom program names
  algopascal compile "S = a + b" --algo-name Somme --pascal-name Somme`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, strings.Join(args, " "), algoName, pascalName)
		},
	}

	cmd.Flags().StringVar(&algoName, "algo-name", "", "Name of the generated Algo program")
	cmd.Flags().StringVar(&pascalName, "pascal-name", "", "Name of the generated Pascal program")
	return cmd
}

func runCompile(cmd *cobra.Command, expression, algoName, pascalName string) error {
	cc := FromCommand(cmd)
	if algoName == "" {
		algoName = cc.Config.AlgoName
	}
	if pascalName == "" {
		pascalName = cc.Config.PascalName
	}

	snippets, err := codegen.Compile(expression, algoName, pascalName)
	if err != nil {
		return err
	}

	r := cc.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(snippets)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(2, "Algo"))
		r.Println(output.FormatCodeBlock("", snippets.Algo))
		r.Println("")
		r.Println(output.FormatHeader(2, "Pascal"))
		r.Println(output.FormatCodeBlock("pascal", snippets.Pascal))
	default:
		r.Println(snippets.Algo)
		r.Println("")
		r.Println(snippets.Pascal)
	}
	return nil
}
