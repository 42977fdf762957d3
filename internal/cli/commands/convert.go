package commands

import (
	"fmt"
	"math/big"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dzformation/algopascal/internal/cli/output"
	"github.com/dzformation/algopascal/internal/numeral"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <integer>",
		Short: "Convert a decimal integer to binary, octal and hexadecimal",
		Example: `  # Convert a number
  algopascal convert 125

  # Negative numbers work too
  algopascal convert -- -42

  # As JSON
  algopascal convert 125 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0])
		},
	}
}

func runConvert(cmd *cobra.Command, raw string) error {
	cc := FromCommand(cmd)

	value, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return fmt.Errorf("%q is not a signed decimal integer", raw)
	}

	res := numeral.ConvertToBases(value)
	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(res)
	}
	renderBaseTable(r, res, nil)
	return nil
}

// renderBaseTable prints a four-base result, optionally preceded by a
// detected-base row.
func renderBaseTable(r *output.Renderer, res numeral.Result, detected *numeral.Base) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(table.Row{"Base", "Value"})
	if detected != nil {
		t.AppendRow(table.Row{"detected", detected.String()})
		t.AppendSeparator()
	}
	t.AppendRows([]table.Row{
		{"decimal", res.Decimal},
		{"binary", res.Binary},
		{"octal", res.Octal},
		{"hexadecimal", res.Hexadecimal},
	})

	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
