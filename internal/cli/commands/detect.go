package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dzformation/algopascal/internal/cli/output"
	"github.com/dzformation/algopascal/internal/numeral"
)

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <literal>",
		Short: "Detect the base of a numeric literal and convert it",
		Long: `Detect the most likely numeral base of a literal and render its value
in all four bases.

Explicit 0b/0o/0x prefixes force the base. Otherwise it is inferred
from the digits: hex letters mean hexadecimal, an 8 or 9 means decimal,
only zeros and ones mean binary, octal digits with a leading zero mean
octal.`,
		Example: `  algopascal detect 0b1010
  algopascal detect 7F
  algopascal detect 075
  algopascal detect 1_000_000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args[0])
		},
	}
}

func runDetect(cmd *cobra.Command, raw string) error {
	cc := FromCommand(cmd)

	value, base, err := numeral.Detect(raw)
	if err != nil {
		return fmt.Errorf("cannot detect base of %q: %w", raw, err)
	}

	res := numeral.ConvertToBases(value)
	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]any{
			"base":   int(base),
			"result": res,
		})
	}
	renderBaseTable(r, res, &base)
	return nil
}
