package commands

import (
	"github.com/spf13/cobra"

	"github.com/dzformation/algopascal/internal/cli/output"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := FromCommand(cmd).Renderer
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(map[string]string{
					"version":    version,
					"build_date": buildDate,
					"git_commit": gitCommit,
				})
			}
			r.Printf("algopascal %s (built %s, commit %s)\n", version, buildDate, gitCommit)
			return nil
		},
	}
}
