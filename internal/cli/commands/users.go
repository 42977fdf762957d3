package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dzformation/algopascal/internal/cli/output"
)

// NewUsersCommand creates the users command and its subcommands.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE:  runUsersList,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "grant-admin <chat-id>",
		Short: "Grant admin rights to a chat ID",
		Args:  cobra.ExactArgs(1),
		RunE:  runUsersGrantAdmin,
	})
	return cmd
}

func runUsersList(cmd *cobra.Command, _ []string) error {
	cc := FromCommand(cmd)

	users, err := openStore(cc.Config)
	if err != nil {
		return err
	}
	defer func() { _ = users.Close() }()

	list, err := users.ListUsers(cmd.Context())
	if err != nil {
		return err
	}

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]any{"count": len(list), "users": list})
	}

	if len(list) == 0 {
		r.Println("No users recorded yet.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(table.Row{"Chat ID", "Username", "Language", "Last Seen"})
	for _, u := range list {
		t.AppendRow(table.Row{u.ChatID, u.Username, u.Language, u.LastSeen.Format(time.RFC3339)})
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.SetStyle(table.StyleLight)
		t.Render()
	}
	r.Printf("Registered users: %d\n", len(list))
	return nil
}

func runUsersGrantAdmin(cmd *cobra.Command, args []string) error {
	cc := FromCommand(cmd)

	chatID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%q is not a chat ID", args[0])
	}

	users, err := openStore(cc.Config)
	if err != nil {
		return err
	}
	defer func() { _ = users.Close() }()

	if err := users.AddAdmin(cmd.Context(), chatID); err != nil {
		return err
	}
	cc.Renderer.Printf("Chat %d is now an admin.\n", chatID)
	return nil
}
