package commands

import (
	"errors"
	"io"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/dzformation/algopascal/internal/session"
)

// localChatID identifies the terminal user in the store; the chat REPL
// serves exactly one user per machine.
const localChatID = 1

var (
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	buttonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// NewChatCommand creates the chat command.
func NewChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the bot in a local terminal session",
		Long: `Run the same conversation the webhook serves, but in the terminal.
Send /start to begin, /cancel to return to the menu, Ctrl-D to leave.`,
		Args: cobra.NoArgs,
		RunE: runChat,
	}
}

func runChat(cmd *cobra.Command, _ []string) error {
	cc := FromCommand(cmd)

	catalog, err := loadCatalog(cc.Config.LocalesDir)
	if err != nil {
		return err
	}
	users, err := openStore(cc.Config)
	if err != nil {
		return err
	}
	defer func() { _ = users.Close() }()

	engine := session.NewEngine(catalog, users, cc.Logger)

	historyFile := filepath.Join(filepath.Dir(cc.Config.DataPath), "chat_history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "you> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "bye",
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	username := "local"
	if u, err := user.Current(); err == nil && u.Username != "" {
		username = u.Username
	}

	out := cmd.OutOrStdout()
	printReply := func(reply session.Reply) {
		_, _ = io.WriteString(out, botStyle.Render(reply.Text)+"\n")
		if len(reply.Buttons) > 0 {
			_, _ = io.WriteString(out, buttonStyle.Render("["+strings.Join(reply.Buttons, "] [")+"]")+"\n")
		}
	}

	// Greet like the bot would.
	reply, err := engine.Handle(cmd.Context(), localChatID, username, cc.Config.Language, "/start")
	if err != nil {
		return err
	}
	printReply(reply)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			return nil
		}

		reply, err := engine.Handle(cmd.Context(), localChatID, username, cc.Config.Language, line)
		if err != nil {
			cc.Renderer.Errorf("error: %v\n", err)
			continue
		}
		printReply(reply)
	}
}
