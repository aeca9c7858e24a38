// ABOUTME: Chat command: one-shot message or interactive TUI session
// ABOUTME: An unauthorized reply clears the cached session mid-conversation

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	chattui "github.com/rimki/rimki/cli/internal/tui/chat"
)

var chatMessage string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the assistant",
	Long: `Talk to the RIMKI assistant. With --message, send a single message and
print the reply. Without it, open an interactive chat session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if chatMessage != "" {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return runChatOnce(ctx, chatMessage)
		}
		return runChatTUI()
	},
}

func init() {
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "Send a single message instead of opening the TUI")
	rootCmd.AddCommand(chatCmd)
}

func runChatOnce(ctx context.Context, message string) error {
	c, err := AuthedClient()
	if err != nil {
		return err
	}

	resp, err := c.SendMessage(ctx, message)
	if err != nil {
		return FriendlyError(err)
	}

	if IsJSONOutput() {
		out, _ := json.Marshal(resp)
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	fmt.Println(resp.Message)
	return nil
}

func runChatTUI() error {
	c, err := AuthedClient()
	if err != nil {
		return err
	}

	username := "you"
	if user := Sessions().CurrentUser(); user != nil {
		username = user.Username
	}

	finalModel, err := tea.NewProgram(chattui.New(c, username)).Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(chattui.Model); ok && m.Err() != nil {
		return FriendlyError(m.Err())
	}
	return nil
}
