// ABOUTME: Whoami command: shows the current session's profile
// ABOUTME: Verifies the token against the server, not just the local cache

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return runWhoami(ctx)
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(ctx context.Context) error {
	c, err := AuthedClient()
	if err != nil {
		return err
	}

	profile, err := c.Profile(ctx)
	if err != nil {
		return FriendlyError(err)
	}

	if IsJSONOutput() {
		out, _ := json.Marshal(profile)
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	fmt.Printf("Username: %s\n", profile.Username)
	if profile.Email != "" {
		fmt.Printf("Email:    %s\n", profile.Email)
	}
	fmt.Printf("ID:       %s\n", profile.ID)
	return nil
}
