// ABOUTME: Login command: prompts for credentials and caches the session
// ABOUTME: Uses a huh form when credentials are not passed as flags

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rimki/rimki/cli/internal/client"
	"github.com/rimki/rimki/cli/internal/session"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and cache a session token",
	Long:  `Authenticate against the RIMKI backend and cache the issued token for later commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return runLogin(ctx)
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted if omitted)")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(ctx context.Context) error {
	username := loginUsername
	password := loginPassword

	if username == "" || password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Username").
					Value(&username),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&password),
			),
		).WithTheme(huh.ThemeBase())

		if err := form.Run(); err != nil {
			return err
		}
	}

	c := client.New(GetAPIURL())
	resp, err := c.Login(ctx, username, password)
	if err != nil {
		// A failed login never clears an existing session
		return err
	}

	profile := &session.Profile{
		ID:       resp.User.ID,
		Username: resp.User.Username,
		Email:    resp.User.Email,
	}
	if err := Sessions().Persist(resp.Token, profile); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	if IsJSONOutput() {
		out, _ := json.Marshal(map[string]string{
			"message":  resp.Message,
			"username": resp.User.Username,
		})
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	fmt.Printf("Logged in as %s\n", resp.User.Username)
	return nil
}
