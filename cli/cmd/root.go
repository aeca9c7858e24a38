// ABOUTME: Root command for the rimki CLI
// ABOUTME: Handles global flags, session access, and unauthorized handling

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rimki/rimki/cli/internal/client"
	"github.com/rimki/rimki/cli/internal/session"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "http://localhost:8080"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "rimki",
	Short: "CLI for the RIMKI assistant",
	Long: `rimki is a command-line client for the RIMKI assistant backend.

Log in once; the session token is cached on disk and attached to every
protected call until it expires or you log out.

Environment Variables:
  RIMKI_API_URL  Backend API URL (default: http://localhost:8080)`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides RIMKI_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("RIMKI_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// Sessions returns the on-disk session cache
func Sessions() *session.Cache {
	return session.New(session.DefaultConfigDir())
}

// AuthedClient returns an API client carrying the cached token.
// Fails when no session is cached; the presence check is client-side only,
// the server still decides whether the token is actually valid.
func AuthedClient() (*client.Client, error) {
	sessions := Sessions()
	if !sessions.IsAuthenticated() {
		return nil, fmt.Errorf("not logged in, run 'rimki login' first")
	}
	return client.New(GetAPIURL()).WithToken(sessions.Token()), nil
}

// FriendlyError translates API errors for display. An unauthorized response
// clears the cached session so the client state matches the server's verdict.
func FriendlyError(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		Sessions().Clear()
		return fmt.Errorf("session expired, please login again")
	}
	return err
}
