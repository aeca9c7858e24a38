// ABOUTME: Logout command: discards the cached session
// ABOUTME: Purely client-side; the token itself expires on its own

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the cached session",
	Long: `Remove the cached token and profile. The server keeps no session state,
so the token simply stops being sent; it remains valid until its expiry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := Sessions().Clear(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
