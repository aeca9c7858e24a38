// ABOUTME: Health command for the rimki CLI
// ABOUTME: Checks backend connectivity and reports configured backends

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rimki/rimki/cli/internal/client"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long:  `Check connectivity to the RIMKI backend and report its configured backends.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the health check and returns exit code
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	c := client.New(url)

	resp, err := c.Health(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		out, _ := json.Marshal(map[string]string{
			"backend": url,
			"status":  resp.Status,
			"chat":    resp.Chat,
			"store":   resp.Store,
		})
		fmt.Fprintln(w, string(out))
	} else {
		fmt.Fprintf(w, "Backend: %s\nStatus:  %s\nChat:    %s\nStore:   %s\n",
			url, resp.Status, resp.Chat, resp.Store)
	}

	return 0
}
