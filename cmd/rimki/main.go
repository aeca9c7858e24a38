// ABOUTME: Entry point for the rimki CLI
// ABOUTME: Delegates to the cobra command tree

package main

import (
	"os"

	"github.com/rimki/rimki/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
