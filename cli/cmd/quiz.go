// ABOUTME: Quiz commands: upload documents, create quizzes, list quizzes
// ABOUTME: All subcommands require a cached session token

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

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Build and list quizzes",
}

var quizUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a source document for quiz building",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return runQuizUpload(ctx, args[0])
	},
}

var quizCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a quiz and print its shareable link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return runQuizCreate(ctx, args[0])
	},
}

var quizListCmd = &cobra.Command{
	Use:   "list",
	Short: "List created quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return runQuizList(ctx)
	},
}

func init() {
	quizCmd.AddCommand(quizUploadCmd)
	quizCmd.AddCommand(quizCreateCmd)
	quizCmd.AddCommand(quizListCmd)
	rootCmd.AddCommand(quizCmd)
}

func runQuizUpload(ctx context.Context, path string) error {
	c, err := AuthedClient()
	if err != nil {
		return err
	}

	resp, err := c.UploadDocument(ctx, path)
	if err != nil {
		return FriendlyError(err)
	}

	if IsJSONOutput() {
		out, _ := json.Marshal(resp.Document)
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	fmt.Printf("Uploaded %s (%d bytes, id %s)\n", resp.Document.Filename, resp.Document.Size, resp.Document.ID)
	return nil
}

func runQuizCreate(ctx context.Context, title string) error {
	c, err := AuthedClient()
	if err != nil {
		return err
	}

	resp, err := c.CreateQuiz(ctx, title)
	if err != nil {
		return FriendlyError(err)
	}

	if IsJSONOutput() {
		out, _ := json.Marshal(resp.Quiz)
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	fmt.Printf("Created quiz %q\nLink: %s\n", resp.Quiz.Title, resp.Quiz.Link)
	return nil
}

func runQuizList(ctx context.Context) error {
	c, err := AuthedClient()
	if err != nil {
		return err
	}

	resp, err := c.ListQuizzes(ctx)
	if err != nil {
		return FriendlyError(err)
	}

	if IsJSONOutput() {
		out, _ := json.Marshal(resp.Quizzes)
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	if len(resp.Quizzes) == 0 {
		fmt.Println("No quizzes yet")
		return nil
	}
	for _, q := range resp.Quizzes {
		fmt.Printf("%s  %s\n    %s\n", q.CreatedAt, q.Title, q.Link)
	}
	return nil
}
