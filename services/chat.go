// ABOUTME: Assistant reply service for the chat endpoint
// ABOUTME: Canned responses by default; proxies to Claude when an API key is set

package services

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const chatSystemPrompt = "You are the RIMKI assistant. You answer questions about " +
	"the company's security policy based on the documents employees have uploaded. " +
	"Keep answers short and factual."

// cannedReplies is the stub response pool used when no model is configured
var cannedReplies = []string{
	"I understand you're asking about our security policy. Based on the uploaded documents, I can help you with that.",
	"That's a great question! According to our security policy document, the answer is that all employees must follow the company's confidentiality agreement.",
	"I'd be happy to help you with that. Could you provide more details about what specific aspect of the security policy you're referring to?",
	"Based on the uploaded documents, the policy states that all sensitive information must be handled according to our data protection guidelines.",
}

// ChatService produces assistant replies
type ChatService struct {
	client *anthropic.Client
	model  anthropic.Model
}

// NewChatService creates a chat service. With an empty apiKey the service only
// returns canned replies, matching the original stub behavior.
func NewChatService(apiKey, model string) *ChatService {
	s := &ChatService{model: anthropic.Model(model)}
	if apiKey != "" {
		client := anthropic.NewClient(option.WithAPIKey(apiKey))
		s.client = &client
	}
	return s
}

// Reply returns the assistant's answer to message. Model failures degrade to a
// canned reply rather than failing the request.
func (s *ChatService) Reply(ctx context.Context, message string) string {
	if s.client == nil {
		return s.canned()
	}

	answer, err := s.askModel(ctx, message)
	if err != nil {
		slog.Warn("Chat model call failed, falling back to canned reply", "error", err)
		return s.canned()
	}
	return answer
}

func (s *ChatService) canned() string {
	return cannedReplies[rand.IntN(len(cannedReplies))]
}

func (s *ChatService) askModel(ctx context.Context, message string) (string, error) {
	msg, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     s.model,
		MaxTokens: 512,
		System: []anthropic.TextBlockParam{
			{Text: chatSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(message)),
		},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(variant.Text)
		}
	}
	if sb.Len() == 0 {
		return s.canned(), nil
	}
	return sb.String(), nil
}
