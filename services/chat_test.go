// ABOUTME: Tests for the chat reply service
// ABOUTME: Verifies stub behavior when no model API key is configured

package services

import (
	"context"
	"testing"
)

func TestChatService_NoKey_UsesCannedReplies(t *testing.T) {
	s := NewChatService("", "")
	if s.client != nil {
		t.Fatal("client is non-nil without an API key")
	}

	pool := make(map[string]bool, len(cannedReplies))
	for _, r := range cannedReplies {
		pool[r] = true
	}

	for i := 0; i < 20; i++ {
		reply := s.Reply(context.Background(), "What is the security policy?")
		if !pool[reply] {
			t.Fatalf("reply %q is not in the canned pool", reply)
		}
	}
}

func TestChatService_WithKey_CreatesClient(t *testing.T) {
	s := NewChatService("sk-test", "claude-sonnet-4-5")
	if s.client == nil {
		t.Error("client is nil with an API key set")
	}
	if s.model != "claude-sonnet-4-5" {
		t.Errorf("model = %q, want %q", s.model, "claude-sonnet-4-5")
	}
}
