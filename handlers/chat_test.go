// ABOUTME: Tests for the chat message handler
// ABOUTME: Verifies validation and the reply envelope with its server timestamp

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rimki/rimki/models"
)

func TestChatMessage_ReturnsReply(t *testing.T) {
	f := newTestFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/message",
		strings.NewReader(`{"message":"Bonjour"}`))
	rec := httptest.NewRecorder()
	f.handler.ChatMessage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp models.ChatResponse
	decodeBody(t, rec, &resp)

	if resp.Message == "" {
		t.Error("reply message is empty")
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", resp.Timestamp, err)
	}
}

func TestChatMessage_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"empty message", `{"message":""}`, "Message is required"},
		{"missing field", `{}`, "Message is required"},
		{"malformed json", `{"message"`, "Invalid request body"},
	}

	f := newTestFixture(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/chat/message", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			f.handler.ChatMessage(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}

			var errResp models.ErrorResponse
			decodeBody(t, rec, &errResp)
			if errResp.Error != tt.wantMsg {
				t.Errorf("error = %q, want %q", errResp.Error, tt.wantMsg)
			}
		})
	}
}
