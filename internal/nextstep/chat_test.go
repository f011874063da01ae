package nextstep_test

import (
	"context"
	"errors"
	"testing"

	"nextstep-go/internal/api"
	"nextstep-go/internal/nextstep"
	"nextstep-go/internal/store"
	"nextstep-go/internal/testutil"
)

func TestSendChat(t *testing.T) {
	t.Run("creates and persists a conversation id on first use", func(t *testing.T) {
		st := store.NewMemoryStore()
		backend := testutil.NewMockBackend()
		svc := newTestService(backend, st, nil)

		var seen []string
		backend.SendChatFn = func(ctx context.Context, message, conversationID string) (*api.ChatReply, error) {
			seen = append(seen, conversationID)
			return &api.ChatReply{ConversationID: conversationID, Reply: "hello"}, nil
		}

		if _, err := svc.SendChat(context.Background(), "hi"); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if _, err := svc.SendChat(context.Background(), "how do I start"); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if len(seen) != 2 || seen[0] != "id-1" || seen[1] != "id-1" {
			t.Errorf("conversation ids = %v, want [id-1 id-1]", seen)
		}
		if stored, _ := st.Get(nextstep.KeyChatConversation); stored != "id-1" {
			t.Errorf("persisted conversation id = %q, want id-1", stored)
		}
	})

	t.Run("requires a message", func(t *testing.T) {
		backend := testutil.NewMockBackend()
		svc := newTestService(backend, nil, nil)

		_, err := svc.SendChat(context.Background(), "   ")
		var verr *nextstep.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if got := backend.Calls("SendChat"); got != 0 {
			t.Errorf("SendChat reached the backend %d times", got)
		}
	})
}

func TestChatHistory(t *testing.T) {
	t.Run("nil without a conversation", func(t *testing.T) {
		backend := testutil.NewMockBackend()
		svc := newTestService(backend, nil, nil)

		h, err := svc.ChatHistory(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if h != nil {
			t.Errorf("expected nil history, got %+v", h)
		}
		if got := backend.Calls("ChatHistory"); got != 0 {
			t.Errorf("ChatHistory reached the backend %d times", got)
		}
	})

	t.Run("fetches the persisted conversation", func(t *testing.T) {
		st := store.NewMemoryStore()
		backend := testutil.NewMockBackend()
		svc := newTestService(backend, st, nil)

		if err := st.Set(nextstep.KeyChatConversation, "conv-7"); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		backend.ChatHistoryFn = func(ctx context.Context, conversationID string) (*api.ChatHistory, error) {
			if conversationID != "conv-7" {
				t.Errorf("conversation id = %q, want conv-7", conversationID)
			}
			return &api.ChatHistory{ConversationID: conversationID}, nil
		}

		h, err := svc.ChatHistory(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if h == nil || h.ConversationID != "conv-7" {
			t.Errorf("history = %+v, want conversation conv-7", h)
		}
	})
}

func TestResetConversation(t *testing.T) {
	st := store.NewMemoryStore()
	backend := testutil.NewMockBackend()
	svc := newTestService(backend, st, nil)

	backend.SendChatFn = func(ctx context.Context, message, conversationID string) (*api.ChatReply, error) {
		return &api.ChatReply{ConversationID: conversationID}, nil
	}

	if _, err := svc.SendChat(context.Background(), "hi"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := svc.ResetConversation(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if stored, _ := st.Get(nextstep.KeyChatConversation); stored != "" {
		t.Errorf("persisted conversation id = %q, want empty", stored)
	}

	// The next message starts a fresh conversation.
	if _, err := svc.SendChat(context.Background(), "hi again"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if stored, _ := st.Get(nextstep.KeyChatConversation); stored != "id-2" {
		t.Errorf("new conversation id = %q, want id-2", stored)
	}
}
