package nextstep

import (
	"context"
	"fmt"

	"nextstep-go/internal/api"
)

// SendChat sends a message to the AI mentor. The conversation identifier
// is generated client-side on first use and persisted so follow-up
// messages land in the same conversation.
func (s *Service) SendChat(ctx context.Context, message string) (*api.ChatReply, error) {
	message = trimmed(message)
	if message == "" {
		return nil, &ValidationError{Field: "message", Reason: "message is required"}
	}

	conversationID, err := s.conversationID()
	if err != nil {
		return nil, err
	}
	return s.backend.SendChat(ctx, message, conversationID)
}

// ChatHistory returns the transcript of the current conversation, or nil
// when no conversation has been started.
func (s *Service) ChatHistory(ctx context.Context) (*api.ChatHistory, error) {
	conversationID, err := s.store.Get(KeyChatConversation)
	if err != nil {
		return nil, fmt.Errorf("reading conversation id: %w", err)
	}
	if conversationID == "" {
		return nil, nil
	}
	return s.backend.ChatHistory(ctx, conversationID)
}

// ResetConversation forgets the persisted conversation identifier; the
// next message starts a fresh conversation.
func (s *Service) ResetConversation() error {
	if err := s.store.Delete(KeyChatConversation); err != nil {
		return fmt.Errorf("clearing conversation id: %w", err)
	}
	return nil
}

// conversationID returns the persisted conversation identifier, creating
// and persisting a new one on first use.
func (s *Service) conversationID() (string, error) {
	id, err := s.store.Get(KeyChatConversation)
	if err != nil {
		return "", fmt.Errorf("reading conversation id: %w", err)
	}
	if id != "" {
		return id, nil
	}

	id = s.idgen.New()
	if err := s.store.Set(KeyChatConversation, id); err != nil {
		return "", fmt.Errorf("persisting conversation id: %w", err)
	}
	s.logger.Debug("started conversation", "conversationId", id)
	return id, nil
}
