package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SendChat sends a message to the AI mentor within the given conversation.
func (c *Client) SendChat(ctx context.Context, message, conversationID string) (*ChatReply, error) {
	body := map[string]string{
		"message":        message,
		"conversationId": conversationID,
	}
	var reply ChatReply
	if err := c.do(ctx, http.MethodPost, "/chat/send", body, &reply); err != nil {
		return nil, fmt.Errorf("sending chat message: %w", err)
	}
	return &reply, nil
}

// ChatHistory returns the transcript of a conversation.
func (c *Client) ChatHistory(ctx context.Context, conversationID string) (*ChatHistory, error) {
	q := url.Values{"conversationId": {conversationID}}
	var history ChatHistory
	if err := c.do(ctx, http.MethodGet, "/chat/history?"+q.Encode(), nil, &history); err != nil {
		return nil, fmt.Errorf("fetching chat history: %w", err)
	}
	return &history, nil
}
