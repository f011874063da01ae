package nextstep

// Store is durable device-local key-value storage. Get returns "" for
// keys that have never been set or were deleted.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Keys for everything the client persists locally. The token mirrors the
// identity provider's session and is stored as-is; its lifetime is managed
// entirely by the provider.
const (
	KeyAuthToken         = "auth_token"
	KeyTheme             = "theme"
	KeyThemeAuto         = "theme_auto"
	KeyChatConversation  = "chat_conversation_id"
	KeyCompletedJourneys = "completed_journeys"
)
