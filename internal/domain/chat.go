package domain

import "time"

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one entry of a session's chat history. SessionID is
// empty for global pipeline milestones not tied to any session.
type ChatMessage struct {
	ID        int       `db:"id"`
	SessionID string    `db:"session_id"`
	Role      string    `db:"role"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
