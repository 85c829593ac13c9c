package transcript

import (
	"time"

	"github.com/google/uuid"
)

// Role tags who a message is attributed to.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	// RoleError is part of the message vocabulary but nothing in this
	// repository produces one; it exists for renderers and future backends.
	RoleError Role = "error"
)

// Fixed copy used for the seed state and the demo reply.
const (
	SeedSystemText   = "Session started. Messages are kept in memory for this view only."
	SeedGreetingText = "Hi! I'm the demo assistant. Ask me anything."
	DemoReplyText    = "This is a canned demo reply. Wire up a real backend to get live answers."
)

// Message is one immutable unit of chat transcript. Records are only ever
// appended to a Store, never mutated in place.
type Message struct {
	ID        string
	Role      Role
	Text      string
	CreatedAt time.Time
}

func NewMessage(role Role, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// Label returns the sender name shown next to a bubble.
func (r Role) Label() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Assistant"
	case RoleSystem:
		return "System"
	case RoleError:
		return "Error"
	default:
		return string(r)
	}
}
