package transcript

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Store is an append-only, in-memory message list scoped to the lifetime of
// one chat view. Clear is the only operation that replaces the list, and it
// always reseeds the same two-message shape the store starts with.
type Store struct {
	mu       sync.Mutex
	messages []Message
}

func NewStore() *Store {
	s := &Store{}
	s.seedLocked()
	return s
}

func (s *Store) seedLocked() {
	s.messages = []Message{
		NewMessage(RoleSystem, SeedSystemText),
		NewMessage(RoleAssistant, SeedGreetingText),
	}
}

// Append validates and appends a new record, returning it. Whitespace-only
// text is rejected; the text is stored as given, untrimmed.
func (s *Store) Append(role Role, text string) (Message, error) {
	if s == nil {
		return Message{}, errors.New("transcript: nil store")
	}
	if role == "" {
		return Message{}, errors.New("transcript: role is empty")
	}
	if strings.TrimSpace(text) == "" {
		return Message{}, errors.New("transcript: text is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	msg := NewMessage(role, text)
	s.messages = append(s.messages, msg)
	return msg, nil
}

// Clear replaces the whole list with a fresh seed state regardless of what
// was there before. Pending-reply state is owned by the UI and untouched.
func (s *Store) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedLocked()
}

// Messages returns a snapshot copy in append order.
func (s *Store) Messages() []Message {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func (s *Store) Last() (Message, bool) {
	if s == nil {
		return Message{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		return Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}
