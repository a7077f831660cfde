package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/newslyhq/newsly/pkg/models"
)

// Message roles within a transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single transcript entry. Assistant replies that carry
// search results attach them as Articles alongside the text.
type Message struct {
	Role     string               `json:"role"`
	Content  string               `json:"content"`
	Articles []models.ChatArticle `json:"articles,omitempty"`
	At       time.Time            `json:"at"`
}

// Session is an append-only conversation transcript. Sessions are not
// safe for concurrent use; the Store serializes access per caller.
type Session struct {
	ID       string    `json:"id"`
	Started  time.Time `json:"started"`
	Messages []Message `json:"messages"`
}

// NewSession creates an empty transcript with a fresh identifier.
func NewSession() *Session {
	return &Session{
		ID:      uuid.NewString(),
		Started: time.Now().UTC(),
	}
}

func (s *Session) append(msg Message) {
	s.Messages = append(s.Messages, msg)
}

// Store keeps live sessions keyed by ID. It exists for the API and
// WebSocket hosts, where multiple conversations run side by side.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers and returns a new session.
func (st *Store) Create() *Session {
	sess := NewSession()
	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()
	return sess
}

// Get returns the session with the given ID, or nil if unknown.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// GetOrCreate returns the session with the given ID, creating a new one
// when the ID is empty or unknown.
func (st *Store) GetOrCreate(id string) *Session {
	if id != "" {
		if sess := st.Get(id); sess != nil {
			return sess
		}
	}
	return st.Create()
}

// Drop removes a session from the store.
func (st *Store) Drop(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
