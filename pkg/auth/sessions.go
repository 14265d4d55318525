package auth

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Sessions maps client session tokens to usernames. In-memory only;
// tokens do not survive a process restart. Last write wins on reissue.
type Sessions struct {
	mu     sync.RWMutex
	tokens map[string]string // token -> username
}

// NewSessions creates an empty session table.
func NewSessions() *Sessions {
	return &Sessions{tokens: make(map[string]string)}
}

// Issue generates a fresh 128-bit hex token for the user.
func (s *Sessions) Issue(username string) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")

	s.mu.Lock()
	s.tokens[token] = username
	s.mu.Unlock()
	return token
}

// Lookup resolves a token to its username.
func (s *Sessions) Lookup(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	username, ok := s.tokens[token]
	return username, ok
}

// Revoke removes a token.
func (s *Sessions) Revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
