package services

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

// SessionStore persists the single staff bearer token across restarts, the
// way the browser app kept it in localStorage under one key. It is written
// by login and logout only and read by every outgoing request.
type SessionStore struct {
	path string

	mu    sync.RWMutex
	token string
}

type sessionFile struct {
	Token string `json:"token"`
}

// NewSessionStore loads the token file at path. A missing or unreadable
// file is treated as a logged-out session, not an error.
func NewSessionStore(path string) *SessionStore {
	s := &SessionStore{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Println("Error reading session file:", err)
		}
		return s
	}
	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		log.Println("Error parsing session file:", err)
		return s
	}
	s.token = f.Token
	return s
}

// Token returns the stored bearer token, empty when logged out.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores the token returned by a successful login.
func (s *SessionStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return s.write(token)
}

// Clear wipes the session on logout.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *SessionStore) write(token string) error {
	data, err := json.Marshal(sessionFile{Token: token})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}
