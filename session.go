package bioflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Message is one entry in a session's conversation history.
type Message struct {
	Role string
	Text string
}

// Session is one conversation, identified by (app name, user id, session id).
// It owns the state mapping mutated by the workflow stages. Stages run
// strictly in sequence, so the state needs no locking of its own.
type Session struct {
	AppName string
	UserID  string
	ID      string
	State   State
	History []Message
}

// AppendMessage records a message in the conversation history.
func (s *Session) AppendMessage(role, text string) {
	s.History = append(s.History, Message{Role: role, Text: text})
}

// InMemorySessionService keeps sessions for the lifetime of the process.
// The service itself may be shared, so lookups are mutex-guarded.
type InMemorySessionService struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewInMemorySessionService constructs an empty session store.
func NewInMemorySessionService() *InMemorySessionService {
	return &InMemorySessionService{sessions: make(map[string]*Session)}
}

func sessionKey(appName, userID, sessionID string) string {
	return appName + "\x00" + userID + "\x00" + sessionID
}

// Create registers a new session under the identity triple. When sessionID
// is empty a fresh UUID is generated.
func (s *InMemorySessionService) Create(ctx context.Context, appName, userID, sessionID string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := sessionKey(appName, userID, sessionID)
	if _, ok := s.sessions[key]; ok {
		return nil, fmt.Errorf("session already exists: %s", sessionID)
	}
	sess := &Session{AppName: appName, UserID: userID, ID: sessionID, State: make(State)}
	s.sessions[key] = sess
	return sess, nil
}

// Get looks up a session by its identity triple.
func (s *InMemorySessionService) Get(appName, userID, sessionID string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionKey(appName, userID, sessionID)]
	return sess, ok
}
