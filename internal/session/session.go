// Package session holds transient per-user dialogue state: which flow owns
// the next event, where inside that flow the user is, and the scratch values
// accumulated across turns. Nothing here is durable; durable records live in
// the repository.
package session

import (
	"fmt"
	"strings"
	"sync"
)

// FlowID names a multi-turn conversation.
type FlowID string

const (
	FlowOnboarding FlowID = "onboarding"
	FlowGoal       FlowID = "goal"
)

// StateID names a node inside a flow's state machine. Only meaningful while
// ActiveFlow is set.
type StateID string

// Expecting marks a single-shot free-text prompt that is not a full flow.
type Expecting string

const (
	ExpectingNothing        Expecting = ""
	ExpectingExpense        Expecting = "expense"
	ExpectingAdviceQuestion Expecting = "advice_question"
)

// Session is the transient dialogue state for one user.
type Session struct {
	UserID     int64
	ChatID     int64
	Language   string
	ActiveFlow FlowID
	FlowState  StateID
	Expecting  Expecting
	scratch    map[string]string
}

// EnterFlow makes flow the owner of subsequent events, starting at state.
// ActiveFlow and FlowState are always set together.
func (s *Session) EnterFlow(flow FlowID, state StateID) {
	s.ActiveFlow = flow
	s.FlowState = state
	s.Expecting = ExpectingNothing
}

// SetState advances the active flow to state.
func (s *Session) SetState(state StateID) {
	s.FlowState = state
}

// LeaveFlow clears the active flow, its state and its scratch namespace.
// Safe to call when no flow is active.
func (s *Session) LeaveFlow() {
	if s.ActiveFlow != "" {
		s.ClearScratch(s.ActiveFlow)
	}
	s.ActiveFlow = ""
	s.FlowState = ""
}

// SetScratch stores a value under the flow's namespace so interrupting flows
// cannot collide.
func (s *Session) SetScratch(flow FlowID, key, value string) {
	if s.scratch == nil {
		s.scratch = make(map[string]string)
	}
	s.scratch[string(flow)+"."+key] = value
}

// Scratch returns the value for key in the flow's namespace.
func (s *Session) Scratch(flow FlowID, key string) (string, bool) {
	v, ok := s.scratch[string(flow)+"."+key]
	return v, ok
}

// RequireScratch returns the value for key or an error. A missing required
// scratch field is a defect in the flow, not a user error: callers abort the
// flow rather than re-prompt.
func (s *Session) RequireScratch(flow FlowID, key string) (string, error) {
	v, ok := s.scratch[string(flow)+"."+key]
	if !ok {
		return "", fmt.Errorf("session: missing required scratch field %s.%s in state %s", flow, key, s.FlowState)
	}
	return v, nil
}

// ClearScratch removes every key in the flow's namespace.
func (s *Session) ClearScratch(flow FlowID) {
	prefix := string(flow) + "."
	for k := range s.scratch {
		if strings.HasPrefix(k, prefix) {
			delete(s.scratch, k)
		}
	}
}

// Manager owns the sessions and serializes turns per user: Acquire blocks
// until the user's previous event has been fully processed.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	turns    map[int64]*sync.Mutex
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
		turns:    make(map[int64]*sync.Mutex),
	}
}

// Acquire returns the user's session and a release function. The session is
// exclusively held until release is called.
func (m *Manager) Acquire(userID int64) (*Session, func()) {
	m.mu.Lock()
	sess, ok := m.sessions[userID]
	if !ok {
		sess = &Session{UserID: userID}
		m.sessions[userID] = sess
	}
	turn, ok := m.turns[userID]
	if !ok {
		turn = &sync.Mutex{}
		m.turns[userID] = turn
	}
	m.mu.Unlock()

	turn.Lock()
	return sess, turn.Unlock
}
