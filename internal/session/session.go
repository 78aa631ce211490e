// Package session holds the per-session question and answer state and the store
// that creates, looks up, and disposes sessions.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonathan/hiring-assistant/internal/types"
)

// ErrAnswerIndex is returned when an answer is written outside the fixed slots.
var ErrAnswerIndex = errors.New("answer index out of range")

// Session owns one candidate's QuestionSet and AnswerSet.
type Session struct {
	id string

	mu           sync.Mutex
	profile      *types.CandidateProfile
	questions    types.QuestionSet
	answers      types.AnswerSet
	lastActivity time.Time
}

// New creates an empty session: no questions and five empty answers.
func New(id string) *Session {
	return &Session{
		id:           id,
		questions:    types.QuestionSet{},
		lastActivity: time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Questions returns a copy of the current questions.
func (s *Session) Questions() types.QuestionSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(types.QuestionSet, len(s.questions))
	copy(out, s.questions)
	return out
}

// SetQuestions replaces the whole QuestionSet. Answers are left as they are, so
// answers typed against earlier questions stay in their slots.
func (s *Session) SetQuestions(q types.QuestionSet) {
	if len(q) > types.MaxQuestions {
		q = q[:types.MaxQuestions]
	}
	replaced := make(types.QuestionSet, len(q))
	copy(replaced, q)

	s.mu.Lock()
	s.questions = replaced
	s.mu.Unlock()
}

// Answers returns a copy of the answer slots.
func (s *Session) Answers() types.AnswerSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answers
}

// SetAnswer writes text into slot i. Indexes outside the fixed slots are rejected.
func (s *Session) SetAnswer(i int, text string) error {
	if i < 0 || i >= types.AnswerSlots {
		return fmt.Errorf("%w: %d (want 0-%d)", ErrAnswerIndex, i, types.AnswerSlots-1)
	}
	s.mu.Lock()
	s.answers[i] = text
	s.mu.Unlock()
	return nil
}

// Profile returns the last profile questions were generated for.
func (s *Session) Profile() (types.CandidateProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return types.CandidateProfile{}, false
	}
	return *s.profile, true
}

// SetProfile records the profile questions were generated for.
func (s *Session) SetProfile(p types.CandidateProfile) {
	s.mu.Lock()
	s.profile = &p
	s.mu.Unlock()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastActivity = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}
