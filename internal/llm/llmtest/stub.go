// Package llmtest provides a deterministic llm.Client for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/jonathan/hiring-assistant/internal/llm"
)

// Stub is an llm.Client that returns a canned response and records every request.
type Stub struct {
	Response string
	Err      error
	// Respond, when set, overrides Response and Err.
	Respond func(instructions []llm.Instruction) (string, error)

	mu    sync.Mutex
	calls [][]llm.Instruction
}

// NewStub returns a Stub answering every call with response.
func NewStub(response string) *Stub {
	return &Stub{Response: response}
}

// Complete records the instructions and returns the canned answer.
func (s *Stub) Complete(_ context.Context, instructions []llm.Instruction) (string, error) {
	recorded := make([]llm.Instruction, len(instructions))
	copy(recorded, instructions)

	s.mu.Lock()
	s.calls = append(s.calls, recorded)
	s.mu.Unlock()

	if s.Respond != nil {
		return s.Respond(recorded)
	}
	return s.Response, s.Err
}

// Model returns a fixed model name.
func (s *Stub) Model() string { return "stub" }

// Close is a no-op.
func (s *Stub) Close() error { return nil }

// Calls returns the recorded instruction lists in call order.
func (s *Stub) Calls() [][]llm.Instruction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]llm.Instruction, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns how many times Complete was invoked.
func (s *Stub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// LastCall returns the most recent instruction list, or nil.
func (s *Stub) LastCall() []llm.Instruction {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return nil
	}
	return s.calls[len(s.calls)-1]
}
