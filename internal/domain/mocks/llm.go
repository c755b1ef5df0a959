// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"sync"

	"github.com/ersonp/mdchat/internal/domain/ports"
)

// LLMClient is a mock implementation of ports.LLMClient.
// It is safe for concurrent use.
type LLMClient struct {
	// Content is returned by Complete unless CompleteFunc is set.
	Content     string
	CompleteErr error
	// CompleteFunc overrides Content and CompleteErr when set.
	CompleteFunc func(req ports.CompletionRequest) (string, error)

	mu    sync.Mutex
	calls []ports.CompletionRequest
}

// Complete records the request and returns the configured content or error.
func (m *LLMClient) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(req)
	}
	if m.CompleteErr != nil {
		return "", m.CompleteErr
	}
	return m.Content, nil
}

// Calls returns the requests seen so far.
func (m *LLMClient) Calls() []ports.CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ports.CompletionRequest, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns the number of Complete calls.
func (m *LLMClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
