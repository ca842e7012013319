package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply of a MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted replies in order and records every
// request it receives. Once the script runs out it answers with the
// fallback, if one is set, or fails as unavailable.
//
// With QUESTLAND_LLM_PROVIDER=mock and QUESTLAND_MOCK_RESPONSE set, the
// tutor can be tried without network access.
type MockProvider struct {
	mu       sync.Mutex
	script   []MockResponse
	fallback *MockResponse
	Calls    []Request
}

// NewMockProvider returns a provider that replays responses in order.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{script: responses}
}

// NewMockProviderFromConfig returns a provider with no script whose
// fallback is the configured canned reply.
func NewMockProviderFromConfig(cfg MockConfig) *MockProvider {
	m := &MockProvider{}
	if cfg.Response != "" {
		m.fallback = &MockResponse{Content: json.RawMessage(cfg.Response)}
	}
	return m
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var next MockResponse
	switch {
	case len(m.script) > 0:
		next = m.script[0]
		m.script = m.script[1:]
	case m.fallback != nil:
		next = *m.fallback
	default:
		return nil, &ErrProviderUnavailable{}
	}

	if next.Err != nil {
		return nil, next.Err
	}
	if req.Schema != nil {
		if err := req.Schema.Check(next.Content); err != nil {
			return nil, err
		}
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: StopEnd,
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a reply to the script.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, resp)
}

// CallCount returns how many requests were received.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
