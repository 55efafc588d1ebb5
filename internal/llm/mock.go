package llm

import (
	"context"
	"sync"
)

// MockClient is a scripted test implementation of the Client interface.
// Responses and errors are consumed in order; once the script runs out the
// last entry repeats.
type MockClient struct {
	mu        sync.Mutex
	Responses []string
	Errs      []error
	Prompts   []string
	calls     int
}

// Complete records the prompt and replays the next scripted response.
func (m *MockClient) Complete(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)
	idx := m.calls
	m.calls++

	if len(m.Errs) > 0 {
		i := idx
		if i >= len(m.Errs) {
			i = len(m.Errs) - 1
		}
		if err := m.Errs[i]; err != nil {
			return "", err
		}
	}

	if len(m.Responses) == 0 {
		return "{}", nil
	}
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	return m.Responses[idx], nil
}

// Calls returns how many times Complete was invoked.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
