package services_test

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
)

// MockStore is an in-memory blob store with error injection for the
// service tests.
type MockStore struct {
	mu            sync.Mutex
	data          map[string][]byte
	simulateError error

	SetCalls int
}

func NewMockStore() *MockStore {
	return &MockStore{data: make(map[string][]byte)}
}

func (m *MockStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return nil, false, m.simulateError
	}
	raw, ok := m.data[key]
	return raw, ok, nil
}

func (m *MockStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return m.simulateError
	}
	m.SetCalls++
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return m.simulateError
	}
	delete(m.data, key)
	return nil
}

func (m *MockStore) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return m.simulateError
	}
	for key := range m.data {
		if strings.HasPrefix(key, domain.KeyPrefix) {
			delete(m.data, key)
		}
	}
	return nil
}

func (m *MockStore) seed(t *testing.T, key string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
}

func (m *MockStore) raw(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	return raw, ok
}

// StubGenerator returns canned responses in order and records prompts.
type StubGenerator struct {
	mu        sync.Mutex
	responses []string
	err       error

	Prompts []string
}

func (g *StubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Prompts = append(g.Prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	if len(g.responses) == 0 {
		return "", nil
	}
	next := g.responses[0]
	if len(g.responses) > 1 {
		g.responses = g.responses[1:]
	}
	return next, nil
}

func (g *StubGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.Prompts)
}
