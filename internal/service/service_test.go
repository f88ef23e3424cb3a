package service

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// mockRequester is a canned backend for service tests. Responses and
// errors are keyed by "METHOD path".
type mockRequester struct {
	mu        sync.Mutex
	responses map[string][]byte
	errs      map[string]error
	calls     []string
}

func newMockRequester() *mockRequester {
	return &mockRequester{
		responses: make(map[string][]byte),
		errs:      make(map[string]error),
	}
}

func (m *mockRequester) respond(key string, body string) {
	m.responses[key] = []byte(body)
}

func (m *mockRequester) fail(key string, err error) {
	m.errs[key] = err
}

func (m *mockRequester) do(method, path string) ([]byte, error) {
	key := method + " " + path
	m.mu.Lock()
	m.calls = append(m.calls, key)
	m.mu.Unlock()
	if err := m.errs[key]; err != nil {
		return nil, err
	}
	return m.responses[key], nil
}

func (m *mockRequester) Get(ctx context.Context, path string) ([]byte, error) {
	return m.do("GET", path)
}

func (m *mockRequester) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return m.do("POST", path)
}

func (m *mockRequester) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return m.do("PUT", path)
}

func (m *mockRequester) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return m.do("PATCH", path)
}

func (m *mockRequester) Delete(ctx context.Context, path string) error {
	_, err := m.do("DELETE", path)
	return err
}

func (m *mockRequester) called(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.calls {
		if c == key {
			return true
		}
	}
	return false
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
