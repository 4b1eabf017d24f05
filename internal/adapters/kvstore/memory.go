package kvstore

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory keeps documents in-process. Used when no KV endpoint is configured
// and by tests; nothing survives a restart.
type Memory struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

func NewMemory() *Memory {
	return &Memory{data: map[string]json.RawMessage{}}
}

func (m *Memory) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make(json.RawMessage, len(raw))
	copy(cp, raw)
	return cp, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = b
	m.mu.Unlock()
	return nil
}
