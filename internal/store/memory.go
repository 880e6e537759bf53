package store

import "sync"

// Memory is an in-process store; nothing survives a restart.
type Memory struct {
	mu     sync.Mutex
	result string
}

// NewMemory returns an empty memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result, nil
}

func (m *Memory) Save(result string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.result = result
	return nil
}

func (m *Memory) Close() error {
	return nil
}
