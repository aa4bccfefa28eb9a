package store

import (
	"context"
)

// Memory is a Store that lives and dies with the process.
type Memory struct {
	blobs map[string][]byte

	// Fail, if set, is returned from every Set.
	Fail error
}

func NewMemory() *Memory {
	return &Memory{blobs: map[string][]byte{}}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	blob, ok := m.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte{}, blob...), nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	if m.Fail != nil {
		return m.Fail
	}
	m.blobs[key] = append([]byte{}, value...)
	return nil
}
