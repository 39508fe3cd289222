package ttscache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultMemorySize = 128

// Memory is an in-process LRU store. The zero value is not usable; use
// NewMemory.
type Memory struct {
	cache *lru.Cache[string, []byte]
}

func NewMemory(size int) (*Memory, error) {
	if size <= 0 {
		size = DefaultMemorySize
	}
	c, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &Memory{cache: c}, nil
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	return m.cache.Get(key)
}

func (m *Memory) Set(_ context.Context, key string, audio []byte) {
	if len(audio) == 0 {
		return
	}
	m.cache.Add(key, audio)
}
