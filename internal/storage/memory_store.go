package storage

import (
	"errors"
	"sync"
)

// ErrInjected is the default failure returned by a MemoryStore with
// failures switched on.
var ErrInjected = errors.New("injected storage failure")

// MemoryStore is an in-process Provider. Tests use FailGets and FailSets to
// simulate an unreadable or unwritable backend.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	loaded bool

	FailGets bool
	FailSets bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	return nil
}

func (s *MemoryStore) Load() error {
	return s.Init()
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return "", ErrNotLoaded
	}
	if s.FailGets {
		return "", ErrInjected
	}
	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	if s.FailSets {
		return ErrInjected
	}
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	if s.FailSets {
		return ErrInjected
	}
	delete(s.values, key)
	return nil
}

// Raw returns the stored value without going through failure injection.
func (s *MemoryStore) Raw(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Put stores a value without going through failure injection.
func (s *MemoryStore) Put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemoryStore) GetConfigPath() string {
	return ":memory:"
}
