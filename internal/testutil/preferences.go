package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/dom/snowseeker/internal/domain"
)

// ErrStorageUnavailable is returned by FailingPreferences.
var ErrStorageUnavailable = errors.New("storage unavailable")

// MemoryPreferences is an in-memory PreferenceRepository.
type MemoryPreferences struct {
	mu     sync.Mutex
	values map[string][]byte
	writes int
}

func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{values: make(map[string][]byte)}
}

func (m *MemoryPreferences) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		return nil, domain.ErrPreferenceNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryPreferences) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), value...)
	m.writes++
	return nil
}

func (m *MemoryPreferences) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Raw returns the stored bytes for key, or nil.
func (m *MemoryPreferences) Raw(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}

// Writes reports how many Set calls succeeded.
func (m *MemoryPreferences) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// FailingPreferences wraps a MemoryPreferences and fails reads, writes or both.
type FailingPreferences struct {
	*MemoryPreferences
	FailGet bool
	FailSet bool
}

func (f *FailingPreferences) Get(ctx context.Context, key string) ([]byte, error) {
	if f.FailGet {
		return nil, ErrStorageUnavailable
	}
	return f.MemoryPreferences.Get(ctx, key)
}

func (f *FailingPreferences) Set(ctx context.Context, key string, value []byte) error {
	if f.FailSet {
		return ErrStorageUnavailable
	}
	return f.MemoryPreferences.Set(ctx, key, value)
}
