package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process Store used by tests and for running the server
// without Postgres. The accessor funcs tell it where a record keeps its id
// and creation time, since T is opaque here.
type Memory[T any] struct {
	mu      sync.Mutex
	recs    []*T
	id      func(*T) *string
	created func(*T) *time.Time
}

func NewMemory[T any](id func(*T) *string, created func(*T) *time.Time) *Memory[T] {
	return &Memory[T]{id: id, created: created}
}

func (m *Memory[T]) Create(_ context.Context, rec *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if *m.id(rec) == "" {
		*m.id(rec) = uuid.New().String()
	}
	if m.created(rec).IsZero() {
		*m.created(rec) = time.Now()
	}
	cp := *rec
	m.recs = append(m.recs, &cp)
	return nil
}

func (m *Memory[T]) List(_ context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, 0, len(m.recs))
	for _, r := range m.recs {
		out = append(out, *r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return m.created(&out[i]).After(*m.created(&out[j]))
	})
	return out, nil
}

func (m *Memory[T]) Get(_ context.Context, id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.recs {
		if *m.id(r) == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory[T]) Save(_ context.Context, rec *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.recs {
		if *m.id(r) == *m.id(rec) {
			cp := *rec
			m.recs[i] = &cp
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.recs {
		if *m.id(r) == id {
			m.recs = append(m.recs[:i], m.recs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
