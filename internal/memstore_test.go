package internal

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memStore is an in-memory LinkStore for tests, mirroring the
// Postgres gateway's conflict and not-found semantics.
type memStore struct {
	mu     sync.Mutex
	links  map[string]*Link
	nextID int64
}

func newMemStore() *memStore {
	return &memStore{links: make(map[string]*Link)}
}

func (m *memStore) Create(ctx context.Context, link *Link) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.links[link.Code]; ok {
		return ErrCodeTaken
	}
	m.nextID++
	link.ID = m.nextID
	link.CreatedAt = time.Now().UTC()
	cp := *link
	m.links[link.Code] = &cp
	return nil
}

func (m *memStore) Get(ctx context.Context, code string) (*Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.links[code]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (m *memStore) List(ctx context.Context) ([]Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	links := make([]Link, 0, len(m.links))
	for _, l := range m.links {
		links = append(links, *l)
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].CreatedAt.Equal(links[j].CreatedAt) {
			return links[i].ID > links[j].ID
		}
		return links[i].CreatedAt.After(links[j].CreatedAt)
	})
	return links, nil
}

func (m *memStore) Delete(ctx context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.links[code]; !ok {
		return ErrNotFound
	}
	delete(m.links, code)
	return nil
}

func (m *memStore) IncrementClick(ctx context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.links[code]
	if !ok {
		return ErrNotFound
	}
	l.TotalClicks++
	now := time.Now().UTC()
	l.LastClickedAt = &now
	return nil
}

func (m *memStore) CodeExists(ctx context.Context, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.links[code]
	return ok, nil
}

var _ LinkStore = (*memStore)(nil)
