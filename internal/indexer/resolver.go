package indexer

import (
	"context"
	"sync"

	"github.com/goliatone/go-cms-search/articles"
	"github.com/google/uuid"
)

// MemoryContactResolver is an in-memory articles.ContactResolver for
// scaffolding and tests.
type MemoryContactResolver struct {
	mu       sync.RWMutex
	contacts map[uuid.UUID]articles.ContactReference
}

// NewMemoryContactResolver creates an empty in-memory resolver.
func NewMemoryContactResolver() *MemoryContactResolver {
	return &MemoryContactResolver{
		contacts: make(map[uuid.UUID]articles.ContactReference),
	}
}

// Put registers a directory entry.
func (m *MemoryContactResolver) Put(ref articles.ContactReference) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.contacts[ref.ID] = ref
}

// Delete removes a directory entry, simulating a deleted contact.
func (m *MemoryContactResolver) Delete(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.contacts, id)
}

// ByID resolves a contact, returning *articles.NotFoundError when absent.
func (m *MemoryContactResolver) ByID(_ context.Context, id uuid.UUID) (*articles.ContactReference, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ref, ok := m.contacts[id]
	if !ok {
		return nil, &articles.NotFoundError{Resource: "contact", Key: id.String()}
	}
	copied := ref
	return &copied, nil
}
