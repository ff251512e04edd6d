package indexer

import (
	"context"
	"sync"

	"github.com/goliatone/go-cms-search/articles"
	"github.com/google/uuid"
)

// MemoryIndexStore is an in-memory articles.IndexStore for scaffolding and
// tests. Reads hand out deep copies so callers never share mutable state with
// the store.
type MemoryIndexStore struct {
	mu            sync.RWMutex
	docs          map[uuid.UUID]*articles.ArticleView
	invalidations int
}

// NewMemoryIndexStore creates an empty in-memory index store.
func NewMemoryIndexStore() *MemoryIndexStore {
	return &MemoryIndexStore{
		docs: make(map[uuid.UUID]*articles.ArticleView),
	}
}

// FindByID retrieves a view document by composite id.
func (m *MemoryIndexStore) FindByID(_ context.Context, id uuid.UUID) (*articles.ArticleView, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[id]
	if !ok {
		return nil, &articles.NotFoundError{Resource: "article_view", Key: id.String()}
	}
	return doc.Clone(), nil
}

// FindByUUID returns every locale variant for the article uuid, up to limit.
func (m *MemoryIndexStore) FindByUUID(_ context.Context, articleUUID uuid.UUID, limit int) ([]*articles.ArticleView, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*articles.ArticleView{}
	for _, doc := range m.docs {
		if doc.UUID != articleUUID {
			continue
		}
		out = append(out, doc.Clone())
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// FindAll returns up to limit view documents.
func (m *MemoryIndexStore) FindAll(_ context.Context, limit int) ([]*articles.ArticleView, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*articles.ArticleView{}
	for _, doc := range m.docs {
		out = append(out, doc.Clone())
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Apply commits the staged batch. Operations run in insertion order so a
// later persist wins over an earlier remove of the same id within one batch.
func (m *MemoryIndexStore) Apply(_ context.Context, batch *articles.Batch) error {
	if batch == nil || batch.Len() == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, op := range batch.Operations() {
		switch op.Kind {
		case articles.BatchPersist:
			m.docs[op.ID] = op.Document.Clone()
		case articles.BatchRemove:
			delete(m.docs, op.ID)
		}
	}
	return nil
}

// InvalidateQueryCache records the invalidation; the memory store has no real
// query cache.
func (m *MemoryIndexStore) InvalidateQueryCache(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.invalidations++
	return nil
}

// Len reports the number of stored view documents.
func (m *MemoryIndexStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.docs)
}

// QueryCacheInvalidations reports how often the query cache was invalidated.
func (m *MemoryIndexStore) QueryCacheInvalidations() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.invalidations
}
