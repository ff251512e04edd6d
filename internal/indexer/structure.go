package indexer

import (
	"context"
	"sync"

	"github.com/goliatone/go-cms-search/articles"
)

// MemoryStructureProvider is an in-memory articles.StructureProvider backed
// by declarative metadata, typically seeded from configuration.
type MemoryStructureProvider struct {
	mu       sync.RWMutex
	metadata map[string]*articles.StructureMetadata
}

// NewMemoryStructureProvider creates an empty in-memory provider.
func NewMemoryStructureProvider() *MemoryStructureProvider {
	return &MemoryStructureProvider{
		metadata: make(map[string]*articles.StructureMetadata),
	}
}

// Put registers metadata for a (family, structure type) pair.
func (m *MemoryStructureProvider) Put(family, structureType string, meta *articles.StructureMetadata) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.metadata[structureKey(family, structureType)] = meta
}

// Get resolves metadata, returning *articles.NotFoundError when the pair was
// never registered. The indexer escalates that into a fatal projection error.
func (m *MemoryStructureProvider) Get(_ context.Context, family, structureType string) (*articles.StructureMetadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	meta, ok := m.metadata[structureKey(family, structureType)]
	if !ok {
		return nil, &articles.NotFoundError{Resource: "structure metadata", Key: structureKey(family, structureType)}
	}

	copied := &articles.StructureMetadata{
		Type:            meta.Type,
		TypeTranslation: meta.TypeTranslation,
	}
	if len(meta.TagProperties) > 0 {
		copied.TagProperties = make(map[string]string, len(meta.TagProperties))
		for tag, property := range meta.TagProperties {
			copied.TagProperties[tag] = property
		}
	}
	return copied, nil
}

func structureKey(family, structureType string) string {
	return family + "/" + structureType
}
