package articles

import (
	"context"

	"github.com/google/uuid"
)

// BatchOpKind discriminates staged index operations.
type BatchOpKind string

const (
	// BatchPersist stages a create-or-replace of a view document.
	BatchPersist BatchOpKind = "persist"
	// BatchRemove stages the deletion of a view document by composite id.
	BatchRemove BatchOpKind = "remove"
)

// BatchOp is a single staged operation. Persist ops carry the document;
// remove ops carry only the composite id.
type BatchOp struct {
	Kind     BatchOpKind
	ID       uuid.UUID
	Document *ArticleView
}

// Batch accumulates staged persist/remove operations until a store applies
// them in one commit. The batch is owned by the indexer, not the store, so
// buffering stays explicit. Batch is not safe for concurrent use.
type Batch struct {
	ops []BatchOp
}

// Persist stages a create-or-replace for the view document. Later operations
// on the same id win within the batch, matching last-write semantics.
func (b *Batch) Persist(doc *ArticleView) {
	if doc == nil {
		return
	}
	b.ops = append(b.ops, BatchOp{Kind: BatchPersist, ID: doc.ID, Document: doc})
}

// Remove stages the deletion of the view document with the given composite id.
func (b *Batch) Remove(id uuid.UUID) {
	b.ops = append(b.ops, BatchOp{Kind: BatchRemove, ID: id})
}

// Len reports the number of staged operations.
func (b *Batch) Len() int {
	return len(b.ops)
}

// Operations returns the staged operations in insertion order.
func (b *Batch) Operations() []BatchOp {
	return b.ops
}

// Reset drops all staged operations.
func (b *Batch) Reset() {
	b.ops = b.ops[:0]
}

// IndexStore persists article view documents. Reads execute immediately;
// writes only ever happen through Apply, which commits a staged batch
// atomically from the caller's perspective.
type IndexStore interface {
	// FindByID returns the view document with the composite id, or
	// *NotFoundError when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*ArticleView, error)
	// FindByUUID returns every locale variant for the article uuid, up to
	// limit entries.
	FindByUUID(ctx context.Context, articleUUID uuid.UUID, limit int) ([]*ArticleView, error)
	// FindAll returns up to limit view documents; used by the bounded page
	// loop in Clear.
	FindAll(ctx context.Context, limit int) ([]*ArticleView, error)
	// Apply commits every staged operation in the batch. The batch is left
	// untouched; callers reset it after a successful apply.
	Apply(ctx context.Context, batch *Batch) error
	// InvalidateQueryCache drops any store-level query cache so readers see
	// bulk changes immediately.
	InvalidateQueryCache(ctx context.Context) error
}
