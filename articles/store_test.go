package articles_test

import (
	"testing"

	"github.com/goliatone/go-cms-search/articles"
	"github.com/google/uuid"
)

func TestBatchPreservesInsertionOrder(t *testing.T) {
	var batch articles.Batch

	first := &articles.ArticleView{ID: uuid.New()}
	removed := uuid.New()

	batch.Persist(first)
	batch.Remove(removed)
	batch.Persist(nil)

	ops := batch.Operations()
	if batch.Len() != 2 || len(ops) != 2 {
		t.Fatalf("expected 2 staged operations, got %d", batch.Len())
	}
	if ops[0].Kind != articles.BatchPersist || ops[0].ID != first.ID || ops[0].Document != first {
		t.Fatalf("unexpected first op: %+v", ops[0])
	}
	if ops[1].Kind != articles.BatchRemove || ops[1].ID != removed {
		t.Fatalf("unexpected second op: %+v", ops[1])
	}
}

func TestBatchReset(t *testing.T) {
	var batch articles.Batch
	batch.Persist(&articles.ArticleView{ID: uuid.New()})
	batch.Remove(uuid.New())

	batch.Reset()
	if batch.Len() != 0 {
		t.Fatalf("reset left %d operations staged", batch.Len())
	}

	batch.Remove(uuid.New())
	if batch.Len() != 1 {
		t.Fatalf("batch unusable after reset: %d", batch.Len())
	}
}
