package blevestore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/goliatone/go-cms-search/articles"
	"github.com/google/uuid"
)

// rawField carries the JSON-encoded view document so reads can round-trip the
// full record; the remaining fields exist for term and full-text matching.
const (
	uuidField   = "uuid"
	localeField = "locale"
	titleField  = "title"
	teaserField = "teaser_description"
	rawField    = "raw"
)

// bleveArticle is the flattened shape handed to bleve for indexing.
type bleveArticle struct {
	UUID              string `json:"uuid"`
	Locale            string `json:"locale"`
	Title             string `json:"title"`
	TeaserDescription string `json:"teaser_description"`
	Raw               string `json:"raw"`
}

// Store is a bleve-backed articles.IndexStore. Batches map directly onto
// bleve's own batch primitive, so Apply commits every staged operation in one
// index transaction.
type Store struct {
	mu     sync.RWMutex
	index  bleve.Index
	path   string
	closed bool
}

var _ articles.IndexStore = (*Store)(nil)

// New opens (or creates) a bleve index at path. An empty path creates an
// in-memory index, useful for tests and scaffolding.
func New(path string) (*Store, error) {
	indexMapping, err := createIndexMapping()
	if err != nil {
		return nil, fmt.Errorf("blevestore: create index mapping: %w", err)
	}

	var idx bleve.Index
	if path == "" {
		idx, err = bleve.NewMemOnly(indexMapping)
	} else {
		idx, err = bleve.New(path, indexMapping)
		if err == bleve.ErrorIndexPathExists {
			idx, err = bleve.Open(path)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("blevestore: open index: %w", err)
	}

	return &Store{index: idx, path: path}, nil
}

func createIndexMapping() (mapping.IndexMapping, error) {
	articleMapping := bleve.NewDocumentMapping()

	keywordMapping := bleve.NewTextFieldMapping()
	keywordMapping.Analyzer = keyword.Name
	articleMapping.AddFieldMappingsAt(uuidField, keywordMapping)
	articleMapping.AddFieldMappingsAt(localeField, keywordMapping)

	textMapping := bleve.NewTextFieldMapping()
	articleMapping.AddFieldMappingsAt(titleField, textMapping)
	articleMapping.AddFieldMappingsAt(teaserField, textMapping)

	storedMapping := bleve.NewTextFieldMapping()
	storedMapping.Index = false
	storedMapping.Store = true
	storedMapping.IncludeInAll = false
	articleMapping.AddFieldMappingsAt(rawField, storedMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = articleMapping
	return indexMapping, nil
}

// FindByID retrieves a view document by composite id.
func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*articles.ArticleView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, fmt.Errorf("blevestore: index is closed")
	}

	query := bleve.NewDocIDQuery([]string{id.String()})
	req := bleve.NewSearchRequest(query)
	req.Size = 1
	req.Fields = []string{rawField}

	result, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("blevestore: find by id: %w", err)
	}
	if len(result.Hits) == 0 {
		return nil, &articles.NotFoundError{Resource: "article_view", Key: id.String()}
	}
	return decodeHit(result.Hits[0].Fields)
}

// FindByUUID returns every locale variant for the article uuid, up to limit.
func (s *Store) FindByUUID(ctx context.Context, articleUUID uuid.UUID, limit int) ([]*articles.ArticleView, error) {
	query := bleve.NewTermQuery(articleUUID.String())
	query.SetField(uuidField)
	return s.search(ctx, bleve.NewSearchRequest(query), limit)
}

// FindAll returns up to limit view documents.
func (s *Store) FindAll(ctx context.Context, limit int) ([]*articles.ArticleView, error) {
	return s.search(ctx, bleve.NewSearchRequest(bleve.NewMatchAllQuery()), limit)
}

func (s *Store) search(ctx context.Context, req *bleve.SearchRequest, limit int) ([]*articles.ArticleView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, fmt.Errorf("blevestore: index is closed")
	}

	if limit <= 0 {
		limit = 10
	}
	req.Size = limit
	req.Fields = []string{rawField}

	result, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("blevestore: search: %w", err)
	}

	out := make([]*articles.ArticleView, 0, len(result.Hits))
	for _, hit := range result.Hits {
		doc, err := decodeHit(hit.Fields)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

// Apply commits the staged batch through a single bleve batch.
func (s *Store) Apply(ctx context.Context, batch *articles.Batch) error {
	if batch == nil || batch.Len() == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("blevestore: index is closed")
	}

	bleveBatch := s.index.NewBatch()
	for _, op := range batch.Operations() {
		switch op.Kind {
		case articles.BatchPersist:
			doc, err := encodeArticle(op.Document)
			if err != nil {
				return err
			}
			if err := bleveBatch.Index(op.ID.String(), doc); err != nil {
				return fmt.Errorf("blevestore: stage document %s: %w", op.ID, err)
			}
		case articles.BatchRemove:
			bleveBatch.Delete(op.ID.String())
		}
	}

	if err := s.index.Batch(bleveBatch); err != nil {
		return fmt.Errorf("blevestore: execute batch: %w", err)
	}
	return nil
}

// InvalidateQueryCache is a no-op: bleve serves reads from committed segments
// without a separate query cache.
func (s *Store) InvalidateQueryCache(_ context.Context) error {
	return nil
}

// Close releases the underlying index.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.index.Close()
}

func encodeArticle(view *articles.ArticleView) (*bleveArticle, error) {
	raw, err := json.Marshal(view)
	if err != nil {
		return nil, fmt.Errorf("blevestore: encode view document %s: %w", view.ID, err)
	}
	return &bleveArticle{
		UUID:              view.UUID.String(),
		Locale:            view.Locale,
		Title:             view.Title,
		TeaserDescription: view.TeaserDescription,
		Raw:               string(raw),
	}, nil
}

func decodeHit(fields map[string]any) (*articles.ArticleView, error) {
	raw, ok := fields[rawField].(string)
	if !ok || raw == "" {
		return nil, fmt.Errorf("blevestore: hit is missing the stored document")
	}
	var view articles.ArticleView
	if err := json.Unmarshal([]byte(raw), &view); err != nil {
		return nil, fmt.Errorf("blevestore: decode view document: %w", err)
	}
	return &view, nil
}
