package bunstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-cms-search/articles"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ArticleViewRecord is the persistence model for view documents. The full
// view document travels as a JSON payload; uuid and locale are lifted into
// columns so remove-by-uuid and paging stay index-backed queries.
type ArticleViewRecord struct {
	bun.BaseModel `bun:"table:article_views,alias:av"`

	ID       uuid.UUID       `bun:",pk,type:uuid"`
	UUID     uuid.UUID       `bun:"uuid,notnull,type:uuid"`
	Locale   string          `bun:"locale,notnull"`
	Document json.RawMessage `bun:"document,type:jsonb,notnull"`
}

// Store is a bun-backed articles.IndexStore. Apply runs every staged
// operation inside a single transaction so a batch commits atomically.
type Store struct {
	db *bun.DB
}

var _ articles.IndexStore = (*Store)(nil)

// New constructs a store over an existing bun database handle.
func New(db *bun.DB) *Store {
	return &Store{db: db}
}

// Init creates the backing table when it does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().Model((*ArticleViewRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("bunstore: create article_views table: %w", err)
	}
	return nil
}

// FindByID retrieves a view document by composite id.
func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*articles.ArticleView, error) {
	record := new(ArticleViewRecord)
	err := s.db.NewSelect().Model(record).Where("av.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &articles.NotFoundError{Resource: "article_view", Key: id.String()}
		}
		return nil, fmt.Errorf("bunstore: find by id: %w", err)
	}
	return decodeRecord(record)
}

// FindByUUID returns every locale variant for the article uuid, up to limit.
func (s *Store) FindByUUID(ctx context.Context, articleUUID uuid.UUID, limit int) ([]*articles.ArticleView, error) {
	var records []*ArticleViewRecord
	query := s.db.NewSelect().Model(&records).Where("av.uuid = ?", articleUUID).Order("av.locale ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("bunstore: find by uuid: %w", err)
	}
	return decodeRecords(records)
}

// FindAll returns up to limit view documents.
func (s *Store) FindAll(ctx context.Context, limit int) ([]*articles.ArticleView, error) {
	var records []*ArticleViewRecord
	query := s.db.NewSelect().Model(&records).Order("av.id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("bunstore: find all: %w", err)
	}
	return decodeRecords(records)
}

// Apply commits the staged batch inside one transaction.
func (s *Store) Apply(ctx context.Context, batch *articles.Batch) error {
	if batch == nil || batch.Len() == 0 {
		return nil
	}

	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, op := range batch.Operations() {
			switch op.Kind {
			case articles.BatchPersist:
				record, err := encodeView(op.Document)
				if err != nil {
					return err
				}
				_, err = tx.NewInsert().
					Model(record).
					On("CONFLICT (id) DO UPDATE").
					Set("uuid = EXCLUDED.uuid").
					Set("locale = EXCLUDED.locale").
					Set("document = EXCLUDED.document").
					Exec(ctx)
				if err != nil {
					return fmt.Errorf("bunstore: persist view document %s: %w", op.ID, err)
				}
			case articles.BatchRemove:
				if _, err := tx.NewDelete().Model((*ArticleViewRecord)(nil)).Where("av.id = ?", op.ID).Exec(ctx); err != nil {
					return fmt.Errorf("bunstore: remove view document %s: %w", op.ID, err)
				}
			}
		}
		return nil
	})
}

// InvalidateQueryCache is a no-op: reads always hit the database.
func (s *Store) InvalidateQueryCache(_ context.Context) error {
	return nil
}

func encodeView(view *articles.ArticleView) (*ArticleViewRecord, error) {
	payload, err := json.Marshal(view)
	if err != nil {
		return nil, fmt.Errorf("bunstore: encode view document %s: %w", view.ID, err)
	}
	return &ArticleViewRecord{
		ID:       view.ID,
		UUID:     view.UUID,
		Locale:   view.Locale,
		Document: payload,
	}, nil
}

func decodeRecord(record *ArticleViewRecord) (*articles.ArticleView, error) {
	var view articles.ArticleView
	if err := json.Unmarshal(record.Document, &view); err != nil {
		return nil, fmt.Errorf("bunstore: decode view document %s: %w", record.ID, err)
	}
	return &view, nil
}

func decodeRecords(records []*ArticleViewRecord) ([]*articles.ArticleView, error) {
	out := make([]*articles.ArticleView, 0, len(records))
	for _, record := range records {
		view, err := decodeRecord(record)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}
