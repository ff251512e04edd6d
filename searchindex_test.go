package search_test

import (
	"context"
	"errors"
	"testing"
	"time"

	search "github.com/goliatone/go-cms-search"
	"github.com/goliatone/go-cms-search/articles"
	"github.com/goliatone/go-cms-search/domain"
	"github.com/goliatone/go-cms-search/internal/identity"
	"github.com/goliatone/go-cms-search/pkg/testsupport"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func moduleConfig() search.Config {
	cfg := search.DefaultConfig()
	cfg.Structures = []search.StructureConfig{
		{
			Name:                      "default",
			Type:                      "blog",
			TypeTranslation:           "Blog",
			TeaserDescriptionProperty: "description",
			TeaserMediaProperty:       "media",
		},
	}
	return cfg
}

func moduleDocument(articleUUID uuid.UUID, locale string) *search.Document {
	published := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	return &search.Document{
		UUID:          articleUUID,
		Locale:        locale,
		StructureType: "default",
		Title:         "Module Test",
		RoutePath:     "/articles/module-test",
		WorkflowStage: domain.StagePublished,
		Published:     &published,
		Structure: map[string]any{
			"description": "module teaser",
			"media":       map[string]any{"ids": []any{float64(5)}},
		},
	}
}

func TestModuleIndexRoundTripWithMemoryStore(t *testing.T) {
	module, err := search.New(moduleConfig())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() {
		_ = module.Close()
	})

	ctx := context.Background()
	doc := moduleDocument(uuid.New(), "en")

	if err := module.Articles().Index(ctx, doc); err != nil {
		t.Fatalf("index: %v", err)
	}
	if err := module.Articles().Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}

	view, err := module.Store().FindByID(ctx, identity.ArticleViewUUID(doc.UUID, "en"))
	if err != nil {
		t.Fatalf("find view: %v", err)
	}
	if view.Title != "Module Test" || view.Type != "blog" {
		t.Fatalf("unexpected projection: %+v", view)
	}
	if view.TeaserDescription != "module teaser" || view.TeaserMediaID == nil || *view.TeaserMediaID != 5 {
		t.Fatalf("teaser not wired from config: %q %v", view.TeaserDescription, view.TeaserMediaID)
	}
}

func TestModuleBleveProviderRoundTrip(t *testing.T) {
	cfg := moduleConfig()
	cfg.Index.Provider = "bleve"

	module, err := search.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() {
		_ = module.Close()
	})

	ctx := context.Background()
	doc := moduleDocument(uuid.New(), "en")

	if err := module.Articles().Index(ctx, doc); err != nil {
		t.Fatalf("index: %v", err)
	}
	if err := module.Articles().Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}

	view, err := module.Store().FindByID(ctx, identity.ArticleViewUUID(doc.UUID, "en"))
	if err != nil {
		t.Fatalf("find view: %v", err)
	}
	if view.Title != "Module Test" {
		t.Fatalf("unexpected projection: %+v", view)
	}
}

func TestModuleBunProviderRoundTrip(t *testing.T) {
	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)

	cfg := moduleConfig()
	cfg.Index.Provider = "bun"

	module, err := search.New(cfg, search.WithDatabase(bunDB))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	ctx := context.Background()
	doc := moduleDocument(uuid.New(), "en")

	if err := module.Articles().Index(ctx, doc); err != nil {
		t.Fatalf("index: %v", err)
	}
	if err := module.Articles().Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}

	views, err := module.Store().FindByUUID(ctx, doc.UUID, 10)
	if err != nil {
		t.Fatalf("find by uuid: %v", err)
	}
	if len(views) != 1 || views[0].Title != "Module Test" {
		t.Fatalf("unexpected stored documents: %+v", views)
	}
}

func TestModuleBunProviderRequiresDatabase(t *testing.T) {
	cfg := moduleConfig()
	cfg.Index.Provider = "bun"

	if _, err := search.New(cfg); !errors.Is(err, search.ErrIndexDatabaseRequired) {
		t.Fatalf("expected ErrIndexDatabaseRequired, got %v", err)
	}
}

func TestModuleRejectsInvalidConfig(t *testing.T) {
	cfg := moduleConfig()
	cfg.Index.Provider = "redis"

	if _, err := search.New(cfg); !errors.Is(err, search.ErrIndexProviderUnknown) {
		t.Fatalf("expected ErrIndexProviderUnknown, got %v", err)
	}
}

// recordingNotifier observes projection events handed to the module.
type recordingNotifier struct {
	views []*articles.ArticleView
}

func (r *recordingNotifier) ArticleIndexed(_ context.Context, _ *articles.Document, view *articles.ArticleView) {
	r.views = append(r.views, view)
}

func TestModuleNotifierOverride(t *testing.T) {
	notifier := &recordingNotifier{}

	module, err := search.New(moduleConfig(), search.WithNotifier(notifier))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	doc := moduleDocument(uuid.New(), "en")
	if err := module.Articles().Index(context.Background(), doc); err != nil {
		t.Fatalf("index: %v", err)
	}

	if len(notifier.views) != 1 || notifier.views[0].Title != "Module Test" {
		t.Fatalf("notifier missed the projection: %+v", notifier.views)
	}
}
