package indexer_test

import (
	"testing"

	"github.com/goliatone/go-cms-search/internal/indexer"
)

func TestMapExcerpt(t *testing.T) {
	raw := map[string]any{
		"title":       "Intro",
		"more":        "Read on",
		"description": "A longer text",
		"categories":  []any{float64(1), float64(2)},
		"tags":        []any{"go", "cms"},
		"icon":        map[string]any{"ids": []any{float64(11)}},
		"images":      map[string]any{"ids": []any{float64(21), float64(22)}},
	}

	view := indexer.MapExcerpt(raw, "en")
	if view == nil {
		t.Fatalf("expected excerpt view")
	}
	if view.Title != "Intro" || view.More != "Read on" || view.Description != "A longer text" {
		t.Fatalf("unexpected text fields: %+v", view)
	}
	if len(view.Categories) != 2 || view.Categories[0] != 1 {
		t.Fatalf("unexpected categories: %v", view.Categories)
	}
	if len(view.Tags) != 2 || view.Tags[1] != "cms" {
		t.Fatalf("unexpected tags: %v", view.Tags)
	}
	if view.IconImageID == nil || *view.IconImageID != 11 {
		t.Fatalf("unexpected icon image: %v", view.IconImageID)
	}
	if view.TitleImageID == nil || *view.TitleImageID != 21 {
		t.Fatalf("expected first title image, got %v", view.TitleImageID)
	}
}

func TestMapExcerptNilPayload(t *testing.T) {
	if view := indexer.MapExcerpt(nil, "en"); view != nil {
		t.Fatalf("expected nil view for nil payload, got %+v", view)
	}
}

func TestMapExcerptToleratesMalformedFields(t *testing.T) {
	raw := map[string]any{
		"title":      42,
		"categories": "not-a-list",
		"icon":       "not-a-media-selection",
	}

	view := indexer.MapExcerpt(raw, "en")
	if view.Title != "" || view.Categories != nil || view.IconImageID != nil {
		t.Fatalf("malformed fields leaked into the view: %+v", view)
	}
}

func TestMapSeo(t *testing.T) {
	raw := map[string]any{
		"title":         "SEO title",
		"description":   "SEO description",
		"keywords":      "go,cms,search",
		"canonicalUrl":  "https://example.com/articles/intro",
		"noIndex":       true,
		"noFollow":      false,
		"hideInSitemap": true,
	}

	view := indexer.MapSeo(raw)
	if view == nil {
		t.Fatalf("expected seo view")
	}
	if view.Title != "SEO title" || view.CanonicalURL != "https://example.com/articles/intro" {
		t.Fatalf("unexpected fields: %+v", view)
	}
	if !view.NoIndex || view.NoFollow || !view.HideInSitemap {
		t.Fatalf("unexpected flags: %+v", view)
	}
}

func TestMapSeoNilPayload(t *testing.T) {
	if view := indexer.MapSeo(nil); view != nil {
		t.Fatalf("expected nil view for nil payload, got %+v", view)
	}
}
