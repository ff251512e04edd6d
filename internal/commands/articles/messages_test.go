package articlecmd_test

import (
	"testing"

	"github.com/goliatone/go-cms-search/articles"
	articlecmd "github.com/goliatone/go-cms-search/internal/commands/articles"
	"github.com/google/uuid"
)

func TestIndexArticleCommandValidate(t *testing.T) {
	msg := articlecmd.IndexArticleCommand{}
	if err := msg.Validate(); err == nil {
		t.Fatal("expected validation error for missing document")
	}

	msg.Document = &articles.Document{}
	if err := msg.Validate(); err == nil {
		t.Fatal("expected validation error for missing uuid and locale")
	}

	msg.Document = &articles.Document{UUID: uuid.New(), Locale: "en"}
	if err := msg.Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
}

func TestRemoveArticleCommandValidate(t *testing.T) {
	if err := (articlecmd.RemoveArticleCommand{}).Validate(); err == nil {
		t.Fatal("expected validation error for nil uuid")
	}
	if err := (articlecmd.RemoveArticleCommand{UUID: uuid.New()}).Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
}

func TestUnpublishArticleCommandValidate(t *testing.T) {
	if err := (articlecmd.UnpublishArticleCommand{}).Validate(); err == nil {
		t.Fatal("expected validation error for nil view id")
	}
	if err := (articlecmd.UnpublishArticleCommand{ViewID: uuid.New()}).Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
}

func TestArticleIndexedMessageValidate(t *testing.T) {
	if err := (articlecmd.ArticleIndexedMessage{}).Validate(); err == nil {
		t.Fatal("expected validation error for empty event")
	}
	msg := articlecmd.ArticleIndexedMessage{
		Document: &articles.Document{UUID: uuid.New(), Locale: "en"},
		View:     &articles.ArticleView{},
	}
	if err := msg.Validate(); err != nil {
		t.Fatalf("expected valid event, got %v", err)
	}
}

func TestMessageTypesAreNamespaced(t *testing.T) {
	types := []string{
		articlecmd.IndexArticleCommand{}.Type(),
		articlecmd.RemoveArticleCommand{}.Type(),
		articlecmd.UnpublishArticleCommand{}.Type(),
		articlecmd.FlushIndexCommand{}.Type(),
		articlecmd.ClearIndexCommand{}.Type(),
		articlecmd.ArticleIndexedMessage{}.Type(),
	}
	seen := map[string]bool{}
	for _, typ := range types {
		if seen[typ] {
			t.Fatalf("duplicate message type %q", typ)
		}
		seen[typ] = true
	}
}
