package identity_test

import (
	"testing"

	"github.com/goliatone/go-cms-search/internal/identity"
	"github.com/google/uuid"
)

func TestArticleViewUUIDDeterministic(t *testing.T) {
	articleUUID := uuid.MustParse("0c8bcd8b-4a1e-4f2a-9d62-0d9a4bafc0de")

	first := identity.ArticleViewUUID(articleUUID, "en")
	second := identity.ArticleViewUUID(articleUUID, "en")
	if first != second {
		t.Fatalf("same inputs produced different ids: %s vs %s", first, second)
	}
	if first == uuid.Nil {
		t.Fatalf("derived id is nil")
	}
}

func TestArticleViewUUIDVariesByLocale(t *testing.T) {
	articleUUID := uuid.New()

	en := identity.ArticleViewUUID(articleUUID, "en")
	de := identity.ArticleViewUUID(articleUUID, "de")
	if en == de {
		t.Fatalf("different locales produced the same id: %s", en)
	}
}

func TestArticleViewUUIDVariesByArticle(t *testing.T) {
	en1 := identity.ArticleViewUUID(uuid.New(), "en")
	en2 := identity.ArticleViewUUID(uuid.New(), "en")
	if en1 == en2 {
		t.Fatalf("different articles produced the same id: %s", en1)
	}
}

func TestArticleViewUUIDNormalizesLocaleCase(t *testing.T) {
	articleUUID := uuid.New()

	lower := identity.ArticleViewUUID(articleUUID, "en")
	upper := identity.ArticleViewUUID(articleUUID, "EN")
	if lower != upper {
		t.Fatalf("locale casing changed the id: %s vs %s", lower, upper)
	}
}
