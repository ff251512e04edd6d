package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ArticleViewUUID derives the composite identifier for an article view
// document. The id is a pure function of (article uuid, locale) so indexing
// the same pair is idempotent and never orphans a prior entry.
func ArticleViewUUID(articleID uuid.UUID, locale string) uuid.UUID {
	return UUID("go-cms-search:article_view:" + articleID.String() + ":" + strings.ToLower(strings.TrimSpace(locale)))
}
