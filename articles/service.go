package articles

import (
	"context"

	"github.com/google/uuid"
)

// Indexer maintains the article search index. Index, Remove, and
// SetUnpublished stage changes into an in-memory batch; nothing becomes
// visible to readers until Flush commits the batch. Each call is synchronous
// and self-contained; concurrent writers for the same (uuid, locale) pair are
// resolved by the backing store's own last-write-wins semantics.
type Indexer interface {
	Index(ctx context.Context, doc *Document) error
	Remove(ctx context.Context, articleUUID uuid.UUID) error
	SetUnpublished(ctx context.Context, viewID uuid.UUID) error
	Flush(ctx context.Context) error
	Clear(ctx context.Context) error
}

// ContactResolver denormalizes directory ids into name/id pairs. Missing
// entries are reported with *NotFoundError; the indexer treats those as a
// tolerated partial result and leaves the corresponding view fields unset.
type ContactResolver interface {
	ByID(ctx context.Context, id uuid.UUID) (*ContactReference, error)
}

// StructureFamilyArticle names the metadata family every article template
// belongs to when resolving structure metadata.
const StructureFamilyArticle = "article"

// StructureMetadata describes the property schema of a structure type,
// including which properties carry teaser tags.
type StructureMetadata struct {
	Type            string
	TypeTranslation string
	TagProperties   map[string]string
}

// HasTag reports whether the schema declares a property carrying the tag.
func (m *StructureMetadata) HasTag(tag string) bool {
	if m == nil {
		return false
	}
	_, ok := m.TagProperties[tag]
	return ok
}

// PropertyForTag returns the name of the property carrying the tag, or an
// empty string when the tag is not declared.
func (m *StructureMetadata) PropertyForTag(tag string) string {
	if m == nil {
		return ""
	}
	return m.TagProperties[tag]
}

// StructureProvider resolves structure metadata for a (family, structure type)
// pair. Absence is a misconfiguration and must surface as an error.
type StructureProvider interface {
	Get(ctx context.Context, family, structureType string) (*StructureMetadata, error)
}

// ExcerptMapperFunc maps raw excerpt extension data into its view object for
// the given locale. Implementations must be pure.
type ExcerptMapperFunc func(raw map[string]any, locale string) *ExcerptView

// SeoMapperFunc maps raw SEO extension data into its view object.
// Implementations must be pure.
type SeoMapperFunc func(raw map[string]any) *SeoView

// Notifier receives a notification after every successful projection,
// carrying the source document and the resulting view document. Notification
// is fire-and-forget: implementations own their error policy and must not
// surface failures back into the indexing path.
type Notifier interface {
	ArticleIndexed(ctx context.Context, doc *Document, view *ArticleView)
}

// NotifierFunc adapts a function to the Notifier contract.
type NotifierFunc func(ctx context.Context, doc *Document, view *ArticleView)

// ArticleIndexed implements Notifier.
func (f NotifierFunc) ArticleIndexed(ctx context.Context, doc *Document, view *ArticleView) {
	f(ctx, doc, view)
}
