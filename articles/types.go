package articles

import (
	"time"

	"github.com/goliatone/go-cms-search/domain"
	"github.com/google/uuid"
)

// Extension names recognised on content-document snapshots. Absence of a key
// means the extension is not configured for the structure type; it is never
// an error.
const (
	ExtensionExcerpt = "excerpt"
	ExtensionSEO     = "seo"
)

// Structure tags resolved through structure metadata. Properties are looked
// up by tag, never by name, so templates stay free to rename fields.
const (
	TagTeaserDescription = "teaser.description"
	TagTeaserMedia       = "teaser.media"
)

// Document is the read-only content-document snapshot handed to the indexer.
// Upstream storage resolves versions and locale fallbacks before the snapshot
// reaches this package: a snapshot loaded for a locale with no real
// translation carries the borrowed content with OriginalLocale naming the
// locale the content actually belongs to.
type Document struct {
	UUID           uuid.UUID
	Locale         string
	OriginalLocale string
	StructureType  string
	Title          string
	RoutePath      string
	Created        time.Time
	Changed        time.Time
	Authored       time.Time
	Author         *uuid.UUID
	Changer        *uuid.UUID
	Creator        *uuid.UUID
	WorkflowStage  domain.Stage
	Published      *time.Time
	Extensions     map[string]map[string]any
	Structure      map[string]any
	Children       []PageChild
}

// IsFallback reports whether the snapshot carries borrowed content from
// another locale, i.e. upstream resolved a fallback because no real
// translation exists for Locale.
func (d *Document) IsFallback() bool {
	return d.OriginalLocale != "" && d.OriginalLocale != d.Locale
}

// PageChild is a nested page entity of a content document.
type PageChild struct {
	UUID       uuid.UUID
	PageNumber int
	PageTitle  string
	RoutePath  string
}

// LocalizationState describes how a view document relates to its locale.
type LocalizationState string

const (
	// LocalizationStateLocalized marks a real translation for the locale.
	LocalizationStateLocalized LocalizationState = "localized"
	// LocalizationStateGhost marks content borrowed from a fallback locale so
	// the article stays discoverable under a locale with no real translation.
	LocalizationStateGhost LocalizationState = "ghost"
)

// Localization captures the localization state stored on a view document.
// FallbackLocale names the locale whose content is being reused and is empty
// for localized entries.
type Localization struct {
	State          LocalizationState `json:"state"`
	FallbackLocale string            `json:"fallback_locale,omitempty"`
}

// ViewDocumentType identifies the concrete shape of a view document. The set
// is closed; each variant's shape is statically known.
type ViewDocumentType string

const (
	ViewDocumentTypeArticle     ViewDocumentType = "article"
	ViewDocumentTypeArticlePage ViewDocumentType = "article_page"
)

// ViewDocument is implemented by every indexable view variant.
type ViewDocument interface {
	ViewDocumentType() ViewDocumentType
}

// ArticleView is the denormalized, locale-specific projection stored in the
// search index. Its ID is a pure function of (UUID, Locale) so re-indexing
// the same pair is idempotent.
type ArticleView struct {
	ID                uuid.UUID    `json:"id"`
	UUID              uuid.UUID    `json:"uuid"`
	Locale            string       `json:"locale"`
	Title             string       `json:"title"`
	RoutePath         string       `json:"route_path"`
	Created           time.Time    `json:"created"`
	Changed           time.Time    `json:"changed"`
	Authored          time.Time    `json:"authored"`
	AuthorFullName    string       `json:"author_full_name,omitempty"`
	AuthorID          *uuid.UUID   `json:"author_id,omitempty"`
	ChangerFullName   string       `json:"changer_full_name,omitempty"`
	ChangerContactID  *uuid.UUID   `json:"changer_contact_id,omitempty"`
	CreatorFullName   string       `json:"creator_full_name,omitempty"`
	CreatorContactID  *uuid.UUID   `json:"creator_contact_id,omitempty"`
	Type              string       `json:"type"`
	TypeTranslation   string       `json:"type_translation"`
	StructureType     string       `json:"structure_type"`
	Published         *time.Time   `json:"published,omitempty"`
	PublishedState    bool         `json:"published_state"`
	Localization      Localization `json:"localization"`
	Excerpt           *ExcerptView `json:"excerpt,omitempty"`
	Seo               *SeoView     `json:"seo,omitempty"`
	TeaserDescription string       `json:"teaser_description,omitempty"`
	TeaserMediaID     *int64       `json:"teaser_media_id,omitempty"`
	Pages             []PageView   `json:"pages,omitempty"`
}

// ViewDocumentType implements ViewDocument.
func (*ArticleView) ViewDocumentType() ViewDocumentType { return ViewDocumentTypeArticle }

// Clone returns a deep copy so stores can hand out records without sharing
// mutable state with callers.
func (v *ArticleView) Clone() *ArticleView {
	if v == nil {
		return nil
	}
	copied := *v
	copied.AuthorID = cloneUUID(v.AuthorID)
	copied.ChangerContactID = cloneUUID(v.ChangerContactID)
	copied.CreatorContactID = cloneUUID(v.CreatorContactID)
	copied.Published = cloneTime(v.Published)
	copied.TeaserMediaID = cloneInt64(v.TeaserMediaID)
	copied.Excerpt = v.Excerpt.Clone()
	copied.Seo = v.Seo.Clone()
	if len(v.Pages) > 0 {
		copied.Pages = make([]PageView, len(v.Pages))
		copy(copied.Pages, v.Pages)
	}
	return &copied
}

// PageView is a flattened child page embedded in an article view. Pages are
// fully replaced on every projection; there is no incremental page diffing.
type PageView struct {
	UUID       uuid.UUID `json:"uuid"`
	PageNumber int       `json:"page_number"`
	Title      string    `json:"title"`
	RoutePath  string    `json:"route_path"`
}

// ViewDocumentType implements ViewDocument.
func (*PageView) ViewDocumentType() ViewDocumentType { return ViewDocumentTypeArticlePage }

// ExcerptView is the mapped excerpt extension stored on a view document.
type ExcerptView struct {
	Title        string   `json:"title,omitempty"`
	More         string   `json:"more,omitempty"`
	Description  string   `json:"description,omitempty"`
	Categories   []int64  `json:"categories,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	IconImageID  *int64   `json:"icon_image_id,omitempty"`
	TitleImageID *int64   `json:"title_image_id,omitempty"`
}

// Clone returns a deep copy of the excerpt view.
func (e *ExcerptView) Clone() *ExcerptView {
	if e == nil {
		return nil
	}
	copied := *e
	if len(e.Categories) > 0 {
		copied.Categories = make([]int64, len(e.Categories))
		copy(copied.Categories, e.Categories)
	}
	if len(e.Tags) > 0 {
		copied.Tags = make([]string, len(e.Tags))
		copy(copied.Tags, e.Tags)
	}
	copied.IconImageID = cloneInt64(e.IconImageID)
	copied.TitleImageID = cloneInt64(e.TitleImageID)
	return &copied
}

// SeoView is the mapped SEO extension stored on a view document.
type SeoView struct {
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	Keywords      string `json:"keywords,omitempty"`
	CanonicalURL  string `json:"canonical_url,omitempty"`
	NoIndex       bool   `json:"no_index,omitempty"`
	NoFollow      bool   `json:"no_follow,omitempty"`
	HideInSitemap bool   `json:"hide_in_sitemap,omitempty"`
}

// Clone returns a copy of the SEO view.
func (s *SeoView) Clone() *SeoView {
	if s == nil {
		return nil
	}
	copied := *s
	return &copied
}

// ContactReference is the denormalized directory entry for an author, changer,
// or creator.
type ContactReference struct {
	ID       uuid.UUID
	FullName string
}

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	copied := *id
	return &copied
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}
