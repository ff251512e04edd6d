package indexer

import (
	"context"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-cms-search/articles"
	"github.com/goliatone/go-cms-search/internal/identity"
	"github.com/goliatone/go-cms-search/internal/logging"
	"github.com/goliatone/go-cms-search/pkg/interfaces"
	"github.com/google/uuid"
)

// structureFamilyArticle names the metadata family every article template
// belongs to.
const structureFamilyArticle = articles.StructureFamilyArticle

const (
	defaultRemoveQueryLimit = 1000
	defaultClearPageSize    = 500
)

// ServiceOption configures the indexer at construction time.
type ServiceOption func(*service)

// WithLogger injects the logger used by the indexer. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithContactResolver wires the directory resolver used to denormalize
// author/changer/creator references. Without a resolver those fields stay
// unset.
func WithContactResolver(resolver articles.ContactResolver) ServiceOption {
	return func(s *service) {
		s.contacts = resolver
	}
}

// WithNotifier wires the collaborator notified after every successful
// projection.
func WithNotifier(notifier articles.Notifier) ServiceOption {
	return func(s *service) {
		s.notifier = notifier
	}
}

// WithViewFactory overrides the view-document factory.
func WithViewFactory(factory articles.ViewDocumentFactory) ServiceOption {
	return func(s *service) {
		if factory != nil {
			s.factory = factory
		}
	}
}

// WithExcerptMapper overrides the excerpt extension mapper.
func WithExcerptMapper(mapper articles.ExcerptMapperFunc) ServiceOption {
	return func(s *service) {
		if mapper != nil {
			s.excerptMapper = mapper
		}
	}
}

// WithSeoMapper overrides the SEO extension mapper.
func WithSeoMapper(mapper articles.SeoMapperFunc) ServiceOption {
	return func(s *service) {
		if mapper != nil {
			s.seoMapper = mapper
		}
	}
}

// WithRemoveQueryLimit bounds how many locale variants a single Remove call
// collects. Values below one fall back to the default.
func WithRemoveQueryLimit(limit int) ServiceOption {
	return func(s *service) {
		if limit > 0 {
			s.removeQueryLimit = limit
		}
	}
}

// WithClearPageSize bounds the page size of the Clear loop. Values below one
// fall back to the default.
func WithClearPageSize(size int) ServiceOption {
	return func(s *service) {
		if size > 0 {
			s.clearPageSize = size
		}
	}
}

// service implements articles.Indexer.
type service struct {
	store            articles.IndexStore
	structures       articles.StructureProvider
	contacts         articles.ContactResolver
	factory          articles.ViewDocumentFactory
	excerptMapper    articles.ExcerptMapperFunc
	seoMapper        articles.SeoMapperFunc
	notifier         articles.Notifier
	logger           interfaces.Logger
	batch            articles.Batch
	removeQueryLimit int
	clearPageSize    int
}

// NewService constructs the article indexer with the required collaborators.
func NewService(store articles.IndexStore, structures articles.StructureProvider, opts ...ServiceOption) articles.Indexer {
	s := &service{
		store:            store,
		structures:       structures,
		factory:          articles.NewViewDocument,
		excerptMapper:    MapExcerpt,
		seoMapper:        MapSeo,
		logger:           logging.NoOp(),
		removeQueryLimit: defaultRemoveQueryLimit,
		clearPageSize:    defaultClearPageSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Index projects the document for its locale and stages the resulting view
// document for persistence. Snapshots carrying borrowed fallback content are
// projected in ghost state; a ghost never overwrites a real translation.
func (s *service) Index(ctx context.Context, doc *articles.Document) error {
	if doc == nil {
		return articles.ErrDocumentRequired
	}
	if doc.UUID == uuid.Nil {
		return articles.ErrDocumentUUIDRequired
	}
	locale := strings.TrimSpace(doc.Locale)
	if locale == "" {
		return articles.ErrLocaleRequired
	}

	state := articles.LocalizationStateLocalized
	if doc.IsFallback() {
		state = articles.LocalizationStateGhost
	}

	view, err := s.project(ctx, doc, locale, state)
	if err != nil {
		return err
	}
	if view == nil {
		logging.WithIndexContext(s.logger, doc.UUID.String(), locale, "index").
			Debug("ghost projection suppressed, localized entry exists")
		return nil
	}

	s.batch.Persist(view)
	return nil
}

// Remove stages the deletion of every locale variant of the article.
// Articles that were never indexed make this a no-op.
func (s *service) Remove(ctx context.Context, articleUUID uuid.UUID) error {
	if articleUUID == uuid.Nil {
		return articles.ErrDocumentUUIDRequired
	}

	views, err := s.store.FindByUUID(ctx, articleUUID, s.removeQueryLimit)
	if err != nil {
		return err
	}
	for _, view := range views {
		s.batch.Remove(view.ID)
	}
	return nil
}

// SetUnpublished clears the publish markers of the view document with the
// given composite id without re-running the projection. Absent documents are
// a no-op.
func (s *service) SetUnpublished(ctx context.Context, viewID uuid.UUID) error {
	if viewID == uuid.Nil {
		return articles.ErrViewIDRequired
	}

	view, err := s.store.FindByID(ctx, viewID)
	if err != nil {
		var notFound *articles.NotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	view.Published = nil
	view.PublishedState = false
	s.batch.Persist(view)
	return nil
}

// Flush commits every staged persist/remove operation as a single batch.
// Staged changes are not visible to readers before Flush.
func (s *service) Flush(ctx context.Context) error {
	if s.batch.Len() == 0 {
		return nil
	}
	if err := s.store.Apply(ctx, &s.batch); err != nil {
		return err
	}
	s.batch.Reset()
	return nil
}

// Clear deletes every view document through a bounded page loop: each page
// commits before the next query so removed documents cannot reappear. The
// loop is sequential by contract.
func (s *service) Clear(ctx context.Context) error {
	for {
		views, err := s.store.FindAll(ctx, s.clearPageSize)
		if err != nil {
			return err
		}
		if len(views) == 0 {
			break
		}

		var page articles.Batch
		for _, view := range views {
			page.Remove(view.ID)
		}
		if err := s.store.Apply(ctx, &page); err != nil {
			return err
		}
	}

	if err := s.store.InvalidateQueryCache(ctx); err != nil {
		return err
	}
	return s.Flush(ctx)
}

// project resolves or creates the view document for (doc.UUID, locale) and
// fills every denormalized field. It returns nil without error when a ghost
// projection would overwrite a real translation.
func (s *service) project(ctx context.Context, doc *articles.Document, locale string, state articles.LocalizationState) (*articles.ArticleView, error) {
	id := identity.ArticleViewUUID(doc.UUID, locale)

	view, err := s.store.FindByID(ctx, id)
	if err != nil {
		var notFound *articles.NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		view = nil
	}

	// Ghost status is strictly weaker: it must never regress an existing
	// non-ghost entry at the same id.
	if view != nil && state == articles.LocalizationStateGhost && view.Localization.State != articles.LocalizationStateGhost {
		return nil, nil
	}

	if view == nil {
		created, err := s.factory(articles.ViewDocumentTypeArticle)
		if err != nil {
			return nil, err
		}
		article, ok := created.(*articles.ArticleView)
		if !ok {
			return nil, articles.ErrUnknownViewType
		}
		view = article
		view.ID = id
		view.UUID = doc.UUID
		view.Locale = locale
	}

	meta, err := s.structures.Get(ctx, structureFamilyArticle, doc.StructureType)
	if err != nil {
		return nil, &articles.StructureMetadataError{
			Family:        structureFamilyArticle,
			StructureType: doc.StructureType,
			Err:           err,
		}
	}

	view.Title = doc.Title
	view.RoutePath = doc.RoutePath
	view.Created = doc.Created
	view.Changed = doc.Changed
	view.Authored = doc.Authored

	s.resolveContact(ctx, doc.Author, func(ref *articles.ContactReference) {
		view.AuthorFullName = ref.FullName
		contactID := ref.ID
		view.AuthorID = &contactID
	})
	s.resolveContact(ctx, doc.Changer, func(ref *articles.ContactReference) {
		view.ChangerFullName = ref.FullName
		contactID := ref.ID
		view.ChangerContactID = &contactID
	})
	s.resolveContact(ctx, doc.Creator, func(ref *articles.ContactReference) {
		view.CreatorFullName = ref.FullName
		contactID := ref.ID
		view.CreatorContactID = &contactID
	})

	view.Type = meta.Type
	if view.Type == "" {
		view.Type = structureFamilyArticle
	}
	view.TypeTranslation = meta.TypeTranslation
	if view.TypeTranslation == "" {
		view.TypeTranslation = capitalize(view.Type)
	}
	view.StructureType = doc.StructureType
	view.Published = doc.Published
	view.PublishedState = doc.WorkflowStage.IsPublished()

	view.Localization = articles.Localization{State: state}
	if state == articles.LocalizationStateGhost {
		view.Localization.FallbackLocale = doc.OriginalLocale
	}

	if raw, ok := doc.Extensions[articles.ExtensionExcerpt]; ok {
		view.Excerpt = s.excerptMapper(raw, doc.Locale)
	}
	if raw, ok := doc.Extensions[articles.ExtensionSEO]; ok {
		view.Seo = s.seoMapper(raw)
	}

	if meta.HasTag(articles.TagTeaserDescription) {
		view.TeaserDescription = stringValue(doc.Structure[meta.PropertyForTag(articles.TagTeaserDescription)])
	}
	if meta.HasTag(articles.TagTeaserMedia) {
		view.TeaserMediaID = firstMediaID(doc.Structure[meta.PropertyForTag(articles.TagTeaserMedia)])
	}

	view.Pages = flattenPages(doc.Children)

	if s.notifier != nil {
		s.notifier.ArticleIndexed(ctx, doc, view)
	}

	return view, nil
}

// resolveContact looks up a directory reference and applies it on success.
// Missing entries are tolerated: the view fields stay untouched.
func (s *service) resolveContact(ctx context.Context, contactID *uuid.UUID, apply func(*articles.ContactReference)) {
	if contactID == nil || s.contacts == nil {
		return
	}

	ref, err := s.contacts.ByID(ctx, *contactID)
	if err != nil {
		var notFound *articles.NotFoundError
		if errors.As(err, &notFound) {
			s.logger.Debug("contact lookup missed, leaving denormalized fields unset", "contact_id", contactID.String())
			return
		}
		s.logger.Warn("contact lookup failed, leaving denormalized fields unset", "contact_id", contactID.String(), "error", err)
		return
	}
	apply(ref)
}

// flattenPages rebuilds the page sequence from the document children,
// preserving source order. The result fully replaces any previous pages.
func flattenPages(children []articles.PageChild) []articles.PageView {
	if len(children) == 0 {
		return nil
	}
	pages := make([]articles.PageView, 0, len(children))
	for _, child := range children {
		pages = append(pages, articles.PageView{
			UUID:       child.UUID,
			PageNumber: child.PageNumber,
			Title:      child.PageTitle,
			RoutePath:  child.RoutePath,
		})
	}
	return pages
}

func capitalize(value string) string {
	if value == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(value)
	return string(unicode.ToUpper(first)) + value[size:]
}
