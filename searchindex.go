package search

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-cms-search/articles"
	"github.com/goliatone/go-cms-search/internal/adapters/blevestore"
	"github.com/goliatone/go-cms-search/internal/adapters/bunstore"
	articlecmd "github.com/goliatone/go-cms-search/internal/commands/articles"
	"github.com/goliatone/go-cms-search/internal/indexer"
	"github.com/goliatone/go-cms-search/internal/logging"
	"github.com/goliatone/go-cms-search/internal/logging/gologger"
	"github.com/goliatone/go-cms-search/pkg/interfaces"
	"github.com/uptrace/bun"
)

// ErrIndexDatabaseRequired indicates the bun index provider was selected
// without handing the module a database.
var ErrIndexDatabaseRequired = errors.New("search: bun index provider requires a database handle")

// Indexer exports the article indexer contract for consumers of the search package.
type Indexer = articles.Indexer

// IndexStore exports the store contract so hosts can supply their own backend.
type IndexStore = articles.IndexStore

// Document exports the content-document snapshot accepted by Index.
type Document = articles.Document

// ArticleView exports the denormalized view document shape.
type ArticleView = articles.ArticleView

// StructureProvider exports the structure metadata lookup contract.
type StructureProvider = articles.StructureProvider

// ContactResolver exports the contact lookup contract.
type ContactResolver = articles.ContactResolver

// Notifier exports the post-projection event contract.
type Notifier = articles.Notifier

// Option overrides a dependency the module would otherwise construct itself.
type Option func(*dependencies)

type dependencies struct {
	db         *bun.DB
	store      articles.IndexStore
	structures articles.StructureProvider
	contacts   articles.ContactResolver
	notifier   articles.Notifier
	logging    interfaces.LoggerProvider
	factory    articles.ViewDocumentFactory
}

// WithDatabase supplies the bun handle backing the "bun" index provider.
func WithDatabase(db *bun.DB) Option {
	return func(d *dependencies) { d.db = db }
}

// WithStore replaces the configured index store with a host-provided one.
func WithStore(store articles.IndexStore) Option {
	return func(d *dependencies) { d.store = store }
}

// WithStructureProvider replaces the config-seeded structure metadata source.
func WithStructureProvider(provider articles.StructureProvider) Option {
	return func(d *dependencies) { d.structures = provider }
}

// WithContactResolver wires author and editor name resolution.
func WithContactResolver(resolver articles.ContactResolver) Option {
	return func(d *dependencies) { d.contacts = resolver }
}

// WithNotifier replaces the dispatcher-backed notifier.
func WithNotifier(notifier articles.Notifier) Option {
	return func(d *dependencies) { d.notifier = notifier }
}

// WithLoggerProvider replaces the config-driven logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(d *dependencies) { d.logging = provider }
}

// WithViewDocumentFactory replaces the view document constructor.
func WithViewDocumentFactory(factory articles.ViewDocumentFactory) Option {
	return func(d *dependencies) { d.factory = factory }
}

// Module represents the top level search index runtime façade.
type Module struct {
	cfg        Config
	logging    interfaces.LoggerProvider
	store      articles.IndexStore
	structures articles.StructureProvider
	indexer    articles.Indexer
	bleve      *blevestore.Store
}

// New constructs a search module using the provided configuration and
// optional dependency overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deps := dependencies{}
	for _, opt := range opts {
		opt(&deps)
	}

	m := &Module{cfg: cfg}

	if deps.logging != nil {
		m.logging = deps.logging
	} else {
		provider, err := buildLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		m.logging = provider
	}

	if deps.store != nil {
		m.store = deps.store
	} else {
		store, err := buildStore(cfg, deps.db)
		if err != nil {
			return nil, err
		}
		m.store = store
		if bstore, ok := store.(*blevestore.Store); ok {
			m.bleve = bstore
		}
	}

	if deps.structures != nil {
		m.structures = deps.structures
	} else {
		m.structures = buildStructureProvider(cfg)
	}

	notifier := deps.notifier
	if notifier == nil && cfg.Features.Events {
		notifier = articlecmd.NewDispatcherNotifier(logging.ArticlesLogger(m.logging))
	}

	serviceOpts := []indexer.ServiceOption{
		indexer.WithLogger(logging.ArticlesLogger(m.logging)),
	}
	if deps.contacts != nil {
		serviceOpts = append(serviceOpts, indexer.WithContactResolver(deps.contacts))
	}
	if notifier != nil {
		serviceOpts = append(serviceOpts, indexer.WithNotifier(notifier))
	}
	if deps.factory != nil {
		serviceOpts = append(serviceOpts, indexer.WithViewFactory(deps.factory))
	}
	if cfg.Index.ClearPageSize > 0 {
		serviceOpts = append(serviceOpts, indexer.WithClearPageSize(cfg.Index.ClearPageSize))
	}
	if cfg.Index.RemoveQueryLimit > 0 {
		serviceOpts = append(serviceOpts, indexer.WithRemoveQueryLimit(cfg.Index.RemoveQueryLimit))
	}

	m.indexer = indexer.NewService(m.store, m.structures, serviceOpts...)
	return m, nil
}

// Articles returns the configured article indexer.
func (m *Module) Articles() Indexer {
	return m.indexer
}

// Store exposes the index store backing the module.
func (m *Module) Store() IndexStore {
	return m.store
}

// Structures exposes the structure metadata provider backing the module.
func (m *Module) Structures() StructureProvider {
	return m.structures
}

// LoggerProvider exposes the provider used for module loggers.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.logging
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// Close releases store resources owned by the module. Host-provided stores
// stay open; the host owns their lifecycle.
func (m *Module) Close() error {
	if m == nil || m.bleve == nil {
		return nil
	}
	return m.bleve.Close()
}

func buildLoggerProvider(cfg Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return logging.NoOpProvider(), nil
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	default:
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    "console",
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	}
}

func buildStore(cfg Config, db *bun.DB) (articles.IndexStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Index.Provider)) {
	case "bleve":
		return blevestore.New(cfg.Index.Path)
	case "bun":
		if db == nil {
			return nil, ErrIndexDatabaseRequired
		}
		store := bunstore.New(db)
		if err := store.Init(context.Background()); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return indexer.NewMemoryIndexStore(), nil
	}
}

func buildStructureProvider(cfg Config) articles.StructureProvider {
	provider := indexer.NewMemoryStructureProvider()
	for _, structure := range cfg.Structures {
		tags := map[string]string{}
		if prop := strings.TrimSpace(structure.TeaserDescriptionProperty); prop != "" {
			tags[articles.TagTeaserDescription] = prop
		}
		if prop := strings.TrimSpace(structure.TeaserMediaProperty); prop != "" {
			tags[articles.TagTeaserMedia] = prop
		}
		provider.Put(articles.StructureFamilyArticle, structure.Name, &articles.StructureMetadata{
			Type:            structure.Type,
			TypeTranslation: structure.TypeTranslation,
			TagProperties:   tags,
		})
	}
	return provider
}
