package articlecmd

import (
	"context"

	"github.com/goliatone/go-cms-search/articles"
	"github.com/goliatone/go-cms-search/internal/commands"
	"github.com/goliatone/go-cms-search/pkg/interfaces"
)

// IndexArticleHandler projects snapshots via the indexer using the shared
// command handler foundation.
type IndexArticleHandler struct {
	inner *commands.Handler[IndexArticleCommand]
}

// NewIndexArticleHandler constructs a handler wired to the provided indexer.
func NewIndexArticleHandler(indexer articles.Indexer, logger interfaces.Logger, opts ...commands.HandlerOption[IndexArticleCommand]) *IndexArticleHandler {
	exec := func(ctx context.Context, msg IndexArticleCommand) error {
		return indexer.Index(ctx, msg.Document)
	}

	handlerOpts := []commands.HandlerOption[IndexArticleCommand]{
		commands.WithLogger[IndexArticleCommand](logger),
		commands.WithOperation[IndexArticleCommand]("articles.index"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &IndexArticleHandler{
		inner: commands.NewHandler[IndexArticleCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[IndexArticleCommand].Execute.
func (h *IndexArticleHandler) Execute(ctx context.Context, msg IndexArticleCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RemoveArticleHandler stages deletions of every locale variant of an article.
type RemoveArticleHandler struct {
	inner *commands.Handler[RemoveArticleCommand]
}

// NewRemoveArticleHandler constructs a handler wired to the provided indexer.
func NewRemoveArticleHandler(indexer articles.Indexer, logger interfaces.Logger, opts ...commands.HandlerOption[RemoveArticleCommand]) *RemoveArticleHandler {
	exec := func(ctx context.Context, msg RemoveArticleCommand) error {
		return indexer.Remove(ctx, msg.UUID)
	}

	handlerOpts := []commands.HandlerOption[RemoveArticleCommand]{
		commands.WithLogger[RemoveArticleCommand](logger),
		commands.WithOperation[RemoveArticleCommand]("articles.remove"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RemoveArticleHandler{
		inner: commands.NewHandler[RemoveArticleCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RemoveArticleCommand].Execute.
func (h *RemoveArticleHandler) Execute(ctx context.Context, msg RemoveArticleCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UnpublishArticleHandler clears publish markers on a single view document.
type UnpublishArticleHandler struct {
	inner *commands.Handler[UnpublishArticleCommand]
}

// NewUnpublishArticleHandler constructs a handler wired to the provided indexer.
func NewUnpublishArticleHandler(indexer articles.Indexer, logger interfaces.Logger, opts ...commands.HandlerOption[UnpublishArticleCommand]) *UnpublishArticleHandler {
	exec := func(ctx context.Context, msg UnpublishArticleCommand) error {
		return indexer.SetUnpublished(ctx, msg.ViewID)
	}

	handlerOpts := []commands.HandlerOption[UnpublishArticleCommand]{
		commands.WithLogger[UnpublishArticleCommand](logger),
		commands.WithOperation[UnpublishArticleCommand]("articles.unpublish"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UnpublishArticleHandler{
		inner: commands.NewHandler[UnpublishArticleCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UnpublishArticleCommand].Execute.
func (h *UnpublishArticleHandler) Execute(ctx context.Context, msg UnpublishArticleCommand) error {
	return h.inner.Execute(ctx, msg)
}

// FlushIndexHandler commits staged operations.
type FlushIndexHandler struct {
	inner *commands.Handler[FlushIndexCommand]
}

// NewFlushIndexHandler constructs a handler wired to the provided indexer.
func NewFlushIndexHandler(indexer articles.Indexer, logger interfaces.Logger, opts ...commands.HandlerOption[FlushIndexCommand]) *FlushIndexHandler {
	exec := func(ctx context.Context, _ FlushIndexCommand) error {
		return indexer.Flush(ctx)
	}

	handlerOpts := []commands.HandlerOption[FlushIndexCommand]{
		commands.WithLogger[FlushIndexCommand](logger),
		commands.WithOperation[FlushIndexCommand]("articles.flush"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &FlushIndexHandler{
		inner: commands.NewHandler[FlushIndexCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[FlushIndexCommand].Execute.
func (h *FlushIndexHandler) Execute(ctx context.Context, msg FlushIndexCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ClearIndexHandler empties the managed index.
type ClearIndexHandler struct {
	inner *commands.Handler[ClearIndexCommand]
}

// NewClearIndexHandler constructs a handler wired to the provided indexer.
func NewClearIndexHandler(indexer articles.Indexer, logger interfaces.Logger, opts ...commands.HandlerOption[ClearIndexCommand]) *ClearIndexHandler {
	exec := func(ctx context.Context, _ ClearIndexCommand) error {
		return indexer.Clear(ctx)
	}

	handlerOpts := []commands.HandlerOption[ClearIndexCommand]{
		commands.WithLogger[ClearIndexCommand](logger),
		commands.WithOperation[ClearIndexCommand]("articles.clear"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ClearIndexHandler{
		inner: commands.NewHandler[ClearIndexCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ClearIndexCommand].Execute.
func (h *ClearIndexHandler) Execute(ctx context.Context, msg ClearIndexCommand) error {
	return h.inner.Execute(ctx, msg)
}
