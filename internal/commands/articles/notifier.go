package articlecmd

import (
	"context"

	"github.com/goliatone/go-cms-search/articles"
	"github.com/goliatone/go-cms-search/internal/logging"
	"github.com/goliatone/go-cms-search/pkg/interfaces"
	"github.com/goliatone/go-command/dispatcher"
)

// DispatcherNotifier publishes ArticleIndexedMessage events through the
// go-command dispatcher. Delivery is fire-and-forget: subscriber failures are
// logged and swallowed so they can never corrupt a staged projection.
type DispatcherNotifier struct {
	logger interfaces.Logger
}

// NewDispatcherNotifier constructs a notifier with the provided logger.
func NewDispatcherNotifier(logger interfaces.Logger) *DispatcherNotifier {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &DispatcherNotifier{logger: logger}
}

var _ articles.Notifier = (*DispatcherNotifier)(nil)

// ArticleIndexed implements articles.Notifier.
func (n *DispatcherNotifier) ArticleIndexed(ctx context.Context, doc *articles.Document, view *articles.ArticleView) {
	msg := ArticleIndexedMessage{Document: doc, View: view}
	if err := dispatcher.Dispatch(ctx, msg); err != nil {
		n.logger.Warn("article indexed event delivery failed",
			"article_uuid", doc.UUID.String(),
			"locale", view.Locale,
			"error", err,
		)
	}
}
