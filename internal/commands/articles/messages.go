package articlecmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-cms-search/articles"
	"github.com/google/uuid"
)

const (
	indexArticleMessageType     = "search.articles.index"
	removeArticleMessageType    = "search.articles.remove"
	unpublishArticleMessageType = "search.articles.unpublish"
	flushIndexMessageType       = "search.articles.flush"
	clearIndexMessageType       = "search.articles.clear"
	articleIndexedMessageType   = "search.articles.indexed"
)

// IndexArticleCommand requests the projection of a content-document snapshot
// into the search index. The staged result becomes durable on the next flush.
type IndexArticleCommand struct {
	Document *articles.Document `json:"document"`
}

// Type implements command.Message.
func (IndexArticleCommand) Type() string { return indexArticleMessageType }

// Validate ensures the message carries an indexable snapshot before reaching handlers.
func (m IndexArticleCommand) Validate() error {
	errs := validation.Errors{}
	if m.Document == nil {
		errs["document"] = validation.NewError("search.articles.index.document_required", "document is required")
	} else {
		if m.Document.UUID == uuid.Nil {
			errs["document.uuid"] = validation.NewError("search.articles.index.uuid_required", "document uuid is required")
		}
		if m.Document.Locale == "" {
			errs["document.locale"] = validation.NewError("search.articles.index.locale_required", "document locale is required")
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RemoveArticleCommand requests the staged deletion of every locale variant
// of an article.
type RemoveArticleCommand struct {
	UUID uuid.UUID `json:"uuid"`
}

// Type implements command.Message.
func (RemoveArticleCommand) Type() string { return removeArticleMessageType }

// Validate ensures the message names an article.
func (m RemoveArticleCommand) Validate() error {
	errs := validation.Errors{}
	if m.UUID == uuid.Nil {
		errs["uuid"] = validation.NewError("search.articles.remove.uuid_required", "article uuid is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UnpublishArticleCommand clears the publish markers of a single view
// document identified by its composite id.
type UnpublishArticleCommand struct {
	ViewID uuid.UUID `json:"view_id"`
}

// Type implements command.Message.
func (UnpublishArticleCommand) Type() string { return unpublishArticleMessageType }

// Validate ensures the message names a view document.
func (m UnpublishArticleCommand) Validate() error {
	errs := validation.Errors{}
	if m.ViewID == uuid.Nil {
		errs["view_id"] = validation.NewError("search.articles.unpublish.view_id_required", "view document id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// FlushIndexCommand commits every staged persist/remove operation.
type FlushIndexCommand struct{}

// Type implements command.Message.
func (FlushIndexCommand) Type() string { return flushIndexMessageType }

// Validate implements command.Message.
func (FlushIndexCommand) Validate() error { return nil }

// ClearIndexCommand deletes every view document of the managed type.
type ClearIndexCommand struct{}

// Type implements command.Message.
func (ClearIndexCommand) Type() string { return clearIndexMessageType }

// Validate implements command.Message.
func (ClearIndexCommand) Validate() error { return nil }

// ArticleIndexedMessage is emitted after every successful projection,
// carrying the source document and the resulting view document. Subscribers
// own their error policy; the indexing path never observes their failures.
type ArticleIndexedMessage struct {
	Document *articles.Document    `json:"document"`
	View     *articles.ArticleView `json:"view"`
}

// Type implements command.Message.
func (ArticleIndexedMessage) Type() string { return articleIndexedMessageType }

// Validate ensures the event carries both sides of the projection.
func (m ArticleIndexedMessage) Validate() error {
	errs := validation.Errors{}
	if m.Document == nil {
		errs["document"] = validation.NewError("search.articles.indexed.document_required", "document is required")
	}
	if m.View == nil {
		errs["view"] = validation.NewError("search.articles.indexed.view_required", "view document is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
