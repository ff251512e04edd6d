package commands

import articlecmd "github.com/goliatone/go-cms-search/internal/commands/articles"

// Message aliases so hosts can dispatch module commands without importing
// internal packages.
type (
	IndexArticleCommand     = articlecmd.IndexArticleCommand
	RemoveArticleCommand    = articlecmd.RemoveArticleCommand
	UnpublishArticleCommand = articlecmd.UnpublishArticleCommand
	FlushIndexCommand       = articlecmd.FlushIndexCommand
	ClearIndexCommand       = articlecmd.ClearIndexCommand
	ArticleIndexedMessage   = articlecmd.ArticleIndexedMessage
)
