// Package commands exposes the module's command handlers to host
// applications so they can be wired into registries, dispatchers, or CLIs.
package commands

import (
	"errors"

	"github.com/goliatone/go-cms-search/articles"
	internalcmd "github.com/goliatone/go-cms-search/internal/commands"
	articlecmd "github.com/goliatone/go-cms-search/internal/commands/articles"
	"github.com/goliatone/go-cms-search/internal/logging"
	"github.com/goliatone/go-cms-search/pkg/interfaces"
)

// CommandRegistry records command handlers so hosts can expose them via CLI or cron.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	LoggerProvider interfaces.LoggerProvider
}

// RegistrationResult captures the constructed command handlers and any dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// RegisterIndexerCommands builds the article index command handlers around the
// provided indexer and optionally registers them with registry/dispatcher
// integrations.
func RegisterIndexerCommands(indexer articles.Indexer, opts RegistrationOptions) (*RegistrationResult, error) {
	result := &RegistrationResult{
		Handlers:      make([]any, 0),
		Subscriptions: make([]CommandSubscription, 0),
	}
	if indexer == nil {
		return result, nil
	}

	provider := opts.LoggerProvider
	if provider == nil {
		provider = logging.NoOpProvider()
	}
	logger := internalcmd.CommandLogger(provider, "articles")

	var errs error

	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}
	}

	register(articlecmd.NewIndexArticleHandler(indexer, logger))
	register(articlecmd.NewRemoveArticleHandler(indexer, logger))
	register(articlecmd.NewUnpublishArticleHandler(indexer, logger))
	register(articlecmd.NewFlushIndexHandler(indexer, logger))
	register(articlecmd.NewClearIndexHandler(indexer, logger))

	return result, errs
}
