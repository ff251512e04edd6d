package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIndexProviderRequired = errors.New("search config: index provider is required")
var ErrIndexProviderUnknown = errors.New("search config: index provider is invalid")
var ErrIndexPathForbidden = errors.New("search config: index path is only valid for the bleve provider")
var ErrClearPageSizeInvalid = errors.New("search config: clear page size must be zero or positive")
var ErrRemoveQueryLimitInvalid = errors.New("search config: remove query limit must be zero or positive")
var ErrStructureNameRequired = errors.New("search config: structure name is required")
var ErrStructureNameDuplicate = errors.New("search config: structure name is duplicated")
var ErrLoggingProviderRequired = errors.New("search config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("search config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("search config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("search config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the search module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled       bool
	DefaultLocale string
	Index         IndexConfig
	Structures    []StructureConfig
	Features      Features
	Logging       LoggingConfig
}

// IndexConfig selects the store backing the article view index.
type IndexConfig struct {
	Provider         string
	Path             string
	ClearPageSize    int
	RemoveQueryLimit int
}

// StructureConfig declares the projection metadata of one article structure
// type: the view type it maps to and which structure properties carry the
// teaser fields.
type StructureConfig struct {
	Name                      string
	Type                      string
	TypeTranslation           string
	TeaserDescriptionProperty string
	TeaserMediaProperty       string
}

// Features toggles module functionality.
type Features struct {
	Events bool
	Logger bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults: an in-memory index with the
// standard paging limits and console logging.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: "en",
		Index: IndexConfig{
			Provider:         "memory",
			ClearPageSize:    500,
			RemoveQueryLimit: 1000,
		},
		Structures: []StructureConfig{},
		Features:   Features{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	provider := normalizeProvider(cfg.Index.Provider)
	if provider == "" {
		return ErrIndexProviderRequired
	}
	if !isSupportedIndexProvider(provider) {
		return fmt.Errorf("%w: %s", ErrIndexProviderUnknown, provider)
	}
	if provider != "bleve" && strings.TrimSpace(cfg.Index.Path) != "" {
		return fmt.Errorf("%w: %s", ErrIndexPathForbidden, provider)
	}
	if cfg.Index.ClearPageSize < 0 {
		return ErrClearPageSizeInvalid
	}
	if cfg.Index.RemoveQueryLimit < 0 {
		return ErrRemoveQueryLimitInvalid
	}
	seen := map[string]struct{}{}
	for _, structure := range cfg.Structures {
		name := strings.TrimSpace(structure.Name)
		if name == "" {
			return ErrStructureNameRequired
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %s", ErrStructureNameDuplicate, name)
		}
		seen[name] = struct{}{}
	}
	if cfg.Features.Logger {
		logProvider := normalizeProvider(cfg.Logging.Provider)
		if logProvider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedLoggingProvider(logProvider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, logProvider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if logProvider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedIndexProvider(provider string) bool {
	switch provider {
	case "memory", "bleve", "bun":
		return true
	default:
		return false
	}
}

func isSupportedLoggingProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
