package search

import "github.com/goliatone/go-cms-search/internal/runtimeconfig"

var (
	ErrIndexProviderRequired   = runtimeconfig.ErrIndexProviderRequired
	ErrIndexProviderUnknown    = runtimeconfig.ErrIndexProviderUnknown
	ErrIndexPathForbidden      = runtimeconfig.ErrIndexPathForbidden
	ErrClearPageSizeInvalid    = runtimeconfig.ErrClearPageSizeInvalid
	ErrRemoveQueryLimitInvalid = runtimeconfig.ErrRemoveQueryLimitInvalid
	ErrStructureNameRequired   = runtimeconfig.ErrStructureNameRequired
	ErrStructureNameDuplicate  = runtimeconfig.ErrStructureNameDuplicate
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config          = runtimeconfig.Config
	IndexConfig     = runtimeconfig.IndexConfig
	StructureConfig = runtimeconfig.StructureConfig
	Features        = runtimeconfig.Features
	LoggingConfig   = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
