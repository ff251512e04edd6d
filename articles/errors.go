package articles

import (
	"errors"
	"fmt"
)

var (
	ErrDocumentRequired     = errors.New("articles: document is required")
	ErrDocumentUUIDRequired = errors.New("articles: document uuid is required")
	ErrLocaleRequired       = errors.New("articles: document locale is required")
	ErrViewIDRequired       = errors.New("articles: view document id is required")
	ErrUnknownViewType      = errors.New("articles: unknown view document type")
)

// NotFoundError represents missing records from store or resolver lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// StructureMetadataError indicates the structure metadata for a document's
// template could not be resolved. This is a misconfiguration: the index call
// aborts and the error propagates to the caller.
type StructureMetadataError struct {
	Family        string
	StructureType string
	Err           error
}

func (e *StructureMetadataError) Error() string {
	return fmt.Sprintf("articles: no structure metadata for %s/%s: %v", e.Family, e.StructureType, e.Err)
}

func (e *StructureMetadataError) Unwrap() error {
	return e.Err
}
