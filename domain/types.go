package domain

import internaldomain "github.com/goliatone/go-cms-search/internal/domain"

// Stage represents workflow positions for indexed content documents.
type Stage = internaldomain.Stage

const (
	// StageDraft indicates content still under preparation.
	StageDraft = internaldomain.StageDraft
	// StagePublished identifies content available to consumers.
	StagePublished = internaldomain.StagePublished
)

// NormalizeStage coerces arbitrary stage strings into a known representation.
func NormalizeStage(input string) Stage {
	return internaldomain.NormalizeStage(input)
}
