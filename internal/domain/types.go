package domain

import "strings"

// Stage represents the workflow position of a content document snapshot.
type Stage string

const (
	// StageDraft indicates content still under preparation.
	StageDraft Stage = "draft"
	// StagePublished identifies content available to consumers.
	StagePublished Stage = "published"
)

// IsPublished reports whether the stage maps to publicly visible content.
func (s Stage) IsPublished() bool {
	return s == StagePublished
}

// NormalizeStage coerces arbitrary stage strings into a known representation,
// defaulting unknown and empty values to the draft stage.
func NormalizeStage(input string) Stage {
	switch Stage(strings.ToLower(strings.TrimSpace(input))) {
	case StagePublished:
		return StagePublished
	default:
		return StageDraft
	}
}
