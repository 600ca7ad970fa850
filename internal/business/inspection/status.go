package inspection

import (
	"github.com/gearlane/recon-tracker/pkg/model"
)

// SectionStatus is the derived state of one inspection section.
type SectionStatus string

const (
	StatusNotStarted     SectionStatus = "not-started"
	StatusPending        SectionStatus = "pending"
	StatusNeedsAttention SectionStatus = "needs-attention"
	StatusCompleted      SectionStatus = "completed"
)

// NormalizeRating maps missing or unrecognized rating strings to not-checked.
// Derivation never fails on malformed items; they simply do not count as rated.
func NormalizeRating(r model.Rating) model.Rating {
	switch r {
	case model.RatingGreat, model.RatingFair, model.RatingNeedsWork:
		return r
	default:
		return model.RatingNotChecked
	}
}

// ActiveItemCount returns how many checklist items of the definition are active.
func ActiveItemCount(def model.InspectionSection) int {
	n := 0
	for _, item := range def.Items {
		if item.IsActive {
			n++
		}
	}
	return n
}

// EvaluateSectionStatus reduces a section's recorded items into one status.
// The rules apply in order, first match wins:
//
//  1. no items recorded: not-started
//  2. fewer rated items than active checklist items: not-started
//  3. any recorded item unrated: not-started
//  4. any N: needs-attention; else any F: pending; else all G: completed
//
// The result is a pure function of the inputs and does not depend on item order.
func EvaluateSectionStatus(items []model.InspectionItem, def model.InspectionSection) SectionStatus {
	if len(items) == 0 {
		return StatusNotStarted
	}

	inspected := 0
	anyUnchecked := false
	anyNeedsWork := false
	anyFair := false
	allGreat := true

	for _, item := range items {
		switch NormalizeRating(item.Rating) {
		case model.RatingNotChecked:
			anyUnchecked = true
			allGreat = false
		case model.RatingNeedsWork:
			inspected++
			anyNeedsWork = true
			allGreat = false
		case model.RatingFair:
			inspected++
			anyFair = true
			allGreat = false
		case model.RatingGreat:
			inspected++
		}
	}

	if inspected < ActiveItemCount(def) {
		return StatusNotStarted
	}
	if anyUnchecked {
		return StatusNotStarted
	}
	if anyNeedsWork {
		return StatusNeedsAttention
	}
	if anyFair {
		return StatusPending
	}
	if allGreat {
		return StatusCompleted
	}
	return StatusNotStarted
}

// SectionStatuses evaluates every active section of the definition list
// against the recorded inspection data. Inactive sections are skipped;
// missing data evaluates to not-started.
func SectionStatuses(insp model.VehicleInspection, sections []model.InspectionSection) map[string]SectionStatus {
	statuses := make(map[string]SectionStatus)
	for _, def := range sections {
		if !def.IsActive {
			continue
		}
		statuses[def.Key] = EvaluateSectionStatus(insp.Sections[def.Key], def)
	}
	return statuses
}
