package inspection

import (
	"github.com/gearlane/recon-tracker/pkg/model"
)

// ReadyForSale is the strict readiness predicate, stronger than the completed
// category: every active section must have a non-empty active checklist, the
// recorded item count must match that checklist exactly, and every rating
// must be G. A vehicle with zero inspectable items is never ready for sale.
func ReadyForSale(insp model.VehicleInspection, sections []model.InspectionSection) bool {
	activeSections := 0
	for _, def := range sections {
		if !def.IsActive {
			continue
		}
		activeSections++

		activeItems := ActiveItemCount(def)
		if activeItems == 0 {
			return false
		}
		recorded := insp.Sections[def.Key]
		if len(recorded) != activeItems {
			return false
		}
		for _, item := range recorded {
			if NormalizeRating(item.Rating) != model.RatingGreat {
				return false
			}
		}
	}
	return activeSections > 0
}
