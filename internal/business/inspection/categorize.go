package inspection

import (
	"github.com/gearlane/recon-tracker/pkg/model"
)

// VehicleCategory is the dashboard bucket derived for an active vehicle.
// Sold and pending vehicles get CategoryNone and are counted under their
// own tiles instead.
type VehicleCategory string

const (
	CategoryNone           VehicleCategory = ""
	CategoryNeedsAttention VehicleCategory = "needs-attention"
	CategoryCompleted      VehicleCategory = "completed"
	CategoryPending        VehicleCategory = "pending"
)

// CategorizeVehicle reduces a vehicle's per-section statuses into one category.
// A single needs-attention section dominates; completed requires every active
// section completed; anything else is pending ("working"). A vehicle with no
// active sections is pending, never vacuously completed.
func CategorizeVehicle(v model.Vehicle, statuses map[string]SectionStatus) VehicleCategory {
	if v.Status == model.VehicleStatusSold || v.Status == model.VehicleStatusPending {
		return CategoryNone
	}
	if len(statuses) == 0 {
		return CategoryPending
	}

	allCompleted := true
	for _, s := range statuses {
		if s == StatusNeedsAttention {
			return CategoryNeedsAttention
		}
		if s != StatusCompleted {
			allCompleted = false
		}
	}
	if allCompleted {
		return CategoryCompleted
	}
	return CategoryPending
}
