package inspection

import (
	"github.com/gearlane/recon-tracker/pkg/model"
)

// AggregateDashboardStats reduces the vehicle snapshot into the singleton
// dashboard stats document.
func AggregateDashboardStats(a *Aggregator) model.DashboardStats {
	byCategory := make(map[string]int)
	byLocationType := make(map[string]int)
	ready := 0
	progressSum := 0

	for _, v := range a.Active {
		if cat := a.Category(v); cat != CategoryNone {
			byCategory[string(cat)]++
		}
		byLocationType[ClassifyLocation(v.Location, a.Locations)]++
		if a.Ready(v) {
			ready++
		}
		progressSum += a.Progress(v)
	}

	var avgProgress float64
	if len(a.Active) > 0 {
		avgProgress = float64(progressSum) / float64(len(a.Active))
	}

	return model.DashboardStats{
		TotalActive:    len(a.Active),
		TotalSold:      len(a.Sold),
		TotalPending:   len(a.Pending),
		ByCategory:     byCategory,
		ByLocationType: byLocationType,
		ReadyForSale:   ready,
		AvgProgress:    avgProgress,
	}
}
