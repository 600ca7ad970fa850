package inspection

import (
	"strconv"
	"strings"

	"github.com/gearlane/recon-tracker/pkg/model"
)

// Status filter keys selectable on the dashboard tiles.
const (
	FilterAll            = "all"
	FilterActive         = "active"
	FilterCompleted      = "completed"
	FilterNeedsAttention = "needs-attention"
	FilterSold           = "sold"
	FilterVehiclePending = "vehicle-pending"
)

// Section-specific filter values and the section statuses they map to.
var sectionFilterStatus = map[string]SectionStatus{
	"ready":     StatusCompleted,
	"working":   StatusPending,
	"issues":    StatusNeedsAttention,
	"unchecked": StatusNotStarted,
}

// Query is one combination of dashboard filters.
type Query struct {
	Statuses      []string // status filter keys, see Filter* constants
	Locations     []string // location type buckets or exact location names
	Search        string   // free-text term
	SectionKey    string   // optional section-specific filter
	SectionStatus string   // ready | working | issues | unchecked
}

// Aggregator applies dashboard filters over an in-memory snapshot of the
// vehicle collection and its inspection data. All methods are pure reads;
// the snapshot is never mutated.
type Aggregator struct {
	Sections    []model.InspectionSection
	Inspections map[string]model.VehicleInspection // keyed by vehicle ID
	Locations   []model.Location

	// Vehicle partitions by vehicle.status.
	Active  []model.Vehicle
	Sold    []model.Vehicle
	Pending []model.Vehicle
}

// InspectionFor returns the recorded inspection for a vehicle, empty when none
// exists. Absence of data is never an error at this layer.
func (a *Aggregator) InspectionFor(v model.Vehicle) model.VehicleInspection {
	return a.Inspections[v.ID]
}

// Statuses evaluates every active section for one vehicle.
func (a *Aggregator) Statuses(v model.Vehicle) map[string]SectionStatus {
	return SectionStatuses(a.InspectionFor(v), a.Sections)
}

// Category derives the dashboard bucket for one vehicle.
func (a *Aggregator) Category(v model.Vehicle) VehicleCategory {
	return CategorizeVehicle(v, a.Statuses(v))
}

// Progress derives the completion percentage for one vehicle.
func (a *Aggregator) Progress(v model.Vehicle) int {
	active := 0
	for _, def := range a.Sections {
		if def.IsActive {
			active++
		}
	}
	return CalculateProgress(a.Statuses(v), active)
}

// Ready reports the strict ready-for-sale predicate for one vehicle.
func (a *Aggregator) Ready(v model.Vehicle) bool {
	return ReadyForSale(a.InspectionFor(v), a.Sections)
}

// Filter applies the query's filters in sequence and returns the matching
// vehicles: bucket selection, inspection-status filter, location filter,
// free-text search, then the optional section-specific filter.
func (a *Aggregator) Filter(q Query) []model.Vehicle {
	selected := make(map[string]bool, len(q.Statuses))
	for _, s := range q.Statuses {
		selected[s] = true
	}

	// Bucket selection. Sold and pending pull from their own partitions;
	// everything else pulls from the active list. No selection at all
	// defaults to the full active list.
	includeActive := len(q.Statuses) == 0 ||
		selected[FilterAll] || selected[FilterActive] ||
		selected[FilterCompleted] || selected[FilterNeedsAttention]

	var activePart []model.Vehicle
	if includeActive {
		activePart = a.Active
	}
	var others []model.Vehicle
	if selected[FilterSold] {
		others = append(others, a.Sold...)
	}
	if selected[FilterVehiclePending] {
		others = append(others, a.Pending...)
	}

	// Inspection-status sub-filter applies only to the active partition;
	// sold/pending vehicles selected in step one are re-unioned afterward
	// so "issues + sold" can be viewed simultaneously.
	wanted := make(map[VehicleCategory]bool)
	if selected[FilterCompleted] {
		wanted[CategoryCompleted] = true
	}
	if selected[FilterNeedsAttention] {
		wanted[CategoryNeedsAttention] = true
	}
	if selected[FilterActive] {
		wanted[CategoryPending] = true
	}
	if len(wanted) > 0 && !selected[FilterAll] {
		filtered := make([]model.Vehicle, 0, len(activePart))
		for _, v := range activePart {
			if wanted[a.Category(v)] {
				filtered = append(filtered, v)
			}
		}
		activePart = filtered
	}

	working := make([]model.Vehicle, 0, len(activePart)+len(others))
	working = append(working, activePart...)
	working = append(working, others...)

	if len(q.Locations) > 0 {
		working = a.filterByLocation(working, q.Locations)
	}

	if term := strings.TrimSpace(q.Search); term != "" {
		filtered := working[:0:0]
		for _, v := range working {
			if matchesSearch(v, term) {
				filtered = append(filtered, v)
			}
		}
		working = filtered
	}

	if q.SectionKey != "" {
		working = a.filterBySection(working, q.SectionKey, q.SectionStatus)
	}

	return working
}

// CountBuckets produces the numbers shown on the summary tiles. Each count
// runs the same Filter predicate with only that bucket selected, keeping the
// query's location, search, and section filters, so counts always agree with
// what clicking the tile would show.
func (a *Aggregator) CountBuckets(q Query) map[string]int {
	counts := make(map[string]int, 6)
	for _, bucket := range []string{
		FilterAll, FilterActive, FilterCompleted,
		FilterNeedsAttention, FilterSold, FilterVehiclePending,
	} {
		counts[bucket] = len(a.Filter(Query{
			Statuses:      []string{bucket},
			Locations:     q.Locations,
			Search:        q.Search,
			SectionKey:    q.SectionKey,
			SectionStatus: q.SectionStatus,
		}))
	}
	return counts
}

// CountSection tallies one section's per-status buckets across the active
// list, using the same predicate as the section-specific filter.
func (a *Aggregator) CountSection(sectionKey string, q Query) map[string]int {
	counts := make(map[string]int, len(sectionFilterStatus))
	for filter := range sectionFilterStatus {
		counts[filter] = len(a.Filter(Query{
			Locations:     q.Locations,
			Search:        q.Search,
			SectionKey:    sectionKey,
			SectionStatus: filter,
		}))
	}
	return counts
}

func (a *Aggregator) filterByLocation(vehicles []model.Vehicle, buckets []string) []model.Vehicle {
	selected := make(map[string]bool, len(buckets))
	for _, b := range buckets {
		selected[strings.ToLower(strings.TrimSpace(b))] = true
	}
	filtered := make([]model.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		bucket := ClassifyLocation(v.Location, a.Locations)
		if selected[bucket] || selected[strings.ToLower(strings.TrimSpace(v.Location))] {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

func (a *Aggregator) filterBySection(vehicles []model.Vehicle, sectionKey, sectionFilter string) []model.Vehicle {
	want, ok := sectionFilterStatus[sectionFilter]
	if !ok {
		return vehicles
	}
	var def model.InspectionSection
	found := false
	for _, d := range a.Sections {
		if d.Key == sectionKey {
			def = d
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	filtered := make([]model.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if EvaluateSectionStatus(a.InspectionFor(v).Sections[sectionKey], def) == want {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// matchesSearch checks a case-insensitive substring match against make,
// model, year, VIN, color, and location.
func matchesSearch(v model.Vehicle, term string) bool {
	needle := strings.ToLower(term)
	fields := []string{v.Make, v.Model, v.VIN, v.Color, v.Location}
	if v.Year != 0 {
		fields = append(fields, strconv.Itoa(v.Year))
	}
	for _, field := range fields {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
