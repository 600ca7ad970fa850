package inspection

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gearlane/recon-tracker/pkg/model"
)

// NewAggregator partitions the vehicle list by status and bundles it with the
// snapshot the derivations read from.
func NewAggregator(vehicles []model.Vehicle, sections []model.InspectionSection, inspections map[string]model.VehicleInspection, locations []model.Location) *Aggregator {
	a := &Aggregator{
		Sections:    sections,
		Inspections: inspections,
		Locations:   locations,
	}
	for _, v := range vehicles {
		switch v.Status {
		case model.VehicleStatusSold:
			a.Sold = append(a.Sold, v)
		case model.VehicleStatusPending:
			a.Pending = append(a.Pending, v)
		default:
			a.Active = append(a.Active, v)
		}
	}
	return a
}

// Data source contracts the refresher needs; the Firestore repositories
// satisfy them.
type (
	VehicleSource interface {
		ListVehicles(ctx context.Context, dealershipID string) ([]model.Vehicle, error)
	}
	InspectionSource interface {
		FetchAllInspections(ctx context.Context, dealershipID string) (map[string]model.VehicleInspection, error)
	}
	SectionSource interface {
		ListSections(ctx context.Context, dealershipID string) ([]model.InspectionSection, error)
	}
	LocationSource interface {
		ListLocations(ctx context.Context, dealershipID string) ([]model.Location, error)
	}
	StatsSink interface {
		SaveDashboardStats(ctx context.Context, dealershipID string, stats model.DashboardStats) error
	}
)

// Refresher recomputes and persists the dashboard stats singleton. Section,
// inspection, and location fetch failures degrade to empty data and are
// logged; only a vehicle fetch or the final save can fail the refresh.
type Refresher struct {
	Vehicles    VehicleSource
	Inspections InspectionSource
	Sections    SectionSource
	Locations   LocationSource
	Stats       StatsSink
	Log         zerolog.Logger
}

// Refresh rebuilds the aggregator from the stores and saves fresh stats.
func (r *Refresher) Refresh(ctx context.Context, dealershipID string) (model.DashboardStats, error) {
	vehicles, err := r.Vehicles.ListVehicles(ctx, dealershipID)
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("list vehicles: %w", err)
	}

	sections, err := r.Sections.ListSections(ctx, dealershipID)
	if err != nil {
		r.Log.Warn().Err(err).Msg("sections unavailable, refreshing stats with default registry")
		sections = nil
	}
	// Same fallback the request handlers apply: an unconfigured dealership
	// derives against the default registry, so the persisted snapshot must too.
	if len(sections) == 0 {
		sections = DefaultSections()
	}
	inspections, err := r.Inspections.FetchAllInspections(ctx, dealershipID)
	if err != nil {
		r.Log.Warn().Err(err).Msg("inspections unavailable, refreshing stats with empty data")
		inspections = nil
	}
	locations, err := r.Locations.ListLocations(ctx, dealershipID)
	if err != nil {
		r.Log.Warn().Err(err).Msg("locations unavailable, falling back to heuristics only")
		locations = nil
	}

	stats := AggregateDashboardStats(NewAggregator(vehicles, sections, inspections, locations))
	if err := r.Stats.SaveDashboardStats(ctx, dealershipID, stats); err != nil {
		return stats, fmt.Errorf("save dashboard stats: %w", err)
	}
	return stats, nil
}
