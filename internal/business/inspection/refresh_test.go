package inspection

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gearlane/recon-tracker/pkg/model"
)

// refreshStores backs every Refresher source with in-memory data.
type refreshStores struct {
	vehicles    []model.Vehicle
	sections    []model.InspectionSection
	sectionsErr error
	inspections map[string]model.VehicleInspection
	locations   []model.Location

	saved *model.DashboardStats
}

func (s *refreshStores) ListVehicles(ctx context.Context, dealershipID string) ([]model.Vehicle, error) {
	return s.vehicles, nil
}

func (s *refreshStores) ListSections(ctx context.Context, dealershipID string) ([]model.InspectionSection, error) {
	return s.sections, s.sectionsErr
}

func (s *refreshStores) FetchAllInspections(ctx context.Context, dealershipID string) (map[string]model.VehicleInspection, error) {
	return s.inspections, nil
}

func (s *refreshStores) ListLocations(ctx context.Context, dealershipID string) ([]model.Location, error) {
	return s.locations, nil
}

func (s *refreshStores) SaveDashboardStats(ctx context.Context, dealershipID string, stats model.DashboardStats) error {
	s.saved = &stats
	return nil
}

// allGreenInspection rates every active item of every default section G.
func allGreenInspection(vehicleID string) model.VehicleInspection {
	insp := model.VehicleInspection{VehicleID: vehicleID, Sections: map[string][]model.InspectionItem{}}
	for _, def := range DefaultSections() {
		items := make([]model.InspectionItem, 0, len(def.Items))
		for _, d := range def.Items {
			items = append(items, model.InspectionItem{ID: d.ID, Rating: model.RatingGreat})
		}
		insp.Sections[def.Key] = items
	}
	return insp
}

// An unconfigured dealership derives against the default registry on every
// request path; the persisted snapshot must agree with it.
func TestRefreshUsesDefaultRegistryWhenUnconfigured(t *testing.T) {
	stores := &refreshStores{
		vehicles:    []model.Vehicle{{ID: "v1", Location: "Main Lot"}},
		sections:    nil, // nothing configured
		inspections: map[string]model.VehicleInspection{"v1": allGreenInspection("v1")},
	}
	r := &Refresher{
		Vehicles:    stores,
		Inspections: stores,
		Sections:    stores,
		Locations:   stores,
		Stats:       stores,
		Log:         zerolog.Nop(),
	}

	stats, err := r.Refresh(context.Background(), "d1")
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	live := AggregateDashboardStats(NewAggregator(stores.vehicles, DefaultSections(), stores.inspections, nil))
	if stats.ByCategory[string(CategoryCompleted)] != live.ByCategory[string(CategoryCompleted)] {
		t.Errorf("persisted completed = %d, live = %d", stats.ByCategory[string(CategoryCompleted)], live.ByCategory[string(CategoryCompleted)])
	}
	if stats.ByCategory[string(CategoryCompleted)] != 1 {
		t.Errorf("completed = %d, want 1", stats.ByCategory[string(CategoryCompleted)])
	}
	if stats.ReadyForSale != 1 {
		t.Errorf("readyForSale = %d, want 1", stats.ReadyForSale)
	}
	if stats.AvgProgress != 100 {
		t.Errorf("avgProgress = %v, want 100", stats.AvgProgress)
	}
	if stores.saved == nil || stores.saved.ReadyForSale != 1 {
		t.Error("saved snapshot should carry the same derivation")
	}
}

// A section fetch failure degrades to the default registry instead of
// deriving everything as pending.
func TestRefreshSectionFetchFailureFallsBackToDefaults(t *testing.T) {
	stores := &refreshStores{
		vehicles:    []model.Vehicle{{ID: "v1"}},
		sectionsErr: errors.New("firestore unavailable"),
		inspections: map[string]model.VehicleInspection{"v1": allGreenInspection("v1")},
	}
	r := &Refresher{
		Vehicles:    stores,
		Inspections: stores,
		Sections:    stores,
		Locations:   stores,
		Stats:       stores,
		Log:         zerolog.Nop(),
	}

	stats, err := r.Refresh(context.Background(), "d1")
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if stats.ByCategory[string(CategoryCompleted)] != 1 {
		t.Errorf("completed = %d, want 1", stats.ByCategory[string(CategoryCompleted)])
	}
}
