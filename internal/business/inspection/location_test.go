package inspection

import (
	"testing"

	"github.com/gearlane/recon-tracker/pkg/model"
)

func TestClassifyLocation(t *testing.T) {
	formal := []model.Location{
		{ID: "1", Name: "Main Lot", Type: model.LocationOnSite},
		{ID: "2", Name: "Valley Storage", Type: model.LocationOffSite},
		{ID: "3", Name: "Carrier 12", Type: model.LocationInTransit},
	}

	tests := []struct {
		name string
		loc  string
		want string
	}{
		{"formal row wins", "Main Lot", model.LocationOnSite},
		{"formal row case-insensitive", "valley storage", model.LocationOffSite},
		{"formal in-transit row", "Carrier 12", model.LocationInTransit},
		{"heuristic transit", "In Transit from auction", model.LocationInTransit},
		{"heuristic transport", "ABC Transport Co", model.LocationInTransit},
		{"heuristic storage", "Off-Site Storage B", model.LocationOffSite},
		{"heuristic external", "External detail shop", model.LocationOffSite},
		{"default on-site", "Front row", model.LocationOnSite},
		{"empty defaults on-site", "", model.LocationOnSite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyLocation(tt.loc, formal); got != tt.want {
				t.Errorf("ClassifyLocation(%q) = %q, want %q", tt.loc, got, tt.want)
			}
		})
	}
}

// Heuristics only apply when no formal row matches.
func TestClassifyLocationFormalOverridesHeuristic(t *testing.T) {
	// The name contains "storage" but the formal row pins it on-site.
	formal := []model.Location{{Name: "Storage Annex", Type: model.LocationOnSite}}
	if got := ClassifyLocation("Storage Annex", formal); got != model.LocationOnSite {
		t.Errorf("got %q, want formal row type %q", got, model.LocationOnSite)
	}
}
