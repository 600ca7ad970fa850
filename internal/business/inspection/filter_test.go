package inspection

import (
	"testing"

	"github.com/gearlane/recon-tracker/pkg/model"
)

func testAggregator() *Aggregator {
	sections := []model.InspectionSection{sectionDef("emissions", 2), sectionDef("cosmetic", 2)}

	vehicles := map[string]model.Vehicle{
		"ready":   {ID: "ready", VIN: "1HGCM82633A004352", Year: 2019, Make: "Honda", Model: "Accord", Color: "Blue", Location: "Main Lot"},
		"issue":   {ID: "issue", VIN: "2T1BURHE5JC123456", Year: 2021, Make: "Toyota", Model: "Corolla", Color: "Red", Location: "Off-Site Storage B"},
		"working": {ID: "working", VIN: "3FA6P0H73FR234567", Year: 2018, Make: "Ford", Model: "Fusion", Color: "White", Location: "ABC Transport Co"},
		"sold":    {ID: "sold", VIN: "5YJ3E1EA7KF345678", Year: 2020, Make: "Tesla", Model: "Model 3", Color: "Black", Location: "Main Lot", Status: model.VehicleStatusSold},
		"pending": {ID: "pending", VIN: "1C4RJFBG5FC456789", Year: 2017, Make: "Jeep", Model: "Grand Cherokee", Color: "Gray", Location: "Main Lot", Status: model.VehicleStatusPending},
	}

	inspections := map[string]model.VehicleInspection{
		"ready": {VehicleID: "ready", Sections: map[string][]model.InspectionItem{
			"emissions": ratedItems("G", "G"),
			"cosmetic":  ratedItems("G", "G"),
		}},
		"issue": {VehicleID: "issue", Sections: map[string][]model.InspectionItem{
			"emissions": ratedItems("G", "N"),
			"cosmetic":  ratedItems("G", "G"),
		}},
		"working": {VehicleID: "working", Sections: map[string][]model.InspectionItem{
			"emissions": ratedItems("G", "G"),
		}},
		// The sold vehicle is fully green; it must still never appear in
		// category buckets.
		"sold": {VehicleID: "sold", Sections: map[string][]model.InspectionItem{
			"emissions": ratedItems("G", "G"),
			"cosmetic":  ratedItems("G", "G"),
		}},
	}

	return &Aggregator{
		Sections:    sections,
		Inspections: inspections,
		Locations:   []model.Location{{Name: "Main Lot", Type: model.LocationOnSite}},
		Active:      []model.Vehicle{vehicles["ready"], vehicles["issue"], vehicles["working"]},
		Sold:        []model.Vehicle{vehicles["sold"]},
		Pending:     []model.Vehicle{vehicles["pending"]},
	}
}

func ids(vehicles []model.Vehicle) map[string]bool {
	set := make(map[string]bool, len(vehicles))
	for _, v := range vehicles {
		set[v.ID] = true
	}
	return set
}

func TestFilterDefaultsToActiveList(t *testing.T) {
	a := testAggregator()
	got := a.Filter(Query{})
	if len(got) != 3 {
		t.Fatalf("expected 3 active vehicles, got %d", len(got))
	}
	set := ids(got)
	if set["sold"] || set["pending"] {
		t.Error("sold/pending vehicles must not appear without their filters")
	}
}

func TestFilterByCategory(t *testing.T) {
	a := testAggregator()

	completed := a.Filter(Query{Statuses: []string{FilterCompleted}})
	if len(completed) != 1 || completed[0].ID != "ready" {
		t.Errorf("completed filter = %v", ids(completed))
	}

	issues := a.Filter(Query{Statuses: []string{FilterNeedsAttention}})
	if len(issues) != 1 || issues[0].ID != "issue" {
		t.Errorf("needs-attention filter = %v", ids(issues))
	}

	working := a.Filter(Query{Statuses: []string{FilterActive}})
	if len(working) != 1 || working[0].ID != "working" {
		t.Errorf("active filter = %v", ids(working))
	}
}

// Sold vehicles re-union with category filters so "issues + sold" works.
func TestFilterIssuesPlusSold(t *testing.T) {
	a := testAggregator()
	got := a.Filter(Query{Statuses: []string{FilterNeedsAttention, FilterSold}})
	set := ids(got)
	if len(got) != 2 || !set["issue"] || !set["sold"] {
		t.Errorf("issues+sold = %v", set)
	}
}

// A sold vehicle with all-green sections stays out of the completed bucket
// and shows up under sold.
func TestFilterSoldExcludedFromReady(t *testing.T) {
	a := testAggregator()

	completed := ids(a.Filter(Query{Statuses: []string{FilterCompleted}}))
	if completed["sold"] {
		t.Error("sold vehicle leaked into the completed bucket")
	}

	counts := a.CountBuckets(Query{})
	if counts[FilterCompleted] != 1 {
		t.Errorf("completed count = %d, want 1", counts[FilterCompleted])
	}
	if counts[FilterSold] != 1 {
		t.Errorf("sold count = %d, want 1", counts[FilterSold])
	}
}

func TestFilterByLocation(t *testing.T) {
	a := testAggregator()

	offSite := a.Filter(Query{Locations: []string{model.LocationOffSite}})
	if len(offSite) != 1 || offSite[0].ID != "issue" {
		t.Errorf("off-site filter = %v", ids(offSite))
	}

	inTransit := a.Filter(Query{Locations: []string{model.LocationInTransit}})
	if len(inTransit) != 1 || inTransit[0].ID != "working" {
		t.Errorf("in-transit filter = %v", ids(inTransit))
	}

	byName := a.Filter(Query{Locations: []string{"main lot"}})
	set := ids(byName)
	if len(byName) != 1 || !set["ready"] {
		t.Errorf("exact-name filter = %v", set)
	}
}

func TestFilterSearch(t *testing.T) {
	a := testAggregator()

	tests := []struct {
		term string
		want string
	}{
		{"2019", "ready"},   // matches year as string
		{"COROLLA", "issue"}, // case-insensitive model
		{"3FA6P0", "working"}, // VIN prefix
		{"blue", "ready"},
	}
	for _, tt := range tests {
		got := a.Filter(Query{Search: tt.term})
		if len(got) != 1 || got[0].ID != tt.want {
			t.Errorf("search %q = %v, want only %q", tt.term, ids(got), tt.want)
		}
	}

	if got := a.Filter(Query{Search: "zzz-nomatch"}); len(got) != 0 {
		t.Errorf("no-match search returned %v", ids(got))
	}
}

func TestFilterBySection(t *testing.T) {
	a := testAggregator()

	tests := []struct {
		filter string
		want   []string
	}{
		{"ready", []string{"ready", "working"}}, // emissions all green on both
		{"issues", []string{"issue"}},
		{"unchecked", nil},
	}
	for _, tt := range tests {
		got := ids(a.Filter(Query{SectionKey: "emissions", SectionStatus: tt.filter}))
		if len(got) != len(tt.want) {
			t.Errorf("section filter %q = %v, want %v", tt.filter, got, tt.want)
			continue
		}
		for _, id := range tt.want {
			if !got[id] {
				t.Errorf("section filter %q missing %q", tt.filter, id)
			}
		}
	}

	unchecked := ids(a.Filter(Query{SectionKey: "cosmetic", SectionStatus: "unchecked"}))
	if len(unchecked) != 1 || !unchecked["working"] {
		t.Errorf("cosmetic unchecked = %v, want working", unchecked)
	}
}

// Every tile count must equal the size of the list the tile filters to.
func TestCountsMatchFilters(t *testing.T) {
	a := testAggregator()
	q := Query{Search: "", Locations: nil}
	counts := a.CountBuckets(q)
	for bucket, count := range counts {
		got := len(a.Filter(Query{Statuses: []string{bucket}}))
		if got != count {
			t.Errorf("bucket %q: count %d but filter yields %d", bucket, count, got)
		}
	}
}

// Counts keep the query's search term so tiles agree with the visible list.
func TestCountsRespectSearch(t *testing.T) {
	a := testAggregator()
	counts := a.CountBuckets(Query{Search: "honda"})
	if counts[FilterAll] != 1 {
		t.Errorf("all count = %d, want 1", counts[FilterAll])
	}
	if counts[FilterNeedsAttention] != 0 {
		t.Errorf("needs-attention count = %d, want 0", counts[FilterNeedsAttention])
	}
}

// Counts keep the query's section filter so tiles describe the visible list
// when a section-specific view is active.
func TestCountsRespectSectionFilter(t *testing.T) {
	a := testAggregator()
	q := Query{SectionKey: "emissions", SectionStatus: "ready"}
	counts := a.CountBuckets(q)

	if counts[FilterAll] != 2 {
		t.Errorf("all count = %d, want 2 (ready and working have green emissions)", counts[FilterAll])
	}
	if counts[FilterNeedsAttention] != 0 {
		t.Errorf("needs-attention count = %d, want 0", counts[FilterNeedsAttention])
	}
	for bucket, count := range counts {
		got := len(a.Filter(Query{
			Statuses:      []string{bucket},
			SectionKey:    q.SectionKey,
			SectionStatus: q.SectionStatus,
		}))
		if got != count {
			t.Errorf("bucket %q: count %d but filter yields %d", bucket, count, got)
		}
	}
}

func TestCountSection(t *testing.T) {
	a := testAggregator()
	counts := a.CountSection("cosmetic", Query{})
	// Both ready and issue have an all-green cosmetic section; working has
	// no cosmetic items recorded.
	if counts["ready"] != 2 || counts["issues"] != 0 || counts["unchecked"] != 1 {
		t.Errorf("cosmetic counts = %v", counts)
	}
	if counts["ready"]+counts["working"]+counts["issues"]+counts["unchecked"] != 3 {
		t.Errorf("section counts should cover the active list: %v", counts)
	}
}

// Scenario: one fully-green section and one untouched section yields 50%.
func TestAggregatorProgress(t *testing.T) {
	a := testAggregator()
	working := model.Vehicle{ID: "working"}
	if got := a.Progress(working); got != 50 {
		t.Errorf("progress = %d, want 50", got)
	}
	ready := model.Vehicle{ID: "ready"}
	if got := a.Progress(ready); got != 100 {
		t.Errorf("progress = %d, want 100", got)
	}
	unknown := model.Vehicle{ID: "absent"}
	if got := a.Progress(unknown); got != 0 {
		t.Errorf("progress = %d, want 0", got)
	}
}
