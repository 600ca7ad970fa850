package repository

import (
	"testing"

	"github.com/gearlane/recon-tracker/pkg/model"
)

func TestApplyItemCreatesOnFirstRating(t *testing.T) {
	insp := model.VehicleInspection{VehicleID: "v1"}
	item := model.InspectionItem{ID: "brakes", Rating: model.RatingGreat}

	got := ApplyItem(insp, "mechanical", item)
	items := got.Sections["mechanical"]
	if len(items) != 1 || items[0].ID != "brakes" || items[0].Rating != model.RatingGreat {
		t.Fatalf("items = %+v", items)
	}
}

func TestApplyItemOverwritesInPlace(t *testing.T) {
	insp := model.VehicleInspection{
		VehicleID: "v1",
		Sections: map[string][]model.InspectionItem{
			"mechanical": {
				{ID: "brakes", Rating: model.RatingFair, UpdatedBy: "sam"},
				{ID: "tires", Rating: model.RatingGreat},
			},
		},
	}
	update := model.InspectionItem{ID: "brakes", Rating: model.RatingNeedsWork, UpdatedBy: "alex"}

	got := ApplyItem(insp, "mechanical", update)
	items := got.Sections["mechanical"]
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Rating != model.RatingNeedsWork || items[0].UpdatedBy != "alex" {
		t.Errorf("last writer should win: %+v", items[0])
	}
	if items[1].ID != "tires" || items[1].Rating != model.RatingGreat {
		t.Errorf("other items must be untouched: %+v", items[1])
	}
}

// The applied document is what a rating handler returns even when persistence
// fails; it must reflect the change regardless of the starting state.
func TestApplyItemOnEmptyDocument(t *testing.T) {
	got := ApplyItem(model.VehicleInspection{VehicleID: "v1"}, "cosmetic", model.InspectionItem{ID: "paint", Rating: model.RatingFair})
	if got.Sections == nil {
		t.Fatal("sections map should be initialized")
	}
	items := got.Sections["cosmetic"]
	if len(items) != 1 || items[0].ID != "paint" || items[0].Rating != model.RatingFair {
		t.Errorf("items = %+v", items)
	}
}
