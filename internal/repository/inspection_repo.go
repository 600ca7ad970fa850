package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gearlane/recon-tracker/pkg/model"
)

// InspectionRepository stores per-vehicle inspection data. Absence of data is
// reported as an empty inspection, never as an error; the status logic treats
// it as "no sections rated yet".
type InspectionRepository struct {
	client *firestore.Client
}

func NewInspectionRepository(client *firestore.Client) *InspectionRepository {
	return &InspectionRepository{client: client}
}

func (r *InspectionRepository) col(dealershipID string) *firestore.CollectionRef {
	return r.client.Collection("dealerships").Doc(dealershipID).Collection("inspections")
}

func inspectionDocID(vehicleID, inspectorID string) string {
	if inspectorID == "" {
		return vehicleID
	}
	return vehicleID + "__" + inspectorID
}

// GetInspection loads the inspection data for one vehicle (and optionally one
// inspector). A missing document yields an empty inspection.
func (r *InspectionRepository) GetInspection(ctx context.Context, dealershipID, vehicleID, inspectorID string) (model.VehicleInspection, error) {
	empty := model.VehicleInspection{VehicleID: vehicleID, InspectorID: inspectorID}
	snap, err := r.col(dealershipID).Doc(inspectionDocID(vehicleID, inspectorID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return empty, nil
		}
		return empty, fmt.Errorf("get inspection %s: %w", vehicleID, err)
	}
	var insp model.VehicleInspection
	if err := snap.DataTo(&insp); err != nil {
		return empty, fmt.Errorf("decode inspection %s: %w", vehicleID, err)
	}
	if insp.VehicleID == "" {
		insp.VehicleID = vehicleID
	}
	return insp, nil
}

// SaveInspection persists the full inspection document for a vehicle.
func (r *InspectionRepository) SaveInspection(ctx context.Context, dealershipID string, insp model.VehicleInspection) error {
	if insp.VehicleID == "" {
		return fmt.Errorf("vehicleId is required")
	}
	insp.UpdatedAt = time.Now().UTC()
	ref := r.col(dealershipID).Doc(inspectionDocID(insp.VehicleID, insp.InspectorID))
	if _, err := ref.Set(ctx, insp); err != nil {
		return fmt.Errorf("save inspection %s: %w", insp.VehicleID, err)
	}
	return nil
}

// ApplyItem upserts a single item into the inspection document in memory:
// created on first rating, overwritten in place on every subsequent change,
// last writer wins.
func ApplyItem(insp model.VehicleInspection, sectionKey string, item model.InspectionItem) model.VehicleInspection {
	if insp.Sections == nil {
		insp.Sections = make(map[string][]model.InspectionItem)
	}
	items := insp.Sections[sectionKey]
	replaced := false
	for i, existing := range items {
		if existing.ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	insp.Sections[sectionKey] = items
	return insp
}

// UpsertItem applies a single rating change and persists it. The returned
// document always has the item applied, even when the read or write fails, so
// callers can present the intended state and surface the error separately.
func (r *InspectionRepository) UpsertItem(ctx context.Context, dealershipID, vehicleID, inspectorID, sectionKey string, item model.InspectionItem) (model.VehicleInspection, error) {
	insp, getErr := r.GetInspection(ctx, dealershipID, vehicleID, inspectorID)

	item.UpdatedAt = time.Now().UTC()
	insp = ApplyItem(insp, sectionKey, item)
	if getErr != nil {
		return insp, getErr
	}

	if err := r.SaveInspection(ctx, dealershipID, insp); err != nil {
		return insp, err
	}
	return insp, nil
}

// FetchAllInspections loads every inspection document keyed by vehicle ID.
// When several inspectors recorded data for the same vehicle, later documents
// win per section key.
func (r *InspectionRepository) FetchAllInspections(ctx context.Context, dealershipID string) (map[string]model.VehicleInspection, error) {
	iter := r.col(dealershipID).Documents(ctx)
	result := make(map[string]model.VehicleInspection)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate inspections: %w", err)
		}
		var insp model.VehicleInspection
		if err := doc.DataTo(&insp); err != nil {
			return nil, fmt.Errorf("decode inspection %s: %w", doc.Ref.ID, err)
		}
		if insp.VehicleID == "" {
			insp.VehicleID = doc.Ref.ID
		}
		merged, ok := result[insp.VehicleID]
		if !ok {
			result[insp.VehicleID] = insp
			continue
		}
		if merged.Sections == nil {
			merged.Sections = make(map[string][]model.InspectionItem)
		}
		for key, items := range insp.Sections {
			merged.Sections[key] = items
		}
		result[insp.VehicleID] = merged
	}
	return result, nil
}
