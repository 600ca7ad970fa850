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
	"github.com/gearlane/recon-tracker/pkg/util"
)

// VehicleRepository handles Firestore read/write for vehicles.
type VehicleRepository struct {
	client *firestore.Client
}

func NewVehicleRepository(client *firestore.Client) *VehicleRepository {
	return &VehicleRepository{client: client}
}

func (r *VehicleRepository) col(dealershipID string) *firestore.CollectionRef {
	return r.client.Collection("dealerships").Doc(dealershipID).Collection("vehicles")
}

// ListVehicles loads every vehicle for a dealership.
func (r *VehicleRepository) ListVehicles(ctx context.Context, dealershipID string) ([]model.Vehicle, error) {
	iter := r.col(dealershipID).Documents(ctx)
	var vehicles []model.Vehicle
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate vehicles: %w", err)
		}
		var v model.Vehicle
		if err := doc.DataTo(&v); err != nil {
			return nil, fmt.Errorf("decode vehicle %s: %w", doc.Ref.ID, err)
		}
		if v.ID == "" {
			v.ID = doc.Ref.ID
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

func (r *VehicleRepository) GetVehicle(ctx context.Context, dealershipID, id string) (model.Vehicle, error) {
	snap, err := r.col(dealershipID).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.Vehicle{}, ErrNotFound
		}
		return model.Vehicle{}, fmt.Errorf("get vehicle %s: %w", id, err)
	}
	var v model.Vehicle
	if err := snap.DataTo(&v); err != nil {
		return model.Vehicle{}, fmt.Errorf("decode vehicle %s: %w", id, err)
	}
	if v.ID == "" {
		v.ID = snap.Ref.ID
	}
	return v, nil
}

// SaveVehicle upserts one vehicle, deriving a stable document ID from the VIN
// when none is set.
func (r *VehicleRepository) SaveVehicle(ctx context.Context, dealershipID string, v model.Vehicle) (model.Vehicle, error) {
	if v.ID == "" {
		v.ID = vehicleDocID(v)
	}
	v.UpdatedAt = time.Now().UTC()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = v.UpdatedAt
	}
	if _, err := r.col(dealershipID).Doc(v.ID).Set(ctx, v); err != nil {
		return v, fmt.Errorf("save vehicle %s: %w", v.ID, err)
	}
	return v, nil
}

func (r *VehicleRepository) DeleteVehicle(ctx context.Context, dealershipID, id string) error {
	if _, err := r.col(dealershipID).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete vehicle %s: %w", id, err)
	}
	return nil
}

// BatchUpsert writes vehicles in batches to reduce round trips.
func (r *VehicleRepository) BatchUpsert(ctx context.Context, dealershipID string, vehicles []model.Vehicle) error {
	if len(vehicles) == 0 {
		return nil
	}
	const batchSize = 400

	for start := 0; start < len(vehicles); start += batchSize {
		end := start + batchSize
		if end > len(vehicles) {
			end = len(vehicles)
		}
		batch := r.client.Batch()
		for _, v := range vehicles[start:end] {
			if v.ID == "" {
				v.ID = vehicleDocID(v)
			}
			batch.Set(r.col(dealershipID).Doc(v.ID), v)
		}
		if _, err := batch.Commit(ctx); err != nil {
			return fmt.Errorf("commit batch [%d:%d]: %w", start, end, err)
		}
	}
	return nil
}

// StreamAll invokes fn for every vehicle without loading the collection into
// memory at once. Used by the CSV export.
func (r *VehicleRepository) StreamAll(ctx context.Context, dealershipID string, fn func(model.Vehicle) error) error {
	iter := r.col(dealershipID).Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("iterate vehicles: %w", err)
		}
		var v model.Vehicle
		if err := doc.DataTo(&v); err != nil {
			return fmt.Errorf("decode vehicle %s: %w", doc.Ref.ID, err)
		}
		if v.ID == "" {
			v.ID = doc.Ref.ID
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}

func vehicleDocID(v model.Vehicle) string {
	return util.HashVehicleKey(v.VIN, v.StockNumber, fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model))
}
