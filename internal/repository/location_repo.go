package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/gearlane/recon-tracker/pkg/model"
)

// LocationRepository stores the formal location rows of a dealership.
type LocationRepository struct {
	client *firestore.Client
}

func NewLocationRepository(client *firestore.Client) *LocationRepository {
	return &LocationRepository{client: client}
}

func (r *LocationRepository) col(dealershipID string) *firestore.CollectionRef {
	return r.client.Collection("dealerships").Doc(dealershipID).Collection("locations")
}

func (r *LocationRepository) ListLocations(ctx context.Context, dealershipID string) ([]model.Location, error) {
	iter := r.col(dealershipID).Documents(ctx)
	var locations []model.Location
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate locations: %w", err)
		}
		var loc model.Location
		if err := doc.DataTo(&loc); err != nil {
			return nil, fmt.Errorf("decode location %s: %w", doc.Ref.ID, err)
		}
		if loc.ID == "" {
			loc.ID = doc.Ref.ID
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

func (r *LocationRepository) SaveLocation(ctx context.Context, dealershipID string, loc model.Location) error {
	if loc.ID == "" {
		return fmt.Errorf("location id is required")
	}
	if _, err := r.col(dealershipID).Doc(loc.ID).Set(ctx, loc); err != nil {
		return fmt.Errorf("save location %s: %w", loc.ID, err)
	}
	return nil
}

func (r *LocationRepository) DeleteLocation(ctx context.Context, dealershipID, id string) error {
	if _, err := r.col(dealershipID).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete location %s: %w", id, err)
	}
	return nil
}
