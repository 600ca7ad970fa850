package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/gearlane/recon-tracker/pkg/model"
)

// SectionRepository stores dealership-scoped inspection section definitions.
type SectionRepository struct {
	client *firestore.Client
}

func NewSectionRepository(client *firestore.Client) *SectionRepository {
	return &SectionRepository{client: client}
}

func (r *SectionRepository) col(dealershipID string) *firestore.CollectionRef {
	return r.client.Collection("dealerships").Doc(dealershipID).Collection("sections")
}

// ListSections loads the section definitions ordered by their configured order.
func (r *SectionRepository) ListSections(ctx context.Context, dealershipID string) ([]model.InspectionSection, error) {
	iter := r.col(dealershipID).OrderBy("order", firestore.Asc).Documents(ctx)
	var sections []model.InspectionSection
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate sections: %w", err)
		}
		var s model.InspectionSection
		if err := doc.DataTo(&s); err != nil {
			return nil, fmt.Errorf("decode section %s: %w", doc.Ref.ID, err)
		}
		if s.Key == "" {
			s.Key = doc.Ref.ID
		}
		sections = append(sections, s)
	}
	return sections, nil
}

// ReplaceSections overwrites the dealership's section registry in one batch.
// Section keys double as document IDs so they stay unique per dealership.
func (r *SectionRepository) ReplaceSections(ctx context.Context, dealershipID string, sections []model.InspectionSection) error {
	existing, err := r.col(dealershipID).Documents(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("load existing sections: %w", err)
	}

	batch := r.client.Batch()
	keep := make(map[string]bool, len(sections))
	for _, s := range sections {
		if s.Key == "" {
			return fmt.Errorf("section key is required")
		}
		keep[s.Key] = true
		batch.Set(r.col(dealershipID).Doc(s.Key), s)
	}
	for _, doc := range existing {
		if !keep[doc.Ref.ID] {
			batch.Delete(doc.Ref)
		}
	}
	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("replace sections: %w", err)
	}
	return nil
}
