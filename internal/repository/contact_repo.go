package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/gearlane/recon-tracker/pkg/model"
)

// ContactRepository stores dealership contacts.
type ContactRepository struct {
	client *firestore.Client
}

func NewContactRepository(client *firestore.Client) *ContactRepository {
	return &ContactRepository{client: client}
}

func (r *ContactRepository) col(dealershipID string) *firestore.CollectionRef {
	return r.client.Collection("dealerships").Doc(dealershipID).Collection("contacts")
}

func (r *ContactRepository) ListContacts(ctx context.Context, dealershipID string) ([]model.Contact, error) {
	iter := r.col(dealershipID).Documents(ctx)
	var contacts []model.Contact
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate contacts: %w", err)
		}
		var c model.Contact
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("decode contact %s: %w", doc.Ref.ID, err)
		}
		if c.ID == "" {
			c.ID = doc.Ref.ID
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

func (r *ContactRepository) SaveContact(ctx context.Context, dealershipID string, c model.Contact) error {
	if c.ID == "" {
		return fmt.Errorf("contact id is required")
	}
	if _, err := r.col(dealershipID).Doc(c.ID).Set(ctx, c); err != nil {
		return fmt.Errorf("save contact %s: %w", c.ID, err)
	}
	return nil
}

func (r *ContactRepository) DeleteContact(ctx context.Context, dealershipID, id string) error {
	if _, err := r.col(dealershipID).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete contact %s: %w", id, err)
	}
	return nil
}
