package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gearlane/recon-tracker/pkg/model"
)

// SettingsRepository manages the per-dealership settings document.
type SettingsRepository struct {
	client *firestore.Client
}

func NewSettingsRepository(client *firestore.Client) *SettingsRepository {
	return &SettingsRepository{client: client}
}

func (r *SettingsRepository) doc(dealershipID string) *firestore.DocumentRef {
	return r.client.Collection("dealerships").Doc(dealershipID)
}

// GetSettings loads the settings document, returning defaults when none
// exists yet.
func (r *SettingsRepository) GetSettings(ctx context.Context, dealershipID string) (model.DealershipSettings, error) {
	defaults := model.DealershipSettings{DealershipID: dealershipID, Theme: "light"}
	snap, err := r.doc(dealershipID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return defaults, nil
		}
		return defaults, fmt.Errorf("get settings: %w", err)
	}
	var settings model.DealershipSettings
	if err := snap.DataTo(&settings); err != nil {
		return defaults, fmt.Errorf("decode settings: %w", err)
	}
	if settings.DealershipID == "" {
		settings.DealershipID = dealershipID
	}
	if settings.Theme == "" {
		settings.Theme = "light"
	}
	return settings, nil
}

func (r *SettingsRepository) SaveSettings(ctx context.Context, dealershipID string, settings model.DealershipSettings) error {
	settings.DealershipID = dealershipID
	settings.UpdatedAt = time.Now().UTC()
	if _, err := r.doc(dealershipID).Set(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
