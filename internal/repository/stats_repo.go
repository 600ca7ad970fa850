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

// StatsRepository manages the dashboard stats singleton document.
type StatsRepository struct {
	client *firestore.Client
}

func NewStatsRepository(client *firestore.Client) *StatsRepository {
	return &StatsRepository{client: client}
}

func (r *StatsRepository) doc(dealershipID string) *firestore.DocumentRef {
	return r.client.Collection("dealerships").Doc(dealershipID).Collection("system").Doc("stats")
}

func (r *StatsRepository) SaveDashboardStats(ctx context.Context, dealershipID string, stats model.DashboardStats) error {
	stats.LastUpdated = time.Now().UTC()
	if _, err := r.doc(dealershipID).Set(ctx, stats); err != nil {
		return fmt.Errorf("save dashboard stats: %w", err)
	}
	return nil
}

func (r *StatsRepository) GetDashboardStats(ctx context.Context, dealershipID string) (model.DashboardStats, error) {
	snap, err := r.doc(dealershipID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.DashboardStats{}, ErrNotFound
		}
		return model.DashboardStats{}, fmt.Errorf("get dashboard stats: %w", err)
	}
	var stats model.DashboardStats
	if err := snap.DataTo(&stats); err != nil {
		return model.DashboardStats{}, fmt.Errorf("decode dashboard stats: %w", err)
	}
	return stats, nil
}
