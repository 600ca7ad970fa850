package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gearlane/recon-tracker/pkg/model"
)

// RunRepository manages inventory import run records.
type RunRepository struct {
	client *firestore.Client
}

func NewRunRepository(client *firestore.Client) *RunRepository {
	return &RunRepository{client: client}
}

func (r *RunRepository) col(dealershipID string) *firestore.CollectionRef {
	return r.client.Collection("dealerships").Doc(dealershipID).Collection("import_runs")
}

func (r *RunRepository) CreateRun(ctx context.Context, dealershipID string, run model.ImportRun) error {
	if run.RunID == "" {
		return fmt.Errorf("runId is required")
	}
	if _, err := r.col(dealershipID).Doc(run.RunID).Set(ctx, run); err != nil {
		return fmt.Errorf("create run %s: %w", run.RunID, err)
	}
	return nil
}

func (r *RunRepository) UpdateRun(ctx context.Context, dealershipID string, run model.ImportRun) error {
	if run.RunID == "" {
		return fmt.Errorf("runId is required")
	}
	if _, err := r.col(dealershipID).Doc(run.RunID).Set(ctx, run); err != nil {
		return fmt.Errorf("update run %s: %w", run.RunID, err)
	}
	return nil
}

func (r *RunRepository) GetRun(ctx context.Context, dealershipID, runID string) (model.ImportRun, error) {
	snap, err := r.col(dealershipID).Doc(runID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.ImportRun{}, ErrNotFound
		}
		return model.ImportRun{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	var run model.ImportRun
	if err := snap.DataTo(&run); err != nil {
		return model.ImportRun{}, fmt.Errorf("decode run %s: %w", runID, err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (r *RunRepository) ListRuns(ctx context.Context, dealershipID string, limit int) ([]model.ImportRun, error) {
	if limit <= 0 {
		limit = 20
	}
	iter := r.col(dealershipID).OrderBy("startedAt", firestore.Desc).Limit(limit).Documents(ctx)
	var runs []model.ImportRun
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate runs: %w", err)
		}
		var run model.ImportRun
		if err := doc.DataTo(&run); err != nil {
			return nil, fmt.Errorf("decode run %s: %w", doc.Ref.ID, err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
