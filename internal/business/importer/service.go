package importer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gearlane/recon-tracker/internal/platform/vindecoder"
	"github.com/gearlane/recon-tracker/pkg/model"
)

const maxErrorSamples = 10

// VehicleStore abstracts the persistence layer for vehicles.
type VehicleStore interface {
	BatchUpsert(ctx context.Context, dealershipID string, vehicles []model.Vehicle) error
}

// RunStore tracks import run lifecycle records.
type RunStore interface {
	CreateRun(ctx context.Context, dealershipID string, run model.ImportRun) error
	UpdateRun(ctx context.Context, dealershipID string, run model.ImportRun) error
}

// VINDecoder abstracts the vPIC client for testability.
type VINDecoder interface {
	DecodeVIN(ctx context.Context, vin string) (vindecoder.Decoded, error)
}

// StatsRefresher recomputes dashboard stats after an import lands.
type StatsRefresher interface {
	Refresh(ctx context.Context, dealershipID string) (model.DashboardStats, error)
}

// Service orchestrates end-to-end inventory imports.
type Service struct {
	vehicles VehicleStore
	runs     RunStore
	decoder  VINDecoder
	stats    StatsRefresher
	log      zerolog.Logger
}

func NewService(vehicles VehicleStore, runs RunStore, decoder VINDecoder, stats StatsRefresher, log zerolog.Logger) *Service {
	return &Service{
		vehicles: vehicles,
		runs:     runs,
		decoder:  decoder,
		stats:    stats,
		log:      log,
	}
}

// Start parses the CSV feed, records a run, and kicks off the import
// asynchronously. It returns the run ID for status polling.
func (s *Service) Start(ctx context.Context, dealershipID string, feed io.Reader) (string, error) {
	rows, err := ParseInventoryCSV(feed)
	if err != nil {
		return "", fmt.Errorf("parse inventory feed: %w", err)
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("feed contains no vehicle rows")
	}

	startedAt := time.Now().UTC()
	runID := generateRunID()
	if err := s.runs.CreateRun(ctx, dealershipID, model.ImportRun{
		RunID:     runID,
		Status:    "running",
		Stats:     model.ImportRunStats{Found: len(rows)},
		StartedAt: startedAt,
	}); err != nil {
		return "", err
	}

	go s.execute(context.Background(), dealershipID, runID, rows, startedAt)
	return runID, nil
}

func (s *Service) execute(ctx context.Context, dealershipID, runID string, rows []model.Vehicle, startedAt time.Time) {
	progress := func(curr model.ImportRunStats) {
		done := curr.Imported + curr.Skipped + curr.Failed
		if done%25 == 0 || done == curr.Found {
			_ = s.runs.UpdateRun(ctx, dealershipID, model.ImportRun{
				RunID:     runID,
				Status:    "running",
				Stats:     curr,
				StartedAt: startedAt,
			})
		}
	}

	stats, samples, err := ImportVehicles(ctx, s.vehicles, s.decoder, dealershipID, runID, rows, progress, s.log)
	status := "success"
	if err != nil {
		status = "failed"
		s.log.Error().Err(err).Str("runId", runID).Msg("import run failed")
	}

	if s.stats != nil {
		if _, err := s.stats.Refresh(ctx, dealershipID); err != nil {
			s.log.Warn().Err(err).Str("runId", runID).Msg("stats refresh after import failed")
		}
	}

	_ = s.runs.UpdateRun(ctx, dealershipID, model.ImportRun{
		RunID:       runID,
		Status:      status,
		Stats:       stats,
		StartedAt:   startedAt,
		FinishedAt:  time.Now().UTC(),
		ErrorSample: samples,
	})
}

// ImportVehicles runs the import pipeline over parsed rows: validate, enrich
// via the VIN decoder, and batch upsert. Decoder failures keep the raw row;
// validation failures drop it.
func ImportVehicles(
	ctx context.Context,
	store VehicleStore,
	decoder VINDecoder,
	dealershipID string,
	runID string,
	rows []model.Vehicle,
	onProgress func(model.ImportRunStats),
	log zerolog.Logger,
) (model.ImportRunStats, []model.ErrorSample, error) {
	stats := model.ImportRunStats{Found: len(rows)}
	var samples []model.ErrorSample

	var toSave []model.Vehicle
	const incrementalWriteThreshold = 20

	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		select {
		case <-ctx.Done():
			return stats, samples, ctx.Err()
		default:
		}

		// Feeds often repeat a unit; the first occurrence wins.
		if key := rowKey(row); seen[key] {
			stats.Skipped++
			if onProgress != nil {
				onProgress(stats)
			}
			continue
		} else {
			seen[key] = true
		}

		if err := ValidateVehicle(row); err != nil {
			stats.Failed++
			if len(samples) < maxErrorSamples {
				samples = append(samples, model.ErrorSample{Row: rowKey(row), Reason: err.Error()})
			}
			if onProgress != nil {
				onProgress(stats)
			}
			continue
		}

		if decoder != nil && row.VIN != "" && needsDecode(row) {
			decoded, err := decoder.DecodeVIN(ctx, row.VIN)
			if err != nil {
				log.Warn().Err(err).Str("vin", row.VIN).Msg("vin decode failed, keeping raw row")
			} else {
				row = applyDecode(row, decoded)
				stats.Decoded++
			}
		}

		row.ImportRunID = runID
		toSave = append(toSave, row)
		stats.Imported++

		// Incremental write: flush every N rows to bound memory and loss.
		if len(toSave) >= incrementalWriteThreshold {
			if err := store.BatchUpsert(ctx, dealershipID, toSave); err != nil {
				return stats, samples, fmt.Errorf("batch upsert: %w", err)
			}
			toSave = toSave[:0]
		}

		if onProgress != nil {
			onProgress(stats)
		}
	}

	if len(toSave) > 0 {
		if err := store.BatchUpsert(ctx, dealershipID, toSave); err != nil {
			return stats, samples, fmt.Errorf("batch upsert: %w", err)
		}
	}
	return stats, samples, nil
}

func needsDecode(v model.Vehicle) bool {
	return v.Year == 0 || v.Make == "" || v.Model == ""
}

func applyDecode(v model.Vehicle, decoded vindecoder.Decoded) model.Vehicle {
	if v.Year == 0 {
		v.Year = decoded.Year
	}
	if v.Make == "" {
		v.Make = decoded.Make
	}
	if v.Model == "" {
		v.Model = decoded.Model
	}
	if v.Trim == "" {
		v.Trim = decoded.Trim
	}
	return v
}

func rowKey(v model.Vehicle) string {
	if v.VIN != "" {
		return v.VIN
	}
	return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
}

func generateRunID() string {
	return "RUN_" + uuid.NewString()[:8]
}
