package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearlane/recon-tracker/internal/platform/vindecoder"
	"github.com/gearlane/recon-tracker/pkg/model"
)

type mockStore struct {
	saved []model.Vehicle
	err   error
}

func (m *mockStore) BatchUpsert(ctx context.Context, dealershipID string, vehicles []model.Vehicle) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, vehicles...)
	return nil
}

type mockDecoder struct {
	decoded vindecoder.Decoded
	err     error
	calls   int
}

func (m *mockDecoder) DecodeVIN(ctx context.Context, vin string) (vindecoder.Decoded, error) {
	m.calls++
	return m.decoded, m.err
}

func TestImportVehicles(t *testing.T) {
	store := &mockStore{}
	decoder := &mockDecoder{decoded: vindecoder.Decoded{Year: 2019, Make: "HONDA", Model: "Accord"}}

	rows := []model.Vehicle{
		{VIN: "1HGCM82633A004352"},                           // needs decode
		{VIN: "2T1BURHE5JC123456", Year: 2021, Make: "Toyota", Model: "Corolla"}, // complete
		{Year: 2020},                                         // invalid, no identity
	}

	stats, samples, err := ImportVehicles(context.Background(), store, decoder, "d1", "RUN_1", rows, nil, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Found)
	assert.Equal(t, 2, stats.Imported)
	assert.Equal(t, 1, stats.Decoded)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 1, decoder.calls)

	require.Len(t, store.saved, 2)
	assert.Equal(t, "HONDA", store.saved[0].Make)
	assert.Equal(t, "RUN_1", store.saved[0].ImportRunID)

	require.Len(t, samples, 1)
	assert.Contains(t, samples[0].Reason, "VIN or a make and model")
}

func TestImportVehiclesDecoderFailureKeepsRow(t *testing.T) {
	store := &mockStore{}
	decoder := &mockDecoder{err: errors.New("vpic down")}

	rows := []model.Vehicle{{VIN: "1HGCM82633A004352"}}
	stats, _, err := ImportVehicles(context.Background(), store, decoder, "d1", "RUN_2", rows, nil, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Imported)
	assert.Equal(t, 0, stats.Decoded)
	require.Len(t, store.saved, 1)
	assert.Empty(t, store.saved[0].Make)
}

func TestImportVehiclesSkipsDuplicateRows(t *testing.T) {
	store := &mockStore{}
	rows := []model.Vehicle{
		{VIN: "1HGCM82633A004352", Year: 2019, Make: "Honda", Model: "Accord"},
		{VIN: "1HGCM82633A004352", Year: 2019, Make: "Honda", Model: "Accord"},
		{VIN: "2T1BURHE5JC123456", Year: 2021, Make: "Toyota", Model: "Corolla"},
	}

	stats, _, err := ImportVehicles(context.Background(), store, nil, "d1", "RUN_5", rows, nil, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Imported)
	assert.Equal(t, 1, stats.Skipped)
	require.Len(t, store.saved, 2)
}

func TestImportVehiclesUpsertErrorStops(t *testing.T) {
	store := &mockStore{err: errors.New("firestore unavailable")}
	rows := make([]model.Vehicle, 25)
	for i := range rows {
		rows[i] = model.Vehicle{Make: "Honda", Model: "Accord"}
	}

	_, _, err := ImportVehicles(context.Background(), store, nil, "d1", "RUN_3", rows, nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestImportVehiclesProgressCallback(t *testing.T) {
	store := &mockStore{}
	var last model.ImportRunStats
	calls := 0
	progress := func(curr model.ImportRunStats) {
		calls++
		last = curr
	}

	rows := []model.Vehicle{
		{Make: "Honda", Model: "Accord"},
		{Make: "Ford", Model: "Fusion"},
	}
	_, _, err := ImportVehicles(context.Background(), store, nil, "d1", "RUN_4", rows, progress, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, last.Imported)
}
