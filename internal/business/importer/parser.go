package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gearlane/recon-tracker/pkg/model"
)

// ParseInventoryCSV reads vehicle rows from a CSV feed. The first record is a
// header; column names are matched case-insensitively and unknown columns are
// ignored, so feeds from different DMS exports can be loaded as-is.
func ParseInventoryCSV(r io.Reader) ([]model.Vehicle, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[normalizeHeader(col)] = i
	}

	var vehicles []model.Vehicle
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		field := func(names ...string) string {
			for _, name := range names {
				if i, ok := index[name]; ok && i < len(record) {
					return strings.TrimSpace(record[i])
				}
			}
			return ""
		}

		v := model.Vehicle{
			VIN:         strings.ToUpper(field("vin")),
			StockNumber: field("stock", "stocknumber", "stockno"),
			Make:        field("make"),
			Model:       field("model"),
			Trim:        field("trim"),
			Color:       field("color", "exteriorcolor"),
			Location:    field("location", "lot"),
			Status:      normalizeStatus(field("status")),
			Notes:       field("notes"),
		}
		v.Year, _ = strconv.Atoi(field("year"))
		v.Mileage, _ = strconv.Atoi(strings.ReplaceAll(field("mileage", "odometer", "miles"), ",", ""))

		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

func normalizeHeader(col string) string {
	col = strings.ToLower(strings.TrimSpace(col))
	col = strings.ReplaceAll(col, " ", "")
	col = strings.ReplaceAll(col, "_", "")
	return col
}

func normalizeStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case model.VehicleStatusSold:
		return model.VehicleStatusSold
	case model.VehicleStatusPending:
		return model.VehicleStatusPending
	default:
		return model.VehicleStatusActive
	}
}
