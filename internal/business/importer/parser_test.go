package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearlane/recon-tracker/pkg/model"
)

func TestParseInventoryCSV(t *testing.T) {
	feed := `VIN,Stock Number,Year,Make,Model,Trim,Mileage,Color,Location,Status,Notes
1HGCM82633A004352,ST-100,2019,Honda,Accord,EX-L,"42,315",Blue,Main Lot,,fresh trade
2T1BURHE5JC123456,ST-101,2021,Toyota,Corolla,,12000,Red,Off-Site Storage B,sold,
`
	vehicles, err := ParseInventoryCSV(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, vehicles, 2)

	first := vehicles[0]
	assert.Equal(t, "1HGCM82633A004352", first.VIN)
	assert.Equal(t, "ST-100", first.StockNumber)
	assert.Equal(t, 2019, first.Year)
	assert.Equal(t, 42315, first.Mileage)
	assert.Equal(t, "Main Lot", first.Location)
	assert.Equal(t, model.VehicleStatusActive, first.Status)

	second := vehicles[1]
	assert.Equal(t, model.VehicleStatusSold, second.Status)
	assert.Equal(t, "Off-Site Storage B", second.Location)
}

func TestParseInventoryCSVHeaderVariants(t *testing.T) {
	feed := `vin,stock_number,odometer,exterior_color
1HGCM82633A004352,ST-1,9000,White
`
	vehicles, err := ParseInventoryCSV(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "ST-1", vehicles[0].StockNumber)
	assert.Equal(t, 9000, vehicles[0].Mileage)
	assert.Equal(t, "White", vehicles[0].Color)
}

func TestParseInventoryCSVUppercasesVIN(t *testing.T) {
	feed := "vin\n1hgcm82633a004352\n"
	vehicles, err := ParseInventoryCSV(strings.NewReader(feed))
	require.NoError(t, err)
	assert.Equal(t, "1HGCM82633A004352", vehicles[0].VIN)
}

func TestParseInventoryCSVEmptyFeed(t *testing.T) {
	_, err := ParseInventoryCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestValidateVehicle(t *testing.T) {
	tests := []struct {
		name    string
		vehicle model.Vehicle
		wantErr bool
	}{
		{"valid with vin", model.Vehicle{VIN: "1HGCM82633A004352", Year: 2019}, false},
		{"valid without vin", model.Vehicle{Make: "Honda", Model: "Accord"}, false},
		{"no identity", model.Vehicle{Year: 2019}, true},
		{"short vin", model.Vehicle{VIN: "ABC123"}, true},
		{"ancient year", model.Vehicle{VIN: "1HGCM82633A004352", Year: 1900}, true},
		{"future year", model.Vehicle{VIN: "1HGCM82633A004352", Year: 2100}, true},
		{"negative mileage", model.Vehicle{VIN: "1HGCM82633A004352", Mileage: -1}, true},
		{"zero year allowed", model.Vehicle{VIN: "1HGCM82633A004352"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVehicle(tt.vehicle)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
