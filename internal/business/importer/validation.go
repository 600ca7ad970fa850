package importer

import (
	"fmt"
	"time"

	"github.com/gearlane/recon-tracker/pkg/model"
)

// ValidateVehicle rejects rows that could not identify a vehicle or carry
// obviously bad data. Missing optional fields are fine; the VIN decoder fills
// some of them in later.
func ValidateVehicle(v model.Vehicle) error {
	if v.VIN == "" && (v.Make == "" || v.Model == "") {
		return fmt.Errorf("row needs a VIN or a make and model")
	}
	if v.VIN != "" && (len(v.VIN) < 11 || len(v.VIN) > 17) {
		return fmt.Errorf("vin %q has invalid length %d", v.VIN, len(v.VIN))
	}
	if v.Year != 0 {
		maxYear := time.Now().Year() + 2
		if v.Year < 1950 || v.Year > maxYear {
			return fmt.Errorf("year %d out of range", v.Year)
		}
	}
	if v.Mileage < 0 {
		return fmt.Errorf("mileage %d is negative", v.Mileage)
	}
	return nil
}
