package util

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// HashVehicleKey creates an MD5 hash from the VIN, falling back to stock
// number plus year/make/model when the VIN is missing. Used as a stable
// document ID so re-imports target the same record.
func HashVehicleKey(vin, stockNumber, yearMakeModel string) string {
	if v := strings.TrimSpace(strings.ToLower(vin)); v != "" {
		return hashString(v)
	}
	builder := strings.Builder{}
	builder.WriteString(strings.TrimSpace(strings.ToLower(stockNumber)))
	builder.WriteString("|")
	builder.WriteString(strings.TrimSpace(strings.ToLower(yearMakeModel)))
	return hashString(builder.String())
}

// HashString returns the MD5 hash of an arbitrary string.
func HashString(input string) string {
	return hashString(strings.TrimSpace(strings.ToLower(input)))
}

func hashString(input string) string {
	sum := md5.Sum([]byte(input))
	return hex.EncodeToString(sum[:])
}
