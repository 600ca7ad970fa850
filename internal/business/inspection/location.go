package inspection

import (
	"strings"

	"github.com/gearlane/recon-tracker/pkg/model"
)

// ClassifyLocation resolves a free-text vehicle location into a location type
// bucket. A formal row with a matching name wins; otherwise keyword heuristics
// apply, defaulting to on-site.
func ClassifyLocation(name string, formal []model.Location) string {
	trimmed := strings.TrimSpace(name)
	for _, loc := range formal {
		if strings.EqualFold(strings.TrimSpace(loc.Name), trimmed) && loc.Type != "" {
			return loc.Type
		}
	}

	lower := strings.ToLower(trimmed)
	switch {
	case strings.Contains(lower, "transit"), strings.Contains(lower, "transport"):
		return model.LocationInTransit
	case strings.Contains(lower, "off-site"), strings.Contains(lower, "off site"),
		strings.Contains(lower, "storage"), strings.Contains(lower, "external"):
		return model.LocationOffSite
	default:
		return model.LocationOnSite
	}
}
