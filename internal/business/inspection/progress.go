package inspection

import "math"

// CalculateProgress turns section statuses into a 0-100 completion percentage.
// Any section that has been fully rated counts toward progress regardless of
// outcome; only not-started does not. Returns 0 when there are no active
// sections. Callers must not invoke this before both the inspection data and
// the section definitions have loaded, or an empty data set reads as 100%.
func CalculateProgress(statuses map[string]SectionStatus, totalActiveSections int) int {
	if totalActiveSections <= 0 {
		return 0
	}
	completed := 0
	for _, s := range statuses {
		if s != StatusNotStarted {
			completed++
		}
	}
	if completed > totalActiveSections {
		completed = totalActiveSections
	}
	return int(math.Round(float64(completed) / float64(totalActiveSections) * 100))
}
