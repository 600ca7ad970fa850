package inspection

import (
	"testing"
)

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		name     string
		statuses map[string]SectionStatus
		total    int
		want     int
	}{
		{"no active sections", map[string]SectionStatus{}, 0, 0},
		{"nothing started", map[string]SectionStatus{"a": StatusNotStarted, "b": StatusNotStarted}, 2, 0},
		{"half done", map[string]SectionStatus{"a": StatusCompleted, "b": StatusNotStarted}, 2, 50},
		{"rated sections count regardless of outcome", map[string]SectionStatus{
			"a": StatusCompleted, "b": StatusPending, "c": StatusNeedsAttention,
		}, 3, 100},
		{"one of three", map[string]SectionStatus{
			"a": StatusPending, "b": StatusNotStarted, "c": StatusNotStarted,
		}, 3, 33},
		{"two of three rounds up", map[string]SectionStatus{
			"a": StatusCompleted, "b": StatusNeedsAttention, "c": StatusNotStarted,
		}, 3, 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateProgress(tt.statuses, tt.total); got != tt.want {
				t.Errorf("CalculateProgress = %d, want %d", got, tt.want)
			}
		})
	}
}

// Progress stays in [0, 100] and rating a previously-unrated section never
// decreases it.
func TestProgressBoundsAndMonotonicity(t *testing.T) {
	statuses := map[string]SectionStatus{
		"a": StatusNotStarted,
		"b": StatusNotStarted,
		"c": StatusNotStarted,
		"d": StatusNotStarted,
	}
	prev := CalculateProgress(statuses, len(statuses))
	if prev != 0 {
		t.Fatalf("initial progress = %d, want 0", prev)
	}

	for _, key := range []string{"a", "b", "c", "d"} {
		statuses[key] = StatusPending
		got := CalculateProgress(statuses, len(statuses))
		if got < prev {
			t.Errorf("progress decreased from %d to %d after rating %s", prev, got, key)
		}
		if got < 0 || got > 100 {
			t.Errorf("progress %d out of bounds", got)
		}
		prev = got
	}
	if prev != 100 {
		t.Errorf("final progress = %d, want 100", prev)
	}
}
