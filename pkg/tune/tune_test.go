package tune

import (
	"sort"
	"strings"
	"testing"
)

func TestCandidates(t *testing.T) {
	candidates := Candidates(800)

	// 4 resize filters x 15 level pairs x 6 pipeline shapes.
	if len(candidates) != 360 {
		t.Fatalf("Candidates() gave %d filters, want 360", len(candidates))
	}

	seen := map[string]bool{}
	for _, c := range candidates {
		if seen[c] {
			t.Fatalf("duplicate candidate filter %q", c)
		}
		seen[c] = true
		if !strings.Contains(c, "-resize 1600x") {
			t.Errorf("candidate %q does not resize to double width", c)
		}
	}

	want := "-sharpen 5 -filter Mitchell -resize 1600x -sharpen 5 -level 20%,30%,3.0 -sharpen 5"
	if !seen[want] {
		t.Errorf("Candidates() missing %q", want)
	}
}

func TestResultRank(t *testing.T) {
	results := []Result{
		{Filter: "weak", MinScore: 0.1, MeanScore: 0.3},
		{Filter: "balanced", MinScore: 0.5, MeanScore: 0.6},
		{Filter: "spiky", MinScore: 0.0, MeanScore: 0.9},
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].rank() > results[j].rank()
	})

	if results[0].Filter != "balanced" {
		t.Errorf("best ranked filter = %q, want balanced", results[0].Filter)
	}
	if results[2].Filter != "weak" {
		t.Errorf("worst ranked filter = %q, want weak", results[2].Filter)
	}
}
