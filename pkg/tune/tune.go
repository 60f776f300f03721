// Package tune searches for the ImageMagick preprocessing filter that best
// exposes a set of wanted words to OCR. The resolver's score is the
// black-box objective; each candidate filter gets a full read cycle on the
// reference image.
package tune

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/eyespot/eyespot/pkg/match"
	"github.com/eyespot/eyespot/pkg/ocr"
	"github.com/eyespot/eyespot/pkg/screen"
)

// WordScore records how one wanted word fared under a candidate filter.
type WordScore struct {
	Query    string  `json:"query"`
	Detected string  `json:"detected"`
	Score    float64 `json:"score"`
}

// Result is the outcome of evaluating one candidate filter.
type Result struct {
	Filter    string      `json:"filter"`
	MinScore  float64     `json:"min_score"`
	MeanScore float64     `json:"mean_score"`
	Words     []WordScore `json:"words"`
}

// rank orders candidates: the worst word matters as much as the average.
func (r Result) rank() float64 {
	return r.MinScore + r.MeanScore
}

// Summary is the full search output, best filter first.
type Summary struct {
	Image   string   `json:"image"`
	Words   []string `json:"words"`
	Best    string   `json:"best"`
	Results []Result `json:"results"`
}

var resizeFilters = []string{"Mitchell", "Catrom", "Hermite", "Gaussian"}

var levels = [][2]int{
	{20, 30}, {20, 40}, {20, 50},
	{30, 30}, {30, 40}, {30, 50},
	{40, 40}, {40, 50}, {40, 60},
	{50, 50}, {50, 60}, {50, 70},
	{60, 60}, {60, 70}, {60, 80},
}

// Candidates builds the filter grid for an image of the given width:
// every resize filter crossed with every black/white level pair, rendered
// through six pipeline shapes at double width.
func Candidates(imageWidth int) []string {
	const zoom = 2
	target := zoom * imageWidth

	var filters []string
	for _, f := range resizeFilters {
		for _, lv := range levels {
			black, white := lv[0], lv[1]
			filters = append(filters,
				fmt.Sprintf("-sharpen 5 -filter %s -resize %dx -sharpen 5 -level %d%%,%d%%,3.0 -sharpen 5", f, target, black, white),
				fmt.Sprintf("-sharpen 5 -filter %s -resize %dx -level %d%%,%d%%,3.0 -sharpen 5", f, target, black, white),
				fmt.Sprintf("-sharpen 5 -filter %s -resize %dx -level %d%%,%d%%,3.0", f, target, black, white),
				fmt.Sprintf("-sharpen 5 -level %d%%,%d%%,3.0 -filter %s -resize %dx -sharpen 5", black, white, f, target),
				fmt.Sprintf("-sharpen 5 -level %d%%,%d%%,1.0 -filter %s -resize %dx", black, white, f, target),
				fmt.Sprintf("-sharpen 5 -level %d%%,%d%%,10.0 -filter %s -resize %dx", black, white, f, target),
			)
		}
	}
	return filters
}

// Evaluate runs one candidate filter over the image and scores every wanted
// word against the resulting word index.
func Evaluate(ctx context.Context, sess *screen.Session, imagePath, filter string, words []string) (Result, error) {
	sess.SetFilter(filter)
	index, err := sess.Read(ctx, screen.ReadOptions{Image: imagePath})
	if err != nil {
		return Result{}, err
	}

	result := Result{Filter: filter, MinScore: 1.0}
	sum := 0.0
	for _, w := range words {
		score, detected, err := match.Resolve(w, index)
		if err != nil {
			score, detected = 0.0, ""
		}
		result.Words = append(result.Words, WordScore{Query: w, Detected: detected, Score: score})
		sum += score
		if score < result.MinScore {
			result.MinScore = score
		}
	}
	if len(words) > 0 {
		result.MeanScore = sum / float64(len(words))
	}
	return result, nil
}

// Run evaluates the whole candidate grid and returns the ranked summary.
// Candidates whose read cycle fails are skipped; the search degrades to
// whatever filters the tools could process.
func Run(ctx context.Context, engine ocr.Engine, engineConfig ocr.Config, imagePath string, words []string) (Summary, error) {
	width, _, err := screen.Identify(ctx, imagePath)
	if err != nil {
		return Summary{}, err
	}

	sess := screen.New(engine, engineConfig)
	sess.SetForceOCR(true)

	candidates := Candidates(width)
	results := make([]Result, 0, len(candidates))
	for i, filter := range candidates {
		result, err := Evaluate(ctx, sess, imagePath, filter, words)
		if err != nil {
			slog.Warn("skipping candidate filter", "filter", filter, "err", err)
			continue
		}
		slog.Info("evaluated filter", "n", i+1, "of", len(candidates),
			"min", fmt.Sprintf("%.2f", result.MinScore),
			"mean", fmt.Sprintf("%.2f", result.MeanScore))
		results = append(results, result)
	}
	if len(results) == 0 {
		return Summary{}, fmt.Errorf("no candidate filter could be evaluated")
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].rank() > results[j].rank()
	})

	return Summary{
		Image:   imagePath,
		Words:   words,
		Best:    results[0].Filter,
		Results: results,
	}, nil
}
