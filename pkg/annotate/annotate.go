// Package annotate overlays debug markers on captures with ImageMagick:
// boxes around matched words and the point a click would land on.
package annotate

import (
	"context"
	"fmt"
	"image"
	"os/exec"
	"strings"

	"github.com/eyespot/eyespot/pkg/hocr"
	"github.com/eyespot/eyespot/pkg/match"
)

// ScoreColor maps a match score to the overlay stroke color.
func ScoreColor(score float64) string {
	switch {
	case score < 0.33:
		return "red"
	case score < 0.5:
		return "brown"
	default:
		return "green"
	}
}

// Mark is one word overlay: the queried label, the score of its best match,
// and the matched word's bounding box.
type Mark struct {
	Label string
	Score float64
	Box   hocr.Box
}

// Marks resolves each queried word against the index and builds its
// overlay from the first appearance of the best match. Words with no
// candidates are skipped.
func Marks(words []string, index hocr.WordIndex) []Mark {
	var marks []Mark
	for _, w := range words {
		score, detected, err := match.Resolve(w, index)
		if err != nil || len(index[detected]) == 0 {
			continue
		}
		marks = append(marks, Mark{Label: w, Score: score, Box: index[detected][0].Box})
	}
	return marks
}

// DrawWords writes a copy of src with the given words highlighted. The box
// stroke color reflects the match score; the label and score are printed at
// the box corners.
func DrawWords(ctx context.Context, src, dst string, words []string, index hocr.WordIndex) error {
	return draw(ctx, src, dst, wordArgs(Marks(words, index)))
}

// DrawPoint writes a copy of src with a marker on the clicked point.
func DrawPoint(ctx context.Context, src, dst string, p image.Point) error {
	args := []string{
		"-stroke", "red", "-fill", "blue",
		"-draw", fmt.Sprintf("fill-opacity 0.2 circle %d,%d %d,%d", p.X, p.Y, p.X+20, p.Y),
		"-stroke", "none", "-fill", "red",
		"-draw", fmt.Sprintf("point %d,%d", p.X, p.Y),
	}
	return draw(ctx, src, dst, args)
}

func wordArgs(marks []Mark) []string {
	var args []string
	for _, m := range marks {
		color := ScoreColor(m.Score)
		// The draw text literal is single-quoted; an apostrophe in the label
		// would terminate it early.
		label := strings.ReplaceAll(m.Label, "'", "")
		args = append(args,
			"-stroke", color, "-fill", "blue",
			"-draw", fmt.Sprintf("fill-opacity 0.2 rectangle %d,%d %d,%d", m.Box.Left, m.Box.Top, m.Box.Right, m.Box.Bottom),
			"-stroke", "none", "-fill", color,
			"-draw", fmt.Sprintf("text %d,%d '%s'", m.Box.Left, m.Box.Top, label),
			"-draw", fmt.Sprintf("text %d,%d '%.2f'", m.Box.Left, m.Box.Bottom+10, m.Score),
		)
	}
	return args
}

func draw(ctx context.Context, src, dst string, drawArgs []string) error {
	args := append([]string{src}, drawArgs...)
	args = append(args, dst)
	output, err := exec.CommandContext(ctx, "magick", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("imagemagick annotation failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
