package screen

import (
	"fmt"
	"image"

	"github.com/eyespot/eyespot/pkg/hocr"
)

// ClickSpec is a position relative to a word's bounding box. (0,0) is the
// top-left corner, (1,1) the bottom-right, (0.5,0.5) the middle. Values
// outside [0,1] target points outside the box, e.g. RX=-2 clicks two box
// widths left of the word.
type ClickSpec struct {
	RX, RY float64
}

// Center is the default click position.
var Center = ClickSpec{RX: 0.5, RY: 0.5}

// ClickPoint computes the absolute pixel to act on for a bounding box, a
// relative position inside it, and the owning window's screen origin.
// The result truncates toward zero and is deliberately not clamped.
func ClickPoint(box hocr.Box, spec ClickSpec, offset image.Point) image.Point {
	x := int(float64(box.Left) + spec.RX*float64(box.Right-box.Left) + float64(offset.X))
	y := int(float64(box.Top) + spec.RY*float64(box.Bottom-box.Top) + float64(offset.Y))
	return image.Point{X: x, Y: y}
}

// AppearancePoint picks the appearance-th occurrence (1-based) of a word and
// computes its click point. An out-of-range index is a caller bug.
func AppearancePoint(appearances []hocr.Appearance, appearance int, spec ClickSpec, offset image.Point) (image.Point, error) {
	if appearance < 1 || appearance > len(appearances) {
		return image.Point{}, fmt.Errorf("appearance %d out of range: word has %d appearances", appearance, len(appearances))
	}
	return ClickPoint(appearances[appearance-1].Box, spec, offset), nil
}
