// Package hocr parses OCR transcripts in hOCR markup into an index of
// detected words and rescales their coordinates between the OCR engine's
// working resolution and the original capture resolution.
package hocr

// Box is an axis-aligned bounding box in pixels, left<=right and top<=bottom.
type Box struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Point is a pixel coordinate. Centers are fractional until rescaled.
type Point struct {
	X, Y float64
}

// Appearance is one detected occurrence of a word on the image.
type Appearance struct {
	// ID is the OCR engine's identifier for the word span, e.g. "word_1_13".
	ID     string
	Center Point
	Box    Box
}

// WordIndex maps recognized text to its appearances in engine emission
// order. Keys are raw OCR output; empty or whitespace text is a valid key.
// The index is rebuilt wholesale on every read cycle.
type WordIndex map[string][]Appearance
