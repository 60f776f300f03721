// Package ocr defines the OCR engine contract and the engines that produce
// hOCR transcripts from preprocessed screen captures.
package ocr

import "context"

// Config holds engine configuration shared by all implementations.
type Config struct {
	// Language is the tesseract language code, e.g. "eng".
	Language string
	// TesseractPath overrides the binary looked up on PATH for the
	// exec-based engine.
	TesseractPath string
}

// Engine turns an image file into an hOCR transcript.
type Engine interface {
	// Recognize runs OCR on the image at imagePath and returns the hOCR
	// markup. The call blocks until the engine finishes.
	Recognize(ctx context.Context, config Config, imagePath string) (string, error)
	// Name returns the engine's registry name.
	Name() string
	// Validate checks that the engine can run with the given configuration.
	Validate(config Config) error
}
