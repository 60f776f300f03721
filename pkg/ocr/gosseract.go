package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Gosseract runs tesseract in-process through its C API. Faster than the
// exec engine when reading the same window repeatedly, but needs the
// libtesseract headers at build time.
type Gosseract struct{}

// NewGosseract creates the in-process tesseract engine.
func NewGosseract() *Gosseract {
	return &Gosseract{}
}

func (g *Gosseract) Name() string {
	return "gosseract"
}

func (g *Gosseract) Validate(config Config) error {
	client := gosseract.NewClient()
	defer client.Close()
	if config.Language != "" {
		if err := client.SetLanguage(config.Language); err != nil {
			return fmt.Errorf("language %q not available: %w", config.Language, err)
		}
	}
	return nil
}

func (g *Gosseract) Recognize(ctx context.Context, config Config, imagePath string) (string, error) {
	// The C API offers no cancellation point, so honor the context before
	// the blocking call starts.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if config.Language != "" {
		if err := client.SetLanguage(config.Language); err != nil {
			return "", fmt.Errorf("failed to set language: %w", err)
		}
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	transcript, err := client.HOCRText()
	if err != nil {
		return "", fmt.Errorf("gosseract OCR failed: %w", err)
	}
	return transcript, nil
}
