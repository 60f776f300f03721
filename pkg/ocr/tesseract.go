package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Tesseract runs the tesseract binary and reads the hOCR file it writes
// next to its output base.
type Tesseract struct{}

// NewTesseract creates the exec-based tesseract engine.
func NewTesseract() *Tesseract {
	return &Tesseract{}
}

func (t *Tesseract) Name() string {
	return "tesseract"
}

func (t *Tesseract) Validate(config Config) error {
	if _, err := exec.LookPath(t.binary(config)); err != nil {
		return fmt.Errorf("tesseract binary not available: %w", err)
	}
	return nil
}

func (t *Tesseract) Recognize(ctx context.Context, config Config, imagePath string) (string, error) {
	lang := config.Language
	if lang == "" {
		lang = "eng"
	}

	outBase := strings.TrimSuffix(imagePath, ".png")
	cmd := exec.CommandContext(ctx, t.binary(config), imagePath, outBase, "-l", lang, "hocr")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("tesseract failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	slog.Debug("tesseract finished", "image", imagePath, "output", strings.TrimSpace(string(output)))

	// Tesseract 4+ writes .hocr, 3.x wrote .html.
	for _, ext := range []string{".hocr", ".html"} {
		data, err := os.ReadFile(outBase + ext)
		if err == nil {
			defer os.Remove(outBase + ext)
			return string(data), nil
		}
	}
	return "", fmt.Errorf("tesseract produced no hocr output for %s", imagePath)
}

func (t *Tesseract) binary(config Config) string {
	if config.TesseractPath != "" {
		return config.TesseractPath
	}
	return "tesseract"
}
