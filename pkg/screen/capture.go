package screen

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kbinani/screenshot"
)

// tempPNG returns a unique scratch path for a capture artifact.
func tempPNG(stem string) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("eyespot-%s-%s.png", stem, uuid.NewString()))
}

// captureRegion grabs the window's screen region and writes it to a scratch
// PNG. The caller removes the file when the read cycle is done.
func captureRegion(offset, size image.Point) (string, error) {
	if size.X <= 0 || size.Y <= 0 {
		return "", fmt.Errorf("invalid capture dimensions %dx%d", size.X, size.Y)
	}

	bounds := image.Rect(offset.X, offset.Y, offset.X+size.X, offset.Y+size.Y)
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return "", fmt.Errorf("failed to capture region %v: %w", bounds, err)
	}

	path := tempPNG("capture")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to encode capture: %w", err)
	}
	return path, nil
}

// Identify reads an image's dimensions with ImageMagick.
func Identify(ctx context.Context, imagePath string) (int, int, error) {
	output, err := exec.CommandContext(ctx, "magick", "identify", "-format", "%w %h", imagePath).Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get image dimensions: %w", err)
	}

	var width, height int
	_, err = fmt.Sscanf(strings.TrimSpace(string(output)), "%d %d", &width, &height)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse dimensions: %w", err)
	}
	return width, height, nil
}

// preprocess runs the ImageMagick filter over src into dst. The filter is a
// whitespace-separated argument string, e.g. "-sharpen 5 -resize 1600x".
func preprocess(ctx context.Context, src, filter, dst string) error {
	args := []string{src}
	args = append(args, strings.Fields(filter)...)
	args = append(args, dst)

	output, err := exec.CommandContext(ctx, "magick", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("imagemagick preprocessing failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
