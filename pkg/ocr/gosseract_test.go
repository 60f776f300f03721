package ocr

import (
	"context"
	"errors"
	"testing"
)

func TestGosseractRecognizeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewGosseract()
	_, err := engine.Recognize(ctx, Config{}, "nonexistent.png")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Recognize() with cancelled context error = %v, want context.Canceled", err)
	}
}
