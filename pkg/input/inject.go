package input

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os/exec"
	"strings"
)

// MouseEvent selects what happens after the pointer moves to the target.
type MouseEvent int

const (
	MouseMove MouseEvent = iota
	MouseClick
	MouseDown
	MouseUp
)

// ParseMouseEvent maps the CLI event names to MouseEvent values.
func ParseMouseEvent(s string) (MouseEvent, error) {
	switch strings.ToLower(s) {
	case "move":
		return MouseMove, nil
	case "click":
		return MouseClick, nil
	case "down":
		return MouseDown, nil
	case "up":
		return MouseUp, nil
	}
	return 0, fmt.Errorf("unknown mouse event %q", s)
}

// Injector delivers events through a blocking xte invocation per call.
type Injector struct {
	// DelayMicros is the pause inserted between consecutive key events.
	DelayMicros int
}

// Type sends a key sequence.
func (in *Injector) Type(ctx context.Context, sequence []KeyAction) error {
	return in.run(ctx, interleaveDelay(keyArgs(sequence), in.DelayMicros))
}

// Mouse moves the pointer to p and performs the given event with the given
// button (1 left, 2 middle, 3 right).
func (in *Injector) Mouse(ctx context.Context, p image.Point, button int, event MouseEvent) error {
	args := []string{fmt.Sprintf("mousemove %d %d", p.X, p.Y)}
	switch event {
	case MouseClick:
		args = append(args, fmt.Sprintf("mouseclick %d", button))
	case MouseDown:
		args = append(args, fmt.Sprintf("mousedown %d", button))
	case MouseUp:
		args = append(args, fmt.Sprintf("mouseup %d", button))
	}
	return in.run(ctx, args)
}

func (in *Injector) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}
	output, err := exec.CommandContext(ctx, "xte", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("xte failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	slog.Debug("injected events", "count", len(args))
	return nil
}
