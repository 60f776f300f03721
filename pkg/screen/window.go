// Package screen owns the capture session: window geometry, screenshot
// capture, the read cycle that turns a capture into a word index, and the
// click-point arithmetic that maps a matched word back to screen
// coordinates.
package screen

import (
	"context"
	"fmt"
	"image"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// Window identifies a capture source: a live X11 window, or a still image
// used as a pseudo-window. Offset is the window's origin in screen
// coordinates; still images sit at (0,0).
type Window struct {
	ID     string
	Offset image.Point
	Size   image.Point
}

// BadWindowError reports that a window name could not be resolved to an id.
type BadWindowError struct {
	Name   string
	Output string
}

func (e *BadWindowError) Error() string {
	return fmt.Sprintf("cannot find window id for %q (got: %q)", e.Name, e.Output)
}

var windowIDRe = regexp.MustCompile(`Window id: (0x[0-9a-fA-F]+)`)

// lookupWindowID resolves a window name to an X11 id via xwininfo.
func lookupWindowID(ctx context.Context, name string) (string, error) {
	output, _ := exec.CommandContext(ctx, "xwininfo", "-name", name).CombinedOutput()
	m := windowIDRe.FindSubmatch(output)
	if m == nil {
		return "", &BadWindowError{Name: name, Output: strings.TrimSpace(string(output))}
	}
	return string(m[1]), nil
}

// windowGeometry reads a window's screen origin and size from xwininfo.
func windowGeometry(ctx context.Context, id string) (image.Point, image.Point, error) {
	output, err := exec.CommandContext(ctx, "xwininfo", "-id", id).Output()
	if err != nil {
		return image.Point{}, image.Point{}, fmt.Errorf("xwininfo failed for %s: %w", id, err)
	}
	return parseGeometry(string(output))
}

func parseGeometry(output string) (image.Point, image.Point, error) {
	fields := map[string]int{}
	for _, line := range strings.Split(output, "\n") {
		for _, key := range []string{"Absolute upper-left X", "Absolute upper-left Y", "Width", "Height"} {
			prefix := key + ":"
			idx := strings.Index(line, prefix)
			if idx < 0 {
				continue
			}
			v, err := strconv.Atoi(strings.TrimSpace(line[idx+len(prefix):]))
			if err == nil {
				fields[key] = v
			}
		}
	}
	if _, ok := fields["Width"]; !ok {
		return image.Point{}, image.Point{}, fmt.Errorf("no geometry in xwininfo output")
	}
	offset := image.Point{X: fields["Absolute upper-left X"], Y: fields["Absolute upper-left Y"]}
	size := image.Point{X: fields["Width"], Y: fields["Height"]}
	return offset, size, nil
}

// activeWindowID returns the focused window's id from the root window's
// _NET_ACTIVE_WINDOW property.
func activeWindowID(ctx context.Context) (string, error) {
	output, err := exec.CommandContext(ctx, "xprop", "-root", "_NET_ACTIVE_WINDOW").Output()
	if err != nil {
		return "", fmt.Errorf("xprop failed: %w", err)
	}
	parts := strings.Fields(string(output))
	if len(parts) == 0 {
		return "", fmt.Errorf("empty _NET_ACTIVE_WINDOW property")
	}
	id := parts[len(parts)-1]
	if !strings.HasPrefix(id, "0x") {
		return "", fmt.Errorf("unexpected _NET_ACTIVE_WINDOW value %q", id)
	}
	return id, nil
}
