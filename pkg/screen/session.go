package screen

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"log/slog"
	"os"
	"strings"

	"github.com/corona10/goimagehash"
	"github.com/eyespot/eyespot/pkg/hocr"
	"github.com/eyespot/eyespot/pkg/match"
	"github.com/eyespot/eyespot/pkg/ocr"
)

// DefaultFilter is the ImageMagick preprocessing applied before OCR unless
// the caller sets another one (or `eyespot tune` found a better fit).
const DefaultFilter = "-sharpen 5 -filter Mitchell -resize 1920x1600 -level 40%,70%,5.0 -sharpen 5"

// Perceptual hashes within this distance count as an unchanged screen.
const hashSkipDistance = 3

// Session holds the state one automation script works with: the window
// table, the preprocessing filter, and the word index from the last read.
// Sessions are not safe for concurrent use; automation scripts are
// single-threaded callers.
type Session struct {
	engine       ocr.Engine
	engineConfig ocr.Config
	filter       string
	forceOCR     bool

	windows map[string]Window
	last    string

	readKey    string
	transcript string
	words      hocr.WordIndex
	lastHash   *goimagehash.ImageHash
}

// New creates a session reading through the given OCR engine.
func New(engine ocr.Engine, engineConfig ocr.Config) *Session {
	return &Session{
		engine:       engine,
		engineConfig: engineConfig,
		filter:       DefaultFilter,
		windows:      make(map[string]Window),
	}
}

// SetFilter replaces the preprocessing filter used on subsequent reads.
func (s *Session) SetFilter(filter string) {
	s.filter = filter
}

// Filter returns the current preprocessing filter.
func (s *Session) Filter() string {
	return s.filter
}

// SetForceOCR disables the unchanged-screen shortcut so every read runs the
// full OCR cycle.
func (s *Session) SetForceOCR(force bool) {
	s.forceOCR = force
}

// Words returns the word index from the last read.
func (s *Session) Words() hocr.WordIndex {
	return s.words
}

// Transcript returns the raw hOCR markup from the last read.
func (s *Session) Transcript() string {
	return s.transcript
}

// LastWindow returns the most recently used capture source.
func (s *Session) LastWindow() (Window, bool) {
	w, ok := s.windows[s.last]
	return w, ok
}

// Forget drops a cached window entry so the next use re-queries geometry.
func (s *Session) Forget(id string) {
	delete(s.windows, id)
}

// UseWindow selects a capture window. Accepts a raw 0x id, a window name
// resolved through xwininfo, or an empty string meaning the last used
// window (falling back to the currently focused one). Geometry is cached
// in the window table across reads.
func (s *Session) UseWindow(ctx context.Context, idOrName string) (Window, error) {
	var id string
	switch {
	case idOrName == "":
		if s.last != "" {
			if w, ok := s.windows[s.last]; ok {
				return w, nil
			}
		}
		active, err := activeWindowID(ctx)
		if err != nil {
			return Window{}, err
		}
		id = active
	case strings.HasPrefix(idOrName, "0x"):
		id = idOrName
	default:
		resolved, err := lookupWindowID(ctx, idOrName)
		if err != nil {
			return Window{}, err
		}
		id = resolved
	}

	offset, size, err := windowGeometry(ctx, id)
	if err != nil {
		return Window{}, err
	}
	w := Window{ID: id, Offset: offset, Size: size}
	s.windows[id] = w
	s.last = id
	return w, nil
}

// UseImage selects a still image as a pseudo-window at origin (0,0).
func (s *Session) UseImage(ctx context.Context, path string) (Window, error) {
	width, height, err := Identify(ctx, path)
	if err != nil {
		return Window{}, err
	}
	w := Window{ID: path, Size: image.Point{X: width, Y: height}}
	s.windows[path] = w
	s.last = path
	return w, nil
}

// ReadOptions selects the capture source for one read cycle.
type ReadOptions struct {
	// Window is an id or name; empty means the last used window, or the
	// focused one on a fresh session.
	Window string
	// Image is a still image path and takes precedence over Window.
	Image string
}

// Read runs one capture cycle: grab the source image, preprocess it, OCR it
// to an hOCR transcript, and build the word index rescaled to the capture
// resolution. The previous index is discarded. When the screen is
// perceptually unchanged since the last read of the same source, the OCR
// step is skipped and the previous index returned.
func (s *Session) Read(ctx context.Context, opts ReadOptions) (hocr.WordIndex, error) {
	var scratch []string
	defer func() {
		for _, path := range scratch {
			os.Remove(path)
		}
	}()

	var win Window
	var source string
	var err error
	if opts.Image != "" {
		win, err = s.UseImage(ctx, opts.Image)
		if err != nil {
			return nil, err
		}
		source = opts.Image
	} else {
		win, err = s.UseWindow(ctx, opts.Window)
		if err != nil {
			return nil, err
		}
		source, err = captureRegion(win.Offset, win.Size)
		if err != nil {
			return nil, err
		}
		scratch = append(scratch, source)
	}

	key := win.ID + "|" + s.filter + "|" + s.engine.Name()
	hash := hashImage(source)
	if !s.forceOCR && hash != nil && s.lastHash != nil && key == s.readKey {
		if distance, err := hash.Distance(s.lastHash); err == nil && distance <= hashSkipDistance {
			slog.Debug("screen unchanged, reusing word index", "source", win.ID, "distance", distance)
			s.lastHash = hash
			return s.words, nil
		}
	}

	preprocessed := tempPNG("pp")
	scratch = append(scratch, preprocessed)
	if err := preprocess(ctx, source, s.filter, preprocessed); err != nil {
		return nil, err
	}

	transcript, err := s.engine.Recognize(ctx, s.engineConfig, preprocessed)
	if err != nil {
		return nil, err
	}

	index := hocr.ParseWords(transcript)
	if scaledW, scaledH, err := hocr.PageSize(transcript); err == nil {
		index = hocr.Rescale(index, scaledW, scaledH, win.Size.X, win.Size.Y)
	} else if len(index) > 0 {
		slog.Warn("transcript has no working resolution, keeping raw coordinates", "err", err)
	}

	slog.Debug("read cycle finished", "source", win.ID, "words", len(index))
	s.transcript = transcript
	s.words = index
	s.lastHash = hash
	s.readKey = key
	return index, nil
}

// FindWord resolves the best-matching detected word for a query. A low
// score is not an error; compare against your own threshold.
func (s *Session) FindWord(query string) (float64, string, error) {
	return match.Resolve(query, s.words)
}

// LocateWord resolves a query to an absolute screen coordinate: best match,
// threshold check, appearance pick (1-based), click position within the
// box, window origin offset. Returns a match.NoMatchError when the best
// score is below minScore.
func (s *Session) LocateWord(query string, appearance int, spec ClickSpec, minScore float64) (image.Point, float64, string, error) {
	score, word, err := match.Resolve(query, s.words)
	if err != nil {
		return image.Point{}, 0, "", err
	}
	if score < minScore {
		return image.Point{}, score, word, &match.NoMatchError{
			Query:    query,
			Best:     word,
			Score:    score,
			Required: minScore,
		}
	}

	var offset image.Point
	if win, ok := s.LastWindow(); ok {
		offset = win.Offset
	}
	point, err := AppearancePoint(s.words[word], appearance, spec, offset)
	if err != nil {
		return image.Point{}, score, word, fmt.Errorf("appearance of %q: %w", word, err)
	}
	return point, score, word, nil
}

// Snapshot writes the current capture source to an image file suitable for
// annotation. Still-image pseudo-windows are returned as-is; live windows
// are re-captured. The bool reports whether the caller owns (and should
// remove) the file.
func (s *Session) Snapshot(ctx context.Context) (string, bool, error) {
	win, ok := s.LastWindow()
	if !ok {
		return "", false, fmt.Errorf("no capture source selected")
	}
	if !strings.HasPrefix(win.ID, "0x") {
		return win.ID, false, nil
	}
	path, err := captureRegion(win.Offset, win.Size)
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}

func hashImage(path string) *goimagehash.ImageHash {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil
	}
	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return nil
	}
	return hash
}
