package hocr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// Word spans as emitted by tesseract: older releases tag them
	// ocr_word, newer ones ocrx_word. The title may carry extra fields
	// after the bbox (x_wconf and friends).
	wordSpanRe = regexp.MustCompile(`<span class=['"]ocrx?_word['"] id=['"]([^'"]*)['"] title=['"]bbox ([0-9]+) ([0-9]+) ([0-9]+) ([0-9]+)[^'"]*['"][^>]*>([^<]*)</span>`)

	pageSizeRe = regexp.MustCompile(`bbox 0 0 ([0-9]+)\s+([0-9]+)`)
)

// Named character entities with codepoints below 128. Anything else in the
// transcript is left as-is.
var entities = map[string]rune{
	"quot": '"',
	"amp":  '&',
	"apos": '\'',
	"lt":   '<',
	"gt":   '>',
}

// ParseWords extracts every well-formed word span from an hOCR transcript
// into a WordIndex. Emphasis markup is stripped and low-ASCII entities are
// decoded first, so the span text is literal. Malformed spans are skipped
// silently; a garbage transcript just yields fewer words.
func ParseWords(transcript string) WordIndex {
	transcript = decodeEntities(stripEmphasis(transcript))

	index := WordIndex{}
	for _, m := range wordSpanRe.FindAllStringSubmatch(transcript, -1) {
		left, _ := strconv.Atoi(m[2])
		top, _ := strconv.Atoi(m[3])
		right, _ := strconv.Atoi(m[4])
		bottom, _ := strconv.Atoi(m[5])
		word := m[6]
		index[word] = append(index[word], Appearance{
			ID: m[1],
			Center: Point{
				X: float64(right+left) / 2.0,
				Y: float64(top+bottom) / 2.0,
			},
			Box: Box{Left: left, Top: top, Right: right, Bottom: bottom},
		})
	}
	return index
}

// PageSize returns the OCR engine's working resolution from the first
// ocr_page element's "bbox 0 0 W H" marker.
func PageSize(transcript string) (int, int, error) {
	for _, line := range strings.Split(transcript, "\n") {
		if !strings.Contains(line, "ocr_page") {
			continue
		}
		m := pageSizeRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		w, _ := strconv.Atoi(m[1])
		h, _ := strconv.Atoi(m[2])
		if w == 0 || h == 0 {
			return 0, 0, fmt.Errorf("degenerate page size %dx%d", w, h)
		}
		return w, h, nil
	}
	return 0, 0, fmt.Errorf("no ocr_page bbox marker in transcript")
}

func stripEmphasis(s string) string {
	for _, tag := range []string{"<strong>", "</strong>", "<em>", "</em>"} {
		s = strings.ReplaceAll(s, tag, "")
	}
	return s
}

func decodeEntities(s string) string {
	for name, r := range entities {
		s = strings.ReplaceAll(s, "&"+name+";", string(r))
	}
	return strings.ReplaceAll(s, "&#39;", "'")
}
