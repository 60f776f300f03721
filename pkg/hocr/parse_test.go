package hocr

import (
	"fmt"
	"testing"
)

func span(id string, left, top, right, bottom int, text string) string {
	return fmt.Sprintf(`<span class='ocrx_word' id='%s' title='bbox %d %d %d %d'>%s</span>`,
		id, left, top, right, bottom, text)
}

func TestParseWords(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		word       string
		wantCount  int
	}{
		{
			name:       "single word",
			transcript: span("word_1_1", 0, 0, 20, 20, "File"),
			word:       "File",
			wantCount:  1,
		},
		{
			name:       "old ocr_word class",
			transcript: `<span class="ocr_word" id="word_2" title="bbox 5 5 30 15">Edit</span>`,
			word:       "Edit",
			wantCount:  1,
		},
		{
			name:       "confidence tail in title",
			transcript: `<span class='ocrx_word' id='word_3' title='bbox 1 2 3 4; x_wconf 91'>View</span>`,
			word:       "View",
			wantCount:  1,
		},
		{
			name:       "emphasis stripped",
			transcript: `<span class='ocrx_word' id='word_4' title='bbox 1 2 3 4'><strong>Save</strong></span>`,
			word:       "Save",
			wantCount:  1,
		},
		{
			name:       "entities decoded",
			transcript: `<span class='ocrx_word' id='word_5' title='bbox 1 2 3 4'>A&amp;B</span>`,
			word:       "A&B",
			wantCount:  1,
		},
		{
			name:       "numeric apostrophe decoded",
			transcript: `<span class='ocrx_word' id='word_6' title='bbox 1 2 3 4'>don&#39;t</span>`,
			word:       "don't",
			wantCount:  1,
		},
		{
			name:       "empty text is a valid key",
			transcript: span("word_7", 1, 2, 3, 4, ""),
			word:       "",
			wantCount:  1,
		},
		{
			name:       "malformed bbox skipped",
			transcript: `<span class='ocrx_word' id='word_8' title='bbox a b c d'>Broken</span>`,
			word:       "Broken",
			wantCount:  0,
		},
		{
			name:       "unterminated span skipped",
			transcript: `<span class='ocrx_word' id='word_9' title='bbox 1 2 3 4'>Open`,
			word:       "Open",
			wantCount:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := ParseWords(tt.transcript)
			if got := len(index[tt.word]); got != tt.wantCount {
				t.Errorf("ParseWords() gave %d appearances of %q, want %d", got, tt.word, tt.wantCount)
			}
		})
	}
}

func TestParseWordsPreservesOrder(t *testing.T) {
	transcript := span("word_1", 0, 0, 20, 20, "File") + "\n" +
		span("word_2", 100, 0, 120, 20, "Edit") + "\n" +
		span("word_3", 0, 50, 20, 70, "File")

	index := ParseWords(transcript)
	appearances := index["File"]
	if len(appearances) != 2 {
		t.Fatalf("ParseWords() gave %d appearances of File, want 2", len(appearances))
	}
	if appearances[0].ID != "word_1" || appearances[1].ID != "word_3" {
		t.Errorf("appearances out of emission order: %q then %q", appearances[0].ID, appearances[1].ID)
	}
	if appearances[1].Box.Top != 50 {
		t.Errorf("second appearance box top = %d, want 50", appearances[1].Box.Top)
	}
}

func TestParseWordsCenter(t *testing.T) {
	index := ParseWords(span("word_1", 0, 0, 20, 20, "File"))
	a := index["File"][0]
	if a.Center.X != 10.0 || a.Center.Y != 10.0 {
		t.Errorf("center = (%v, %v), want (10, 10)", a.Center.X, a.Center.Y)
	}
	if a.Box != (Box{Left: 0, Top: 0, Right: 20, Bottom: 20}) {
		t.Errorf("box = %+v", a.Box)
	}
}

func TestPageSize(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		wantW      int
		wantH      int
		wantErr    bool
	}{
		{
			name:       "typical page element",
			transcript: `<div class='ocr_page' id='page_1' title='image "/tmp/x.png"; bbox 0 0 1920 1600; ppageno 0'>`,
			wantW:      1920,
			wantH:      1600,
		},
		{
			name:       "no page marker",
			transcript: span("word_1", 0, 0, 10, 10, "File"),
			wantErr:    true,
		},
		{
			name:       "degenerate size",
			transcript: `<div class='ocr_page' title='bbox 0 0 0 0'>`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := PageSize(tt.transcript)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("PageSize() = %dx%d, want error", w, h)
				}
				return
			}
			if err != nil {
				t.Fatalf("PageSize() error: %v", err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("PageSize() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
