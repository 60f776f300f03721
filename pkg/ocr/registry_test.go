package ocr

import "testing"

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(NewTesseract())

	if !r.HasEngine("tesseract") {
		t.Error("HasEngine(tesseract) = false after Register")
	}
	if !r.HasEngine("TESSERACT") {
		t.Error("engine lookup should be case insensitive")
	}

	engine, err := r.Get("tesseract")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if engine.Name() != "tesseract" {
		t.Errorf("Get() returned engine %q", engine.Name())
	}

	if _, err := r.Get("cuneiform"); err == nil {
		t.Error("Get(cuneiform) expected error")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	for _, name := range []string{"tesseract", "gosseract"} {
		if !r.HasEngine(name) {
			t.Errorf("default registry missing %s", name)
		}
	}
	if len(r.List()) != 2 {
		t.Errorf("default registry has %d engines, want 2", len(r.List()))
	}
}
