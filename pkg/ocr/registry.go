package ocr

import (
	"fmt"
	"strings"
)

// Registry manages the available OCR engines.
type Registry struct {
	engines map[string]Engine
}

// NewRegistry creates an empty engine registry.
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]Engine),
	}
}

// Register adds an engine to the registry.
func (r *Registry) Register(engine Engine) {
	r.engines[strings.ToLower(engine.Name())] = engine
}

// Get retrieves an engine by name.
func (r *Registry) Get(name string) (Engine, error) {
	engine, exists := r.engines[strings.ToLower(name)]
	if !exists {
		return nil, fmt.Errorf("ocr engine %s not found", name)
	}
	return engine, nil
}

// List returns all registered engine names.
func (r *Registry) List() []string {
	var names []string
	for name := range r.engines {
		names = append(names, name)
	}
	return names
}

// HasEngine checks if an engine is registered.
func (r *Registry) HasEngine(name string) bool {
	_, exists := r.engines[strings.ToLower(name)]
	return exists
}

// Default returns a registry with every built-in engine registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(NewTesseract())
	r.Register(NewGosseract())
	return r
}
