// Package pipeline orchestrates the composition workflow: load input, strip
// capture padding, hold the composition state, render, cache, and export.
//
// A Pipeline is the only component in the module with mutable session
// state. The render cache is not synchronized: a pipeline assumes a single
// writer, and the calling layer is responsible for debouncing repeated
// Render calls and for not overlapping two renders on the same instance.
package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/composure/composure/internal/composition"
	"github.com/composure/composure/internal/detection"
	imagecache "github.com/composure/composure/internal/imaging"
	"github.com/composure/composure/internal/render"
)

// Pipeline owns the current input image, composition state, and the cached
// render output.
type Pipeline struct {
	input      image.Image
	inputPath  string
	state      composition.CompositionState
	images     *imagecache.ImageCache
	cached     *image.NRGBA
	cacheValid bool
}

// New creates a pipeline with default state and no input image.
func New() *Pipeline {
	return &Pipeline{
		state:  composition.DefaultState(),
		images: imagecache.NewImageCache(),
	}
}

// LoadImage decodes an input image from disk, strips transparent capture
// padding, and makes it the current input. On failure the previous input
// and cache are left untouched.
func (p *Pipeline) LoadImage(path string) error {
	// The file may have changed since a previous load of the same path;
	// input loads always decode fresh.
	p.images.Evict(path)
	img, err := p.images.Load(path)
	if err != nil {
		return fmt.Errorf("load input image: %w", err)
	}

	p.input = detection.StripBorders(img)
	p.inputPath = path
	p.cacheValid = false
	return nil
}

// SetImage makes a decoded image (e.g. from a capture collaborator) the
// current input, stripping transparent capture padding first.
func (p *Pipeline) SetImage(img image.Image) {
	p.input = detection.StripBorders(img)
	p.inputPath = ""
	p.cacheValid = false
}

// SetImageBytes decodes an encoded image (PNG, JPEG or GIF) handed over by
// a capture collaborator and makes it the current input. On failure the
// previous input and cache are left untouched.
func (p *Pipeline) SetImageBytes(data []byte) error {
	img, err := imagecache.Decode(data)
	if err != nil {
		return fmt.Errorf("decode input image: %w", err)
	}
	p.SetImage(img)
	return nil
}

// Input returns the current (stripped) input image, or nil.
func (p *Pipeline) Input() image.Image {
	return p.input
}

// State returns a pointer to the live composition state. Mutating it
// directly does not invalidate the cache; use UpdateState or SetState.
func (p *Pipeline) State() *composition.CompositionState {
	return &p.state
}

// UpdateState applies a partial state change and invalidates the cache.
func (p *Pipeline) UpdateState(u composition.StateUpdate) {
	u.Apply(&p.state)
	p.cacheValid = false
}

// SetState replaces the entire composition state and invalidates the cache.
func (p *Pipeline) SetState(s composition.CompositionState) {
	p.state = s.Clone()
	p.cacheValid = false
}

// InvalidateCache marks the cached render output as stale.
func (p *Pipeline) InvalidateCache() {
	p.cacheValid = false
}

// Render returns the composited output, reusing the cached result when the
// input and state have not changed since the last render. Pass force to
// re-render regardless. Returns nil when no input image is loaded.
func (p *Pipeline) Render(force bool) *image.NRGBA {
	if p.input == nil {
		return nil
	}
	if p.cacheValid && !force && p.cached != nil {
		return p.cached
	}

	p.cached = render.NewRenderer(p.input, &p.state, p.images).Render()
	p.cacheValid = true
	return p.cached
}

// OutputSize returns the canvas dimensions the current state would produce,
// without rendering. ok is false when no input image is loaded.
func (p *Pipeline) OutputSize() (w, h int, ok bool) {
	if p.input == nil {
		return 0, 0, false
	}
	w, h = render.NewRenderer(p.input, &p.state, p.images).ComputeOutputSize()
	return w, h, true
}

// ExportPNG renders (reusing the cache) and writes the result as an RGBA
// PNG. The file is written to a temporary sibling and renamed into place,
// so a failed export never leaves a partial file at path.
func (p *Pipeline) ExportPNG(path string) error {
	result := p.Render(false)
	if result == nil {
		return fmt.Errorf("no input image loaded")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".composure-*.png")
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	tmpName := tmp.Name()

	if err := png.Encode(tmp, result); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write export file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("finalize export file: %w", err)
	}
	return nil
}

// ExportBytes renders (reusing the cache) and returns the result encoded as
// an RGBA PNG.
func (p *Pipeline) ExportBytes() ([]byte, error) {
	result := p.Render(false)
	if result == nil {
		return nil, fmt.Errorf("no input image loaded")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, result); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
