package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/composure/composure/internal/composition"
	imagecache "github.com/composure/composure/internal/imaging"
)

func presetConfig(id string) composition.BackgroundConfig {
	return composition.BackgroundConfig{Type: composition.BackgroundTypePreset, PresetID: id}
}

func TestDrawBackground_SolidPreset(t *testing.T) {
	canvas := image.NewNRGBA(image.Rect(0, 0, 50, 50))

	drawBackground(canvas, presetConfig("slate"), imagecache.NewImageCache())

	want := color.NRGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xFF}
	for _, p := range [][2]int{{0, 0}, {25, 25}, {49, 49}} {
		if got := canvas.NRGBAAt(p[0], p[1]); got != want {
			t.Errorf("pixel (%d,%d) = %+v, want %+v", p[0], p[1], got, want)
		}
	}
}

func TestDrawBackground_UnknownPresetUsesDefault(t *testing.T) {
	cache := imagecache.NewImageCache()

	a := image.NewNRGBA(image.Rect(0, 0, 60, 40))
	drawBackground(a, presetConfig("no-such-preset"), cache)

	b := image.NewNRGBA(image.Rect(0, 0, 60, 40))
	drawBackground(b, presetConfig(composition.DefaultBackgroundPresetID), cache)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("unknown preset should render identically to the default preset")
	}
}

func TestDrawBackground_MissingImageFallsBack(t *testing.T) {
	canvas := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	cfg := composition.BackgroundConfig{
		Type:      composition.BackgroundTypeImage,
		ImagePath: filepath.Join(t.TempDir(), "does-not-exist.png"),
	}

	drawBackground(canvas, cfg, imagecache.NewImageCache())

	if got := canvas.NRGBAAt(10, 10); got != fallbackFill {
		t.Errorf("pixel = %+v, want fallback fill %+v", got, fallbackFill)
	}
}

func TestDrawBackground_ImageCoverFill(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "bg.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	canvas := image.NewNRGBA(image.Rect(0, 0, 30, 20))
	cfg := composition.BackgroundConfig{Type: composition.BackgroundTypeImage, ImagePath: path}
	drawBackground(canvas, cfg, imagecache.NewImageCache())

	// A uniform source stays uniform through cover-fill scaling.
	for _, p := range [][2]int{{0, 0}, {15, 10}, {29, 19}} {
		got := canvas.NRGBAAt(p[0], p[1])
		if got.R < 250 || got.G > 5 || got.B > 5 || got.A != 255 {
			t.Errorf("pixel (%d,%d) = %+v, want red", p[0], p[1], got)
		}
	}
}

func TestGradientLUT_Endpoints(t *testing.T) {
	stops := parseStops([]string{"#000000", "#FFFFFF"})
	lut := gradientLUT(stops)

	if lut[0] != (color.NRGBA{R: 0, G: 0, B: 0, A: 0xFF}) {
		t.Errorf("lut[0] = %+v, want black", lut[0])
	}
	if lut[255] != (color.NRGBA{R: 255, G: 255, B: 255, A: 0xFF}) {
		t.Errorf("lut[255] = %+v, want white", lut[255])
	}
}

func TestFillLinearGradient_MonotonicAlongAngle(t *testing.T) {
	canvas := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	stops := parseStops([]string{"#000000", "#FFFFFF"})

	fillLinearGradient(canvas, stops, 0)

	prev := -1
	for x := 0; x < 100; x++ {
		r := int(canvas.NRGBAAt(x, 50).R)
		if r < prev {
			t.Fatalf("brightness decreases at x=%d: %d < %d", x, r, prev)
		}
		prev = r
	}
	left := canvas.NRGBAAt(0, 50).R
	right := canvas.NRGBAAt(99, 50).R
	if left >= right {
		t.Errorf("gradient flat: left %d, right %d", left, right)
	}
}

func TestFillRadialGradient_CenterDarkest(t *testing.T) {
	canvas := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	stops := parseStops([]string{"#000000", "#FFFFFF"})

	fillRadialGradient(canvas, stops)

	center := canvas.NRGBAAt(50, 50).R
	corner := canvas.NRGBAAt(0, 0).R
	if center >= corner {
		t.Errorf("center %d not darker than corner %d", center, corner)
	}
	if center > 10 {
		t.Errorf("center brightness = %d, want near first stop", center)
	}
}

func TestParseStops_Fallbacks(t *testing.T) {
	if stops := parseStops(nil); len(stops) != 1 {
		t.Errorf("empty input: got %d stops, want 1", len(stops))
	}

	stops := parseStops([]string{"not-a-color"})
	r, g, b := stops[0].RGB255()
	if r != 128 || g != 128 || b != 128 {
		t.Errorf("malformed stop = %d,%d,%d, want mid gray", r, g, b)
	}
}
