package detection

import (
	"image"
	"image/color"
	"testing"
)

func TestDetectWindowTransparency_NoAlphaChannel(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 100, 100))

	if got := DetectWindowTransparency(img); got != (EdgeTrims{}) {
		t.Errorf("trims: got %+v, want zero for non-alpha image", got)
	}
}

func TestDetectWindowTransparency_OpaqueImage(t *testing.T) {
	img := createSolidNRGBA(100, 100, color.NRGBA{R: 50, G: 50, B: 50, A: 255})

	if got := DetectWindowTransparency(img); got != (EdgeTrims{}) {
		t.Errorf("trims: got %+v, want zero for fully opaque image", got)
	}
}

func TestDetectWindowTransparency_TransparentTop(t *testing.T) {
	img := createSolidNRGBA(200, 200, color.NRGBA{R: 50, G: 50, B: 50, A: 255})
	for y := 0; y < 15; y++ {
		for x := 0; x < 200; x++ {
			img.SetNRGBA(x, y, color.NRGBA{})
		}
	}

	got := DetectWindowTransparency(img)

	if got.Top != 15 {
		t.Errorf("Top: got %d, want 15", got.Top)
	}
	if got.Left != 0 || got.Right != 0 || got.Bottom != 0 {
		t.Errorf("other edges: got %+v, want zero", got)
	}
}

func TestDetectWindowTransparency_HorizontalMargins(t *testing.T) {
	// Transparent columns on the left and right only. With margins on both
	// sides no row is ever fully opaque, so top/bottom stay zero.
	img := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			a := uint8(255)
			if x < 10 || x >= 200-20 {
				a = 0
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 80, G: 80, B: 80, A: a})
		}
	}

	got := DetectWindowTransparency(img)
	want := EdgeTrims{Left: 10, Right: 20}
	if got != want {
		t.Errorf("trims: got %+v, want %+v", got, want)
	}
}

func TestDetectWindowTransparency_VerticalMargins(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			a := uint8(255)
			if y < 5 || y >= 200-30 {
				a = 0
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 80, G: 80, B: 80, A: a})
		}
	}

	got := DetectWindowTransparency(img)
	want := EdgeTrims{Top: 5, Bottom: 30}
	if got != want {
		t.Errorf("trims: got %+v, want %+v", got, want)
	}
}
