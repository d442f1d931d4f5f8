package detection

import (
	"image"
	"image/color"
	"testing"
)

// createSolidNRGBA builds a w x h image filled with a single color.
func createSolidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// createPaddedNRGBA builds a w x h image whose inner rect has the given
// alpha and whose border has padAlpha.
func createPaddedNRGBA(w, h int, inner image.Rectangle, innerAlpha, padAlpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := padAlpha
			if (image.Point{x, y}).In(inner) {
				a = innerAlpha
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 200, B: 200, A: a})
		}
	}
	return img
}

func TestStripBorders_FullyOpaque(t *testing.T) {
	img := createSolidNRGBA(500, 400, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	out := StripBorders(img)

	if out.Bounds().Dx() != 500 || out.Bounds().Dy() != 400 {
		t.Errorf("dimensions: got %dx%d, want 500x400", out.Bounds().Dx(), out.Bounds().Dy())
	}
	got := out.NRGBAAt(250, 200)
	if got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("pixel changed: got %v", got)
	}
}

func TestStripBorders_TransparentPadding(t *testing.T) {
	inner := image.Rect(60, 60, 260, 200)
	img := createPaddedNRGBA(300, 300, inner, 255, 0)

	out := StripBorders(img)

	if out.Bounds().Dx() != inner.Dx() || out.Bounds().Dy() != inner.Dy() {
		t.Errorf("dimensions: got %dx%d, want %dx%d",
			out.Bounds().Dx(), out.Bounds().Dy(), inner.Dx(), inner.Dy())
	}
}

func TestStripBorders_SemiTransparentShadow(t *testing.T) {
	// Soft compositor shadow: alpha 120 padding around opaque content.
	inner := image.Rect(50, 50, 250, 250)
	img := createPaddedNRGBA(300, 300, inner, 255, 120)

	out := StripBorders(img)

	if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 200 {
		t.Errorf("shadow not stripped: got %dx%d, want 200x200", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestStripBorders_ShadowBoxFallback(t *testing.T) {
	// A transparent-terminal style capture: no fully opaque pixels at all,
	// content at alpha 200 surrounded by alpha 0.
	inner := image.Rect(100, 100, 130, 130)
	img := createPaddedNRGBA(300, 300, inner, 200, 0)

	out := StripBorders(img)

	// Shadow box plus the 1px safety margin on each side.
	if out.Bounds().Dx() != 32 || out.Bounds().Dy() != 32 {
		t.Errorf("dimensions: got %dx%d, want 32x32", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestStripBorders_SmallOpaqueBoxUsesFallback(t *testing.T) {
	// An opaque region of 40x40 is below the 50x50 trust threshold, so the
	// conservative tier should decide the crop instead.
	inner := image.Rect(100, 100, 140, 140)
	img := createPaddedNRGBA(400, 400, inner, 255, 60)

	out := StripBorders(img)

	// The alpha-60 padding survives the shadow tier, so only the invisible
	// border (none here) is removed.
	if out.Bounds().Dx() != 400 || out.Bounds().Dy() != 400 {
		t.Errorf("dimensions: got %dx%d, want 400x400", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestStripBorders_AllTransparent(t *testing.T) {
	img := createSolidNRGBA(120, 120, color.NRGBA{})

	out := StripBorders(img)

	if out.Bounds().Dx() != 120 || out.Bounds().Dy() != 120 {
		t.Errorf("dimensions: got %dx%d, want 120x120", out.Bounds().Dx(), out.Bounds().Dy())
	}
}
