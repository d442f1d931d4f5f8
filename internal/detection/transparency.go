package detection

import "image"

// DetectWindowTransparency measures the transparent margins a window capture
// leaves around the frame (compositor shadows, rounded corners).
//
// For each edge it scans rows/columns from that edge inward, sampling every
// ~1/20th of the perpendicular dimension, until it finds a row/column whose
// sampled pixels are all fully opaque (alpha == 255). The offset of that
// row/column from its edge is the trim for that side.
//
// Images without an alpha channel get zero trims on all sides.
func DetectWindowTransparency(img image.Image) EdgeTrims {
	if !HasAlphaChannel(img) {
		return EdgeTrims{}
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w == 0 || h == 0 {
		return EdgeTrims{}
	}

	stepX := maxInt(1, w/20)
	stepY := maxInt(1, h/20)

	var trims EdgeTrims

	// First fully opaque row from the top.
	for y := 0; y < h; y++ {
		if rowOpaque(img, y, stepX) {
			trims.Top = y
			break
		}
	}

	// Last fully opaque row from the bottom.
	for y := h - 1; y >= 0; y-- {
		if rowOpaque(img, y, stepX) {
			trims.Bottom = h - 1 - y
			break
		}
	}

	// First fully opaque column from the left.
	for x := 0; x < w; x++ {
		if colOpaque(img, x, stepY) {
			trims.Left = x
			break
		}
	}

	// Last fully opaque column from the right.
	for x := w - 1; x >= 0; x-- {
		if colOpaque(img, x, stepY) {
			trims.Right = w - 1 - x
			break
		}
	}

	return trims
}

// HasAlphaChannel reports whether the image's storage carries transparency
// information. Opaque formats (JPEG-backed YCbCr, Gray) report false.
func HasAlphaChannel(img image.Image) bool {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		return true
	}
	return false
}

func rowOpaque(img image.Image, y, step int) bool {
	bounds := img.Bounds()
	for x := 0; x < bounds.Dx(); x += step {
		_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
		if a>>8 < 255 {
			return false
		}
	}
	return true
}

func colOpaque(img image.Image, x, step int) bool {
	bounds := img.Bounds()
	for y := 0; y < bounds.Dy(); y += step {
		_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
		if a>>8 < 255 {
			return false
		}
	}
	return true
}
