package detection

import (
	"image"

	"github.com/disintegration/imaging"
)

const (
	// opaqueThreshold selects pixels considered truly opaque content.
	// Anything at or below it (anti-aliased corners, soft shadows) is
	// treated as capture padding by the aggressive first tier.
	opaqueThreshold = 250

	// shadowThreshold selects pixels that are at least faintly visible.
	// Used by the conservative fallback tier so transparent UI surfaces
	// (e.g. terminals) keep their content.
	shadowThreshold = 50

	// minOpaqueSize is the minimum width/height the opaque box must exceed
	// before the aggressive tier is trusted.
	minOpaqueSize = 50
)

// StripBorders removes transparent capture padding from a screenshot.
//
// Screenshot tools often emit compositor drop shadows and anti-aliased
// corners as near-transparent pixels around the window. Two tiers run in
// order:
//
//  1. Crop to the bounding box of pixels with alpha > 250 when that box is
//     larger than 50x50. This aggressively discards soft shadows and corner
//     anti-aliasing.
//  2. Otherwise crop to the bounding box of pixels with alpha > 50, expanded
//     by one pixel on each side (clamped to the image), which removes only
//     the invisible padding around fully transparent surfaces.
//
// If neither tier finds a box the image is returned unchanged. The result
// is always an NRGBA image.
func StripBorders(img image.Image) *image.NRGBA {
	src := imaging.Clone(img)
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()

	// Tier 1: opaque content box.
	if box, ok := alphaBoundingBox(src, opaqueThreshold); ok {
		if box.Dx() > minOpaqueSize && box.Dy() > minOpaqueSize {
			return imaging.Crop(src, box)
		}
	}

	// Tier 2: shadow box with a 1px safety margin.
	if box, ok := alphaBoundingBox(src, shadowThreshold); ok {
		expanded := image.Rect(
			maxInt(0, box.Min.X-1),
			maxInt(0, box.Min.Y-1),
			minInt(w, box.Max.X+1),
			minInt(h, box.Max.Y+1),
		)
		return imaging.Crop(src, expanded)
	}

	return src
}

// alphaBoundingBox returns the bounding box of pixels whose alpha exceeds
// the threshold. ok is false when no pixel qualifies.
func alphaBoundingBox(img *image.NRGBA, threshold uint8) (image.Rectangle, bool) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	minX, minY := w, h
	maxX, maxY := -1, -1

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			if row[x*4+3] > threshold {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}

	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
