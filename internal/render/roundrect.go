package render

import (
	"image"
	"image/color"
	"math"
)

// clampRadius limits a corner radius to half the shorter side, the largest
// value at which the four corner arcs still fit.
func clampRadius(radius float64, w, h int) float64 {
	limit := float64(minInt(w, h)) / 2
	if radius > limit {
		return limit
	}
	if radius < 0 {
		return 0
	}
	return radius
}

// fillRoundedRect rasterizes a filled, anti-aliased rounded rectangle into
// an alpha mask. Pixels outside rect stay untouched. Coverage along the
// corner arcs is approximated from the pixel center's signed distance to
// the corner circle, which keeps edges smooth at one-pixel cost.
func fillRoundedRect(dst *image.Alpha, rect image.Rectangle, radius float64) {
	w := rect.Dx()
	h := rect.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	r := clampRadius(radius, w, h)

	for y := 0; y < h; y++ {
		py := float64(y) + 0.5
		// Vertical distance into the corner region, 0 along the straight edges.
		dy := math.Max(r-py, py-(float64(h)-r))
		for x := 0; x < w; x++ {
			px := float64(x) + 0.5
			dx := math.Max(r-px, px-(float64(w)-r))

			var coverage float64
			if dx > 0 && dy > 0 {
				d := math.Hypot(dx, dy)
				coverage = math.Min(1, math.Max(0, r+0.5-d))
			} else {
				coverage = 1
			}
			if coverage > 0 {
				dst.SetAlpha(rect.Min.X+x, rect.Min.Y+y, colorAlpha(coverage))
			}
		}
	}
}

// roundedRectMask builds a w x h alpha mask containing a filled rounded
// rectangle spanning the whole mask.
func roundedRectMask(w, h int, radius float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	fillRoundedRect(mask, mask.Bounds(), radius)
	return mask
}

func colorAlpha(coverage float64) color.Alpha {
	return color.Alpha{A: uint8(coverage*255 + 0.5)}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
