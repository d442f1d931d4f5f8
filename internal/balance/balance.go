// Package balance turns detector output into final per-edge crop insets.
//
// The balance engine fuses the three detectors in package detection into a
// single set of asymmetric insets that trim background while visually
// re-centering the content, and the inset applier performs the
// safety-clamped crop itself.
package balance

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/composure/composure/internal/detection"
)

const (
	// DefaultMargin is the minimum number of pixels kept between a computed
	// inset and the detected content on every edge.
	DefaultMargin = 16

	// DefaultUpwardBias shifts the aesthetic target center slightly above
	// the geometric center (0 = none, 1 = top edge).
	DefaultUpwardBias = 0.05
)

// BalancedInsets is the final per-edge trim in pixels produced by the
// balance engine. Values are always >= 0.
type BalancedInsets struct {
	Left   int `json:"l"`
	Right  int `json:"r"`
	Top    int `json:"t"`
	Bottom int `json:"b"`
}

// Params configures the balance engine. The zero value is not useful; start
// from DefaultParams.
type Params struct {
	// Strength scales the computed insets: 0 crops nothing, 1 applies the
	// full computed trim.
	Strength float64

	// WindowCapture enables the alpha-transparency detector, which only
	// makes sense for window captures whose compositor stores shadows as
	// transparent padding.
	WindowCapture bool

	// Margin is the minimum pixel distance kept between insets and content.
	Margin int

	// UpwardBias moves the aesthetic target center upward by this fraction
	// of half the image height.
	UpwardBias float64
}

// DefaultParams returns the engine defaults with full strength.
func DefaultParams() Params {
	return Params{
		Strength:   1.0,
		Margin:     DefaultMargin,
		UpwardBias: DefaultUpwardBias,
	}
}

// ComputeBalancedInsets computes content-aware insets for an image.
//
// The stages are:
//
//  1. Detect uniform background margins; for window captures, merge in the
//     transparency detector by per-edge maximum.
//  2. Detect the content bounding box; when saliency finds nothing, derive
//     bounds from the edge trims instead.
//  3. Clamp every trim to the "safe" value (content bound minus Margin) so
//     content is never cut into.
//  4. Re-center: when the content centroid sits off the aesthetic target
//     (image center, biased slightly upward), shift up to half the offset
//     into the trims on the far side, bounded by the remaining safe margin.
//  5. Scale all four trims by Strength, truncating toward zero.
//
// The safe-trim clamp in stage 3 is the content-preservation invariant:
// the returned insets never exceed contentBound-Margin on any edge.
func ComputeBalancedInsets(img image.Image, p Params) BalancedInsets {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	trims := detection.DetectEdgeBackground(img, detection.DefaultBandPercent, detection.DefaultVarianceThreshold)
	if p.WindowCapture && detection.HasAlphaChannel(img) {
		trims = trims.Max(detection.DetectWindowTransparency(img))
	}

	content, ok := detection.DetectContentSaliency(img, detection.DefaultEdgeThreshold, detection.DefaultMinContentArea)
	if !ok {
		content = detection.ContentBounds{
			Left:   trims.Left,
			Top:    trims.Top,
			Right:  w - trims.Right,
			Bottom: h - trims.Bottom,
		}
	}

	safeLeft := maxInt(0, content.Left-p.Margin)
	safeRight := maxInt(0, w-content.Right-p.Margin)
	safeTop := maxInt(0, content.Top-p.Margin)
	safeBottom := maxInt(0, h-content.Bottom-p.Margin)

	left := minInt(trims.Left, safeLeft)
	right := minInt(trims.Right, safeRight)
	top := minInt(trims.Top, safeTop)
	bottom := minInt(trims.Bottom, safeBottom)

	cx, cy := content.Center()
	tx := float64(w) / 2
	ty := float64(h) / 2 * (1 - p.UpwardBias)

	offsetX := cx - tx
	offsetY := cy - ty

	// Content right of target: trim more from the right, and vice versa.
	if offsetX > 0 {
		extra := minInt(int(offsetX*0.5), safeRight-right)
		right += maxInt(0, extra)
	} else {
		extra := minInt(int(-offsetX*0.5), safeLeft-left)
		left += maxInt(0, extra)
	}

	// Content below target: trim more from the bottom, and vice versa.
	if offsetY > 0 {
		extra := minInt(int(offsetY*0.5), safeBottom-bottom)
		bottom += maxInt(0, extra)
	} else {
		extra := minInt(int(-offsetY*0.5), safeTop-top)
		top += maxInt(0, extra)
	}

	return BalancedInsets{
		Left:   int(float64(left) * p.Strength),
		Right:  int(float64(right) * p.Strength),
		Top:    int(float64(top) * p.Strength),
		Bottom: int(float64(bottom) * p.Strength),
	}
}

// ComputeManualInsets returns uniform insets of insetPx on all four edges.
func ComputeManualInsets(insetPx int) BalancedInsets {
	return BalancedInsets{Left: insetPx, Right: insetPx, Top: insetPx, Bottom: insetPx}
}

// ApplyInsets crops the image by the given insets.
//
// The crop is safety-clamped: the result is never smaller than
// max(50, dimension/10) on either axis, no matter how extreme the requested
// insets are. When the combined insets on an axis exceed what the image can
// give up, both sides are scaled down proportionally until they fit.
func ApplyInsets(img image.Image, insets BalancedInsets) *image.NRGBA {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	minW := maxInt(50, w/10)
	minH := maxInt(50, h/10)

	maxHorizontal := w - minW
	maxVertical := h - minH

	left := maxInt(0, insets.Left)
	right := maxInt(0, insets.Right)
	top := maxInt(0, insets.Top)
	bottom := maxInt(0, insets.Bottom)

	// An axis already at or below the minimum size has no headroom to give;
	// its insets collapse to zero rather than entering the scale division.
	if total := left + right; total > maxHorizontal {
		if maxHorizontal <= 0 {
			left, right = 0, 0
		} else {
			scale := float64(maxHorizontal) / float64(total)
			left = int(float64(left) * scale)
			right = int(float64(right) * scale)
		}
	}
	if total := top + bottom; total > maxVertical {
		if maxVertical <= 0 {
			top, bottom = 0, 0
		} else {
			scale := float64(maxVertical) / float64(total)
			top = int(float64(top) * scale)
			bottom = int(float64(bottom) * scale)
		}
	}

	cropRight := maxInt(left+minW, w-right)
	cropBottom := maxInt(top+minH, h-bottom)

	return imaging.Crop(img, image.Rect(left, top, cropRight, cropBottom))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
