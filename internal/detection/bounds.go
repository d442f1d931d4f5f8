package detection

// ContentBounds is the bounding box of detected content in pixel coordinates.
//
// Invariant: Right > Left and Bottom > Top for any bounds produced by a
// detector in this package.
type ContentBounds struct {
	Left   int `json:"left"`   // Left edge (inclusive)
	Top    int `json:"top"`    // Top edge (inclusive)
	Right  int `json:"right"`  // Right edge
	Bottom int `json:"bottom"` // Bottom edge
}

// Width returns the horizontal extent of the bounds.
func (b ContentBounds) Width() int {
	return b.Right - b.Left
}

// Height returns the vertical extent of the bounds.
func (b ContentBounds) Height() int {
	return b.Bottom - b.Top
}

// Center returns the centroid of the bounds as floating-point coordinates.
func (b ContentBounds) Center() (float64, float64) {
	return float64(b.Left+b.Right) / 2, float64(b.Top+b.Bottom) / 2
}

// EdgeTrims holds per-edge trim amounts in pixels. Each value is the number
// of rows/columns measured inward from its edge that a detector classified
// as background.
type EdgeTrims struct {
	Left   int `json:"left"`
	Right  int `json:"right"`
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

// Max combines two trim sets by taking the per-edge maximum. Used to merge
// the background and transparency detectors for window captures.
func (t EdgeTrims) Max(o EdgeTrims) EdgeTrims {
	return EdgeTrims{
		Left:   maxInt(t.Left, o.Left),
		Right:  maxInt(t.Right, o.Right),
		Top:    maxInt(t.Top, o.Top),
		Bottom: maxInt(t.Bottom, o.Bottom),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
