package detection

import (
	"image"
	"math"
)

const (
	// DefaultEdgeThreshold is the Sobel gradient magnitude (0-255 scale)
	// above which a sampled pixel counts as content.
	DefaultEdgeThreshold = 30

	// DefaultMinContentArea is the minimum number of matched sample pixels
	// required before a content box is reported.
	DefaultMinContentArea = 100
)

// DetectContentSaliency finds the bounding box of "interesting" content.
//
// The image is converted to grayscale (ITU-R BT.601 luminance) and a Sobel
// gradient magnitude is evaluated on a sampling grid of roughly 200 points
// per dimension. The bounding box of all sampled pixels whose magnitude
// exceeds edgeThreshold is accumulated along with a count of such pixels.
//
// The second return value is false when no usable content was found: either
// fewer than minContentArea pixels matched, or the accumulated box is
// degenerate. That is not an error; callers fall back to edge-trim-derived
// bounds.
func DetectContentSaliency(img image.Image, edgeThreshold, minContentArea int) (ContentBounds, bool) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w < 3 || h < 3 {
		return ContentBounds{}, false
	}

	gray := grayscale(img)

	step := maxInt(1, minInt(w, h)/200)

	minX, minY := w, h
	maxX, maxY := 0, 0
	count := 0

	for y := 0; y < h; y += step {
		for x := 0; x < w; x += step {
			if sobelMagnitude(gray, w, h, x, y) > float64(edgeThreshold) {
				count++
				minX = minInt(minX, x)
				maxX = maxInt(maxX, x)
				minY = minInt(minY, y)
				maxY = maxInt(maxY, y)
			}
		}
	}

	if count < minContentArea || maxX <= minX || maxY <= minY {
		return ContentBounds{}, false
	}

	return ContentBounds{Left: minX, Top: minY, Right: maxX, Bottom: maxY}, true
}

// grayscale converts an image to a luminance plane on a 0-255 scale using
// ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B).
func grayscale(img image.Image) []float64 {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	gray := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			gray[y*w+x] = 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
		}
	}
	return gray
}

var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// sobelMagnitude evaluates the Sobel gradient magnitude at (x, y) over a
// grayscale plane, replicating edge values at the borders.
func sobelMagnitude(gray []float64, w, h, x, y int) float64 {
	var gx, gy float64
	for ky := -1; ky <= 1; ky++ {
		for kx := -1; kx <= 1; kx++ {
			py := clamp(y+ky, 0, h-1)
			px := clamp(x+kx, 0, w-1)
			v := gray[py*w+px]
			gx += v * sobelX[ky+1][kx+1]
			gy += v * sobelY[ky+1][kx+1]
		}
	}
	return math.Sqrt(gx*gx + gy*gy)
}
