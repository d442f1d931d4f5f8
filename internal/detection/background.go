package detection

import (
	"image"
)

const (
	// DefaultBandPercent is the fraction of the image dimension used as the
	// sweep band thickness for background detection.
	DefaultBandPercent = 0.04

	// DefaultVarianceThreshold is the aggregate RGB variance above which a
	// band is considered to contain content rather than flat background.
	DefaultVarianceThreshold = 500.0

	// maxTrimFraction caps every trim at this fraction of its dimension so
	// a pathological image can never be trimmed to nothing.
	maxTrimFraction = 0.4
)

// DetectEdgeBackground finds uniform background margins around an image.
//
// For each of the four edges it sweeps a band of thickness
// max(2, dimension*bandPercent) inward in band-sized steps. At each step it
// samples pixels on a fixed stride and computes the aggregate color variance
// (sum of the per-channel R, G and B variances) over the band. The trim
// advances while the variance stays at or below varianceThreshold and stops
// at the first band that exceeds it, which is where content begins. Each
// trim is capped at 40% of its dimension.
//
// Pass DefaultBandPercent and DefaultVarianceThreshold unless you have a
// reason not to. Lower thresholds treat subtle texture as content; higher
// thresholds trim through noisy backgrounds more aggressively.
func DetectEdgeBackground(img image.Image, bandPercent, varianceThreshold float64) EdgeTrims {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w == 0 || h == 0 {
		return EdgeTrims{}
	}

	bandH := maxInt(2, int(float64(h)*bandPercent))
	bandW := maxInt(2, int(float64(w)*bandPercent))

	// Sampling stride sized so roughly 100 samples span the shorter axis.
	step := maxInt(1, minInt(w, h)/100)

	maxTrimH := int(float64(h) * maxTrimFraction)
	maxTrimW := int(float64(w) * maxTrimFraction)

	var trims EdgeTrims

	// Top
	for offset := 0; offset < maxTrimH; offset += bandH {
		v := rowBandVariance(img, offset, minInt(offset+bandH, h), step)
		if v > varianceThreshold {
			break
		}
		trims.Top = offset + bandH
	}
	trims.Top = minInt(trims.Top, maxTrimH)

	// Bottom
	for offset := 0; offset < maxTrimH; offset += bandH {
		v := rowBandVariance(img, maxInt(0, h-offset-bandH), h-offset, step)
		if v > varianceThreshold {
			break
		}
		trims.Bottom = offset + bandH
	}
	trims.Bottom = minInt(trims.Bottom, maxTrimH)

	// Left
	for offset := 0; offset < maxTrimW; offset += bandW {
		v := colBandVariance(img, offset, minInt(offset+bandW, w), step)
		if v > varianceThreshold {
			break
		}
		trims.Left = offset + bandW
	}
	trims.Left = minInt(trims.Left, maxTrimW)

	// Right
	for offset := 0; offset < maxTrimW; offset += bandW {
		v := colBandVariance(img, maxInt(0, w-offset-bandW), w-offset, step)
		if v > varianceThreshold {
			break
		}
		trims.Right = offset + bandW
	}
	trims.Right = minInt(trims.Right, maxTrimW)

	return trims
}

// rowBandVariance computes the aggregate RGB variance over a horizontal band
// [yStart, yEnd), sampling every step-th column.
func rowBandVariance(img image.Image, yStart, yEnd, step int) float64 {
	bounds := img.Bounds()
	var acc varianceAccumulator
	for y := yStart; y < yEnd; y++ {
		for x := 0; x < bounds.Dx(); x += step {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			acc.add(float64(r>>8), float64(g>>8), float64(b>>8))
		}
	}
	return acc.variance()
}

// colBandVariance computes the aggregate RGB variance over a vertical band
// [xStart, xEnd), sampling every step-th row.
func colBandVariance(img image.Image, xStart, xEnd, step int) float64 {
	bounds := img.Bounds()
	var acc varianceAccumulator
	for x := xStart; x < xEnd; x++ {
		for y := 0; y < bounds.Dy(); y += step {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			acc.add(float64(r>>8), float64(g>>8), float64(b>>8))
		}
	}
	return acc.variance()
}

// varianceAccumulator computes sum of per-channel variances in one pass
// using the running sum / sum-of-squares identity.
type varianceAccumulator struct {
	n                   float64
	sumR, sumG, sumB    float64
	sumR2, sumG2, sumB2 float64
}

func (a *varianceAccumulator) add(r, g, b float64) {
	a.n++
	a.sumR += r
	a.sumG += g
	a.sumB += b
	a.sumR2 += r * r
	a.sumG2 += g * g
	a.sumB2 += b * b
}

func (a *varianceAccumulator) variance() float64 {
	if a.n == 0 {
		return 0
	}
	meanR := a.sumR / a.n
	meanG := a.sumG / a.n
	meanB := a.sumB / a.n
	varR := a.sumR2/a.n - meanR*meanR
	varG := a.sumG2/a.n - meanG*meanG
	varB := a.sumB2/a.n - meanB*meanB
	return varR + varG + varB
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
