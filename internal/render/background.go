package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/composure/composure/internal/composition"
	imagecache "github.com/composure/composure/internal/imaging"
)

// fallbackFill is the solid dark gray used when a background image cannot
// be loaded.
var fallbackFill = color.NRGBA{R: 0x33, G: 0x33, B: 0x38, A: 0xFF}

// radialExtent is the radial gradient radius as a fraction of the longer
// canvas dimension.
const radialExtent = 0.7

// drawBackground paints the canvas background described by cfg. It never
// fails: unknown preset ids fall back to the default preset, and a
// background image that cannot be loaded falls back to a solid fill.
func drawBackground(dst *image.NRGBA, cfg composition.BackgroundConfig, images *imagecache.ImageCache) {
	if cfg.Type == composition.BackgroundTypeImage && cfg.ImagePath != "" {
		if err := drawImageBackground(dst, cfg.ImagePath, images); err == nil {
			return
		}
		fillSolid(dst, fallbackFill)
		return
	}

	id := cfg.PresetID
	if _, ok := composition.BackgroundPresets[id]; !ok {
		id = composition.DefaultBackgroundPresetID
	}
	drawPresetBackground(dst, composition.BackgroundPresets[id])
}

// drawImageBackground renders an external image with cover-fill: scale to
// cover both canvas dimensions, then center-crop to the exact canvas size.
func drawImageBackground(dst *image.NRGBA, path string, images *imagecache.ImageCache) error {
	bg, err := images.Load(path)
	if err != nil {
		return err
	}
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	filled := imaging.Fill(bg, w, h, imaging.Center, imaging.Lanczos)
	draw.Draw(dst, dst.Bounds(), filled, image.Point{}, draw.Src)
	return nil
}

func drawPresetBackground(dst *image.NRGBA, preset composition.BackgroundPreset) {
	stops := parseStops(preset.Colors)
	switch preset.Kind {
	case composition.GradientLinear:
		fillLinearGradient(dst, stops, preset.Angle)
	case composition.GradientRadial:
		fillRadialGradient(dst, stops)
	default:
		fillSolid(dst, nrgbaOf(stops[0]))
	}
}

func fillSolid(dst *image.NRGBA, c color.NRGBA) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// fillLinearGradient paints a linear gradient whose gradient line passes
// through the canvas center at the given angle and spans the full diagonal,
// so the first and last stops land exactly on opposite corners' extents.
func fillLinearGradient(dst *image.NRGBA, stops []colorful.Color, angleDeg float64) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()

	lut := gradientLUT(stops)

	angle := angleDeg * math.Pi / 180
	dx := math.Cos(angle)
	dy := math.Sin(angle)
	length := math.Hypot(float64(w), float64(h))
	cx := float64(w) / 2
	cy := float64(h) / 2

	for y := 0; y < h; y++ {
		py := float64(y) + 0.5
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			px := float64(x) + 0.5
			proj := (px-cx)*dx + (py-cy)*dy
			t := proj/length + 0.5
			c := lut[lutIndex(t)]
			i := x * 4
			row[i] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = 0xFF
		}
	}
}

// fillRadialGradient paints a center-out radial gradient with radius
// radialExtent times the longer canvas dimension.
func fillRadialGradient(dst *image.NRGBA, stops []colorful.Color) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()

	lut := gradientLUT(stops)

	cx := float64(w) / 2
	cy := float64(h) / 2
	radius := radialExtent * float64(maxInt(w, h))

	for y := 0; y < h; y++ {
		py := float64(y) + 0.5
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			px := float64(x) + 0.5
			t := math.Hypot(px-cx, py-cy) / radius
			c := lut[lutIndex(t)]
			i := x * 4
			row[i] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = 0xFF
		}
	}
}

// gradientLUT precomputes 256 evenly spaced blend samples across the stops.
// Per-pixel work then reduces to one projection and one table lookup.
func gradientLUT(stops []colorful.Color) [256]color.NRGBA {
	var lut [256]color.NRGBA
	if len(stops) == 1 {
		c := nrgbaOf(stops[0])
		for i := range lut {
			lut[i] = c
		}
		return lut
	}

	segments := len(stops) - 1
	for i := range lut {
		pos := float64(i) / 255 * float64(segments)
		seg := int(pos)
		if seg >= segments {
			seg = segments - 1
		}
		frac := pos - float64(seg)
		lut[i] = nrgbaOf(stops[seg].BlendRgb(stops[seg+1], frac))
	}
	return lut
}

func lutIndex(t float64) int {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 255
	}
	return int(t*255 + 0.5)
}

// parseStops converts hex stops to colors. A malformed entry becomes mid
// gray rather than failing the render; the preset tables are fixed so this
// only matters for user-supplied colors. Always returns at least one stop.
func parseStops(hexes []string) []colorful.Color {
	if len(hexes) == 0 {
		return []colorful.Color{{R: 0.5, G: 0.5, B: 0.5}}
	}
	stops := make([]colorful.Color, 0, len(hexes))
	for _, hx := range hexes {
		c, err := colorful.Hex(hx)
		if err != nil {
			c = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
		}
		stops = append(stops, c)
	}
	return stops
}

func nrgbaOf(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}
