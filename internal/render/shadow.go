package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/blur"

	"github.com/composure/composure/internal/composition"
)

const (
	// shadowScaleMin/Max bound the strength-driven scaling of blur, offset
	// and spread: strength 0 maps to 0.8x, strength 1 to 1.4x.
	shadowScaleMin = 0.8
	shadowScaleMax = 1.4

	// shadowSafetyPad is added to the computed shadow margin so rounding in
	// the blur never clips the outermost falloff.
	shadowSafetyPad = 8

	// minVisibleOpacity is the effective opacity below which a layer is
	// skipped entirely.
	minVisibleOpacity = 0.01
)

// shadowMargin returns how much transparent margin the canvas needs so the
// configured shadow is never clipped. Zero when nothing will be drawn.
//
// Per layer the outward extent is blur/2 plus any outward spread, and the
// bottom extent additionally carries the vertical offset. The maximum over
// all visible layers is scaled by the shadow strength and padded.
func shadowMargin(cfg composition.ShadowConfig) int {
	if cfg.Strength <= 0 {
		return 0
	}

	extent := 0.0
	visible := false
	for _, l := range cfg.Layers {
		if l.Opacity*cfg.Strength < minVisibleOpacity {
			continue
		}
		visible = true
		base := l.Blur/2 + math.Max(0, -l.Spread)
		extent = math.Max(extent, base)
		extent = math.Max(extent, base+l.OffsetY)
	}
	if !visible {
		return 0
	}
	return int(math.Ceil(extent*cfg.Strength)) + shadowSafetyPad
}

// drawShadow renders every shadow layer behind the card rectangle
// (drawX, drawY, drawW, drawH). Layers are drawn in list order, so the first
// layer ends up bottom-most.
//
// Each layer is rendered the mask-blur way: rasterize the shadow's shape
// (the card's rounded rectangle adjusted by spread) into an alpha-only
// mask with enough padding for the blur, Gaussian-blur the mask, then
// composite black through it at the layer's opacity.
func drawShadow(canvas *image.NRGBA, drawX, drawY, drawW, drawH int, radius float64, cfg composition.ShadowConfig) {
	if cfg.Strength <= 0 {
		return
	}

	factor := shadowScaleMin + (shadowScaleMax-shadowScaleMin)*cfg.Strength

	for _, l := range cfg.Layers {
		opacity := l.Opacity * cfg.Strength
		if opacity < minVisibleOpacity {
			continue
		}

		effBlur := l.Blur * factor
		effOffsetY := l.OffsetY * factor
		effSpread := l.Spread * factor

		pad := int(math.Ceil(effBlur))
		spreadPx := int(math.Round(effSpread))

		shapeW := drawW + spreadPx*2
		shapeH := drawH + spreadPx*2
		if shapeW <= 0 || shapeH <= 0 {
			continue
		}

		mask := image.NewAlpha(image.Rect(0, 0, shapeW+2*pad, shapeH+2*pad))
		fillRoundedRect(mask, image.Rect(pad, pad, pad+shapeW, pad+shapeH), math.Max(0, radius+effSpread))

		var softened image.Image = mask
		if effBlur > 0 {
			softened = blur.Gaussian(mask, effBlur/2)
		}

		src := image.NewUniform(color.NRGBA{A: uint8(opacity*255 + 0.5)})
		x := drawX + spreadPx - pad
		y := drawY + spreadPx + int(math.Round(effOffsetY)) - pad
		target := image.Rect(x, y, x+mask.Bounds().Dx(), y+mask.Bounds().Dy())
		draw.DrawMask(canvas, target, src, image.Point{}, alphaChannel(softened), image.Point{}, draw.Over)
	}
}

// alphaChannel extracts an image's alpha plane as an alpha-only mask.
func alphaChannel(img image.Image) *image.Alpha {
	if a, ok := img.(*image.Alpha); ok {
		return a
	}
	bounds := img.Bounds()
	out := image.NewAlpha(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			out.SetAlpha(x, y, color.Alpha{A: uint8(a >> 8)})
		}
	}
	return out
}
