package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"

	"github.com/composure/composure/internal/balance"
	"github.com/composure/composure/internal/composition"
	imagecache "github.com/composure/composure/internal/imaging"
)

// Renderer renders one composition: an input image plus a CompositionState.
//
// Rendering reads the state and, in balance mode, writes the computed
// insets back into state.Inset.BalancedInsetsPx so presets persist the
// values that were applied. Apart from that write-back the renderer holds
// no mutable state of its own.
type Renderer struct {
	input  image.Image
	state  *composition.CompositionState
	images *imagecache.ImageCache
}

// NewRenderer creates a renderer over an input image and state. The image
// cache serves background images; pass nil to use a private cache.
func NewRenderer(input image.Image, state *composition.CompositionState, images *imagecache.ImageCache) *Renderer {
	if images == nil {
		images = imagecache.NewImageCache()
	}
	return &Renderer{input: input, state: state, images: images}
}

// effectivePadding is the padding actually reserved around the card: the
// configured padding, grown when the shadow needs more room than that.
func (r *Renderer) effectivePadding() int {
	return maxInt(r.state.PaddingPx, shadowMargin(r.state.Shadow))
}

// card crops the input image by the configured insets. In balance mode the
// computed insets are cached back into the state when writeBack is set;
// ComputeOutputSize passes false so it stays free of side effects.
func (r *Renderer) card(writeBack bool) *image.NRGBA {
	cfg := &r.state.Inset

	var insets balance.BalancedInsets
	if cfg.Mode == composition.InsetModeBalance {
		p := balance.DefaultParams()
		p.Strength = cfg.Strength
		insets = balance.ComputeBalancedInsets(r.input, p)
		if writeBack {
			cfg.BalancedInsetsPx = composition.InsetValues{
				L: insets.Left, R: insets.Right, T: insets.Top, B: insets.Bottom,
			}
		}
	} else {
		insets = balance.ComputeManualInsets(cfg.ManualPx)
	}

	return balance.ApplyInsets(r.input, insets)
}

// ComputeOutputSize returns the canvas dimensions the current state would
// produce, without rendering and without side effects on the state.
func (r *Renderer) ComputeOutputSize() (int, int) {
	c := r.card(false)
	return r.outputSize(c.Bounds().Dx(), c.Bounds().Dy())
}

// outputSize resolves the OutputConfig against the card dimensions.
func (r *Renderer) outputSize(cardW, cardH int) (int, int) {
	out := r.state.Output
	effPad := r.effectivePadding()

	switch out.Mode {
	case composition.OutputModeFixedSize:
		return out.SizePx[0], out.SizePx[1]

	case composition.OutputModePlatform:
		if p, ok := composition.PlatformPresets[out.Platform]; ok {
			return p.Width, p.Height
		}
		return out.SizePx[0], out.SizePx[1]

	case composition.OutputModeFixedRatio:
		rw, rh := out.Ratio[0], out.Ratio[1]
		if rw <= 0 || rh <= 0 {
			break
		}
		targetRatio := float64(rw) / float64(rh)
		cardRatio := float64(cardW) / float64(cardH)
		if cardRatio > targetRatio {
			// Card is relatively wider: fix the width, derive the height.
			w := cardW + effPad*2
			return w, int(float64(w) / targetRatio)
		}
		h := cardH + effPad*2
		return int(float64(h) * targetRatio), h
	}

	// autoRatio: content-driven size.
	return cardW + effPad*2, cardH + effPad*2
}

// Render produces the fully composited RGBA canvas.
//
// Stages: crop the card, size the canvas, paint the background, draw the
// shadow layers, then composite the rounded-corner card centered in the
// padded area (contain-fit).
func (r *Renderer) Render() *image.NRGBA {
	c := r.card(true)
	cardW := c.Bounds().Dx()
	cardH := c.Bounds().Dy()

	outW, outH := r.outputSize(cardW, cardH)
	canvas := image.NewNRGBA(image.Rect(0, 0, outW, outH))

	drawBackground(canvas, r.state.Background, r.images)

	effPad := r.effectivePadding()
	availW := maxInt(1, outW-effPad*2)
	availH := maxInt(1, outH-effPad*2)

	scale := math.Min(float64(availW)/float64(cardW), float64(availH)/float64(cardH))
	drawW := maxInt(1, int(float64(cardW)*scale))
	drawH := maxInt(1, int(float64(cardH)*scale))
	drawX := (outW - drawW) / 2
	drawY := (outH - drawH) / 2

	radius := clampRadius(float64(r.state.RadiusPx), drawW, drawH)

	drawShadow(canvas, drawX, drawY, drawW, drawH, radius, r.state.Shadow)

	scaled := imaging.Resize(c, drawW, drawH, imaging.Lanczos)
	mask := roundedRectMask(drawW, drawH, radius)
	target := image.Rect(drawX, drawY, drawX+drawW, drawY+drawH)
	draw.DrawMask(canvas, target, scaled, image.Point{}, mask, image.Point{}, draw.Over)

	return canvas
}
