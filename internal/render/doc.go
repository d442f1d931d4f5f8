// Package render composes the final card image onto a decorative canvas.
//
// A render is a pure function of (input image, composition state): it crops
// the input by the configured insets, sizes an output canvas, paints a
// gradient or image background, draws the blurred drop shadow, and
// composites the rounded-corner card in the center. Two renders with
// identical inputs produce byte-identical output.
//
// Recoverable resource problems (a background image that fails to load)
// never abort a render; they fall back to a solid fill.
package render
