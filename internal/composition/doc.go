// Package composition defines the serializable state a render consumes.
//
// CompositionState aggregates padding, inset, corner radius, shadow,
// background and output-size configuration. It round-trips through JSON:
// missing fields decode to their documented defaults and unknown fields are
// ignored, so presets written by newer versions still load.
//
// The package also carries the fixed preset tables: background gradients,
// platform output sizes, and named aspect ratios.
package composition
