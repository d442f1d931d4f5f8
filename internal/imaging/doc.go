// Package imaging provides image loading and caching for the composition
// pipeline.
//
// The renderer re-runs on every configuration change, so background images
// and re-opened inputs are served from an in-memory cache rather than
// decoded from disk each time. Decoded images are treated as immutable
// everywhere in this module, which is what makes sharing cached instances
// safe.
package imaging
