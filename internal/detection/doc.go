// Package detection analyzes screenshots to locate their real content.
//
// A raw screenshot usually carries extra material around the pixels the user
// cares about: flat desktop background, compositor drop shadows stored as
// semi-transparent padding, or rounded-corner anti-aliasing. This package
// provides the analysis passes that find that material:
//
//   - StripBorders removes fully/partially transparent capture padding
//     before any other analysis runs.
//   - DetectEdgeBackground sweeps inward from each edge looking for
//     low-variance (uniform color) bands.
//   - DetectContentSaliency computes an edge-map bounding box of the
//     "interesting" content.
//   - DetectWindowTransparency probes the alpha channel for the transparent
//     margins window captures leave around the frame.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward. Trims are measured inward
// from their edge, so a Left trim of 40 means the leftmost 40 columns are
// background.
//
// # Thread Safety
//
// Every function in this package only reads its input image and writes to
// its own private result value, so different detectors may run concurrently
// over the same (immutable) image.
package detection
