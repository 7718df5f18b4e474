// Package imaging bridges decoded image files and the bright point detector.
//
// It loads and caches images, flattens them into the row-major RGBA buffer
// the detector consumes, and renders detector output back into images for
// inspection. All operations work with standard Go image.Image types and use
// a coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Frames
//
// PrepareFrame turns an image into a Frame: an optional region of interest
// is cropped out and optionally smoothed with a Gaussian blur, then the
// pixels are copied into a non-premultiplied RGBA buffer. A Frame records the
// origin of its region so detections can be mapped back to image coordinates.
//
// # Rendering
//
//   - Annotate: draws a square marker around each detected point, colored by
//     value or with a fixed color, and optionally labels it with its value.
//   - RenderSignal: encodes the background-subtracted signal as grayscale.
//
// Both return base64-encoded PNG data.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The remaining functions are
// stateless and can be called concurrently on different images.
package imaging
