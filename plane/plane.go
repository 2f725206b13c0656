// Package plane converts between interleaved RGB pixel buffers and
// separate per-channel planar buffers, matching the R,G,B ordering the
// container and predictor stages expect.
package plane

// Split splits an interleaved RGB buffer (byte order R,G,B per pixel)
// into three N-byte planes, one per channel, in R,G,B order. len(rgb)
// must be a multiple of 3.
func Split(rgb []byte) (r, g, b []byte) {
	n := len(rgb) / 3
	r = make([]byte, n)
	g = make([]byte, n)
	b = make([]byte, n)
	for i := 0; i < n; i++ {
		off := i * 3
		r[i] = rgb[off]
		g[i] = rgb[off+1]
		b[i] = rgb[off+2]
	}
	return r, g, b
}

// Join is the inverse of Split: it interleaves three equal-length planes
// back into a single R,G,B-per-pixel buffer.
func Join(r, g, b []byte) []byte {
	n := len(r)
	rgb := make([]byte, n*3)
	for i := 0; i < n; i++ {
		off := i * 3
		rgb[off] = r[i]
		rgb[off+1] = g[i]
		rgb[off+2] = b[i]
	}
	return rgb
}
