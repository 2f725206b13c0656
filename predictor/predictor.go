// Package predictor implements the LOCO-I (MED) predictor used by
// JPEG-LS to decorrelate pixels within a single color plane.
package predictor

// Predict computes the MED (Median Edge Detector) prediction for a pixel
// given its causal neighbors:
//
//	a = left pixel (West)
//	b = top pixel (North)
//	c = top-left pixel (North-West)
//
// if c >= max(a, b) then return min(a, b)
// if c <= min(a, b) then return max(a, b)
// else return a + b - c
func Predict(a, b, c int) int {
	if c >= max(a, b) {
		return min(a, b)
	}
	if c <= min(a, b) {
		return max(a, b)
	}
	return a + b - c
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Forward computes the prediction-residual plane for one W×H byte plane,
// traversing pixels in raster order (x increasing inside each row, y
// increasing). Absent neighbors at the frame edges are treated as 0.
//
// residual[i] = (src[i] - predict(a, b, c)) mod 256, stored as an
// unsigned byte. Forward and Inverse are exact bijections: there is no
// clamping anywhere in the computation.
func Forward(src []byte, w, h int) []byte {
	res := make([]byte, len(src))
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			idx := row + x
			a, b, c := neighbors(src, w, x, y)
			pred := Predict(a, b, c)
			res[idx] = byte(int(src[idx]) - pred)
		}
	}
	return res
}

// Inverse reconstructs the original plane from its residuals. It MUST
// traverse pixels in the same raster order as Forward and use already
// reconstructed samples as neighbors, never the residuals themselves.
func Inverse(res []byte, w, h int) []byte {
	out := make([]byte, len(res))
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			idx := row + x
			a, b, c := neighbors(out, w, x, y)
			pred := Predict(a, b, c)
			out[idx] = byte(pred + int(res[idx]))
		}
	}
	return out
}

// neighbors returns (a, b, c) for the pixel at (x, y) within a plane of
// width w, already laid out in plane (reconstructed or source, depending
// on the caller). Missing neighbors at frame edges are 0, never mirrored.
func neighbors(plane []byte, w, x, y int) (a, b, c int) {
	if x > 0 {
		a = int(plane[y*w+x-1])
	}
	if y > 0 {
		b = int(plane[(y-1)*w+x])
	}
	if x > 0 && y > 0 {
		c = int(plane[(y-1)*w+x-1])
	}
	return a, b, c
}
