// Package locoarith wires the predictor, plane, rle, arith, and
// container packages into a single lossless RGB encode/decode pipeline:
// split into color planes, predict and take residuals with LOCO-I/MED,
// run-length encode the residuals, then adaptive-arithmetic-code the
// result and wrap it in a fixed-layout container.
package locoarith

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cocosip/go-loco-arith/arith"
	"github.com/cocosip/go-loco-arith/container"
	"github.com/cocosip/go-loco-arith/plane"
	"github.com/cocosip/go-loco-arith/predictor"
	"github.com/cocosip/go-loco-arith/rle"
)

// ErrInvalidDimensions is returned when width or height is non-positive.
var ErrInvalidDimensions = errors.New("locoarith: width and height must be positive")

// ErrWrongChannelCount is returned when the input is not 24-bit RGB.
var ErrWrongChannelCount = errors.New("locoarith: input must be 3-channel interleaved RGB")

// ErrSizeMismatch is returned when the decoded residual byte count does
// not match 3*width*height, meaning the header and payload disagree on
// the image's dimensions.
var ErrSizeMismatch = errors.New("locoarith: decoded size does not match header")

// Encode compresses a W×H 24-bit RGB image (interleaved R,G,B byte
// order, len(rgb) == 3*w*h) into the container file format.
func Encode(rgb []byte, w, h int) ([]byte, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(rgb) != 3*w*h {
		return nil, ErrWrongChannelCount
	}

	r, g, b := plane.Split(rgb)
	resR := predictor.Forward(r, w, h)
	resG := predictor.Forward(g, w, h)
	resB := predictor.Forward(b, w, h)

	residual := make([]byte, 0, len(resR)+len(resG)+len(resB))
	residual = append(residual, resR...)
	residual = append(residual, resG...)
	residual = append(residual, resB...)

	rleBytes := rle.Encode(residual)

	arithBytes, err := arith.EncodeBytes(rleBytes)
	if err != nil {
		return nil, fmt.Errorf("locoarith: arithmetic encode: %w", err)
	}

	hdr := container.Header{
		Width:         uint32(w),
		Height:        uint32(h),
		Channels:      3,
		ResidualBytes: uint64(len(residual)),
		RLEBytes:      uint64(len(rleBytes)),
		ArithBytes:    uint64(len(arithBytes)),
	}

	var buf bytes.Buffer
	if err := container.WriteFile(&buf, hdr, arithBytes); err != nil {
		return nil, fmt.Errorf("locoarith: write container: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode, returning the reconstructed interleaved RGB
// buffer along with its width and height.
func Decode(data []byte) (rgb []byte, w, h int, err error) {
	hdr, payload, err := container.ReadFile(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("locoarith: read container: %w", err)
	}

	rleBytes, err := arith.DecodeBytes(payload, int(hdr.RLEBytes))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("locoarith: arithmetic decode: %w", err)
	}

	residual, decErr := rle.DecodeStrict(rleBytes, int(hdr.ResidualBytes))
	if decErr != nil {
		return nil, 0, 0, fmt.Errorf("locoarith: rle decode: %w", decErr)
	}

	planeLen := int(hdr.Width) * int(hdr.Height)
	if uint64(planeLen*3) != hdr.ResidualBytes {
		return nil, 0, 0, ErrSizeMismatch
	}

	resR := residual[0:planeLen]
	resG := residual[planeLen : 2*planeLen]
	resB := residual[2*planeLen : 3*planeLen]

	r := predictor.Inverse(resR, int(hdr.Width), int(hdr.Height))
	g := predictor.Inverse(resG, int(hdr.Width), int(hdr.Height))
	b := predictor.Inverse(resB, int(hdr.Width), int(hdr.Height))

	rgb = plane.Join(r, g, b)
	return rgb, int(hdr.Width), int(hdr.Height), nil
}
