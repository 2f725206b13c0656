// Command locoarith is the reference driver for the LOCO-I/RLE/adaptive
// arithmetic lossless RGB codec: it reads an input image, compresses it,
// writes the compressed file, then decompresses it back out to confirm
// the round trip.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	locoarith "github.com/cocosip/go-loco-arith"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "usage: %s <input_image> <output_compressed> <output_decoded>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	inPath, compressedPath, decodedPath := os.Args[1], os.Args[2], os.Args[3]

	if err := run(inPath, compressedPath, decodedPath); err != nil {
		fmt.Fprintf(os.Stderr, "locoarith: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, compressedPath, decodedPath string) error {
	rgb, width, height, err := loadRGB(inPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inPath, err)
	}

	compressed, err := locoarith.Encode(rgb, width, height)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if err := os.WriteFile(compressedPath, compressed, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", compressedPath, err)
	}

	decodedRGB, decodedW, decodedH, err := locoarith.Decode(compressed)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	if err := saveRGBAsPNG(decodedPath, decodedRGB, decodedW, decodedH); err != nil {
		return fmt.Errorf("writing %s: %w", decodedPath, err)
	}

	fmt.Printf("%s: %dx%d, %d bytes -> %d bytes compressed (%.2fx)\n",
		inPath, width, height, len(rgb), len(compressed), float64(len(rgb))/float64(len(compressed)))
	return nil
}

// loadRGB opens path, decodes it as BMP or PNG based on its extension,
// and forces the result to 3-channel interleaved RGB regardless of the
// source image's color model.
func loadRGB(path string) ([]byte, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		img, err = bmp.Decode(f)
	case ".png":
		img, err = png.Decode(f)
	default:
		return nil, 0, 0, fmt.Errorf("unsupported image extension %q (want .bmp or .png)", filepath.Ext(path))
	}
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rgb := make([]byte, 0, w*h*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rgb = append(rgb, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}
	return rgb, w, h, nil
}

// saveRGBAsPNG writes an interleaved RGB buffer out as a lossless PNG,
// the simplest output encoder available without adding a second image
// dependency (the input side already needs BMP support).
func saveRGBAsPNG(path string, rgb []byte, w, h int) error {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := (y*w + x) * 3
			img.SetNRGBA(x, y, color.NRGBA{
				R: rgb[off],
				G: rgb[off+1],
				B: rgb[off+2],
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
