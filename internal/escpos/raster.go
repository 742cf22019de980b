// internal/escpos/raster.go
package escpos

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

const (
	// DefaultMaxWidthDots is the printable dot width of an 80mm head.
	DefaultMaxWidthDots = 384

	// DefaultThreshold is the grayscale cutoff for binarization; pixels
	// darker than this print black.
	DefaultThreshold = 128
)

// EncodeImage converts a decoded pixel grid into a 1-bit, width-padded
// raster image block. The image is converted to grayscale, scaled down
// to maxWidthDots preserving aspect ratio, stretched to the next
// multiple of 8 dots so rows are byte-aligned, then thresholded into a
// row-major, MSB-first packed bitmap.
func EncodeImage(img image.Image, maxWidthDots int, threshold uint8) []byte {
	if img == nil {
		return nil
	}
	if maxWidthDots <= 0 {
		maxWidthDots = DefaultMaxWidthDots
	}

	gray := toGray(img)

	width := gray.Bounds().Dx()
	height := gray.Bounds().Dy()
	if width == 0 || height == 0 {
		return nil
	}

	if width > maxWidthDots {
		height = height * maxWidthDots / width
		if height < 1 {
			height = 1
		}
		width = maxWidthDots
	}

	if padded := (width + 7) / 8 * 8; padded != width || width != gray.Bounds().Dx() {
		gray = scaleGray(gray, padded, height)
		width = padded
	}

	rowBytes := width / 8
	bitmap := make([]byte, rowBytes*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if gray.GrayAt(x, y).Y < threshold {
				bitmap[y*rowBytes+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}

	return RasterImageBlock(width, height, bitmap)
}

// LoadLogo reads and encodes an optional logo image. A missing path,
// unreadable file or undecodable image yields nil: the logo is never
// required for a document to print.
func LoadLogo(path string, maxWidthDots int) []byte {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil
	}

	return EncodeImage(img, maxWidthDots, DefaultThreshold)
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(g, g.Bounds(), img, b.Min, xdraw.Src)
	return g
}

func scaleGray(src *image.Gray, width, height int) *image.Gray {
	if src.Bounds().Dx() == width && src.Bounds().Dy() == height {
		return src
	}
	dst := image.NewGray(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
