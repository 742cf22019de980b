package escpos

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatGray builds a uniform grayscale image.
func flatGray(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// rasterDims decodes width and height dots back out of the block header.
func rasterDims(t *testing.T, block []byte) (widthDots, heightDots, bodyLen int) {
	t.Helper()
	require.GreaterOrEqual(t, len(block), 8)
	require.Equal(t, []byte{0x1D, 0x76, 0x30, 0x00}, block[:4])
	rowBytes := int(block[4]) + int(block[5])*256
	heightDots = int(block[6]) + int(block[7])*256
	return rowBytes * 8, heightDots, len(block) - 8
}

func TestEncodeImageByteCount(t *testing.T) {
	// 50 dots pads to 56; body must be exactly paddedWidth/8 * height.
	block := EncodeImage(flatGray(50, 20, 0), 384, DefaultThreshold)

	width, height, bodyLen := rasterDims(t, block)
	assert.Equal(t, 56, width)
	assert.Equal(t, 20, height)
	assert.Equal(t, 56/8*20, bodyLen)
}

func TestEncodeImageAlreadyAligned(t *testing.T) {
	block := EncodeImage(flatGray(64, 8, 0), 384, DefaultThreshold)

	width, height, bodyLen := rasterDims(t, block)
	assert.Equal(t, 64, width)
	assert.Equal(t, 8, height)
	assert.Equal(t, 64/8*8, bodyLen)
}

func TestEncodeImageScalesDownWideImages(t *testing.T) {
	block := EncodeImage(flatGray(768, 100, 0), 384, DefaultThreshold)

	width, height, _ := rasterDims(t, block)
	assert.Equal(t, 384, width)
	assert.Equal(t, 50, height)
}

func TestEncodeImageThreshold(t *testing.T) {
	dark := EncodeImage(flatGray(8, 1, 0), 384, DefaultThreshold)
	light := EncodeImage(flatGray(8, 1, 255), 384, DefaultThreshold)

	assert.Equal(t, byte(0xFF), dark[8], "dark pixels set bits")
	assert.Equal(t, byte(0x00), light[8], "light pixels stay clear")
}

func TestEncodeImageMSBFirstPacking(t *testing.T) {
	// Only the leftmost pixel dark: the high bit of the row byte.
	img := image.NewGray(image.Rect(0, 0, 8, 1))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetGray(0, 0, color.Gray{Y: 0})

	block := EncodeImage(img, 384, DefaultThreshold)
	assert.Equal(t, byte(0x80), block[8])
}

func TestEncodeImageNil(t *testing.T) {
	assert.Nil(t, EncodeImage(nil, 384, DefaultThreshold))
}

func TestLoadLogoMissingFile(t *testing.T) {
	assert.Nil(t, LoadLogo("", 384))
	assert.Nil(t, LoadLogo("/nonexistent/logo.png", 384))
}
