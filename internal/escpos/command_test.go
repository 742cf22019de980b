package escpos

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextEmitsSizeSelector(t *testing.T) {
	out := Text(SizeBig, "abc")

	require.True(t, bytes.HasPrefix(out, []byte{0x1B, 0x21, 0x30}))
	assert.Equal(t, []byte("abc"), out[3:])
}

func TestTextSanitizesContent(t *testing.T) {
	out := Text(SizeSmall, "Café")

	assert.Equal(t, []byte("Cafe"), out[3:])
}

func TestSizeSelectors(t *testing.T) {
	assert.Equal(t, byte(0x01), byte(SizeSmallest))
	assert.Equal(t, byte(0x00), byte(SizeSmall))
	assert.Equal(t, byte(0x20), byte(SizeMedium))
	assert.Equal(t, byte(0x30), byte(SizeBig))
}

func TestBeepClampsToSupportedRange(t *testing.T) {
	tests := []struct {
		name           string
		times, dur     int
		wantN, wantT   byte
	}{
		{"in range", 2, 4, 2, 4},
		{"above and below", 12, 0, 9, 1},
		{"negative", -3, 100, 1, 9},
		{"bounds", 1, 9, 1, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Beep(tt.times, tt.dur)
			require.Len(t, out, 4)
			assert.Equal(t, []byte{0x1B, 0x42, tt.wantN, tt.wantT}, out)
		})
	}
}

func TestCutAndReset(t *testing.T) {
	assert.Equal(t, []byte{0x1B, 0x69}, Cut())
	assert.Equal(t, []byte{0x1B, 0x40}, Reset())
}

func TestAlignment(t *testing.T) {
	assert.Equal(t, []byte{0x1B, 0x61, 0x00}, AlignLeft())
	assert.Equal(t, []byte{0x1B, 0x61, 0x01}, AlignCenter())
}

func TestQRBlockFraming(t *testing.T) {
	data := "https://example.com/consulta?p=123"
	out := QRBlock(data)

	// Split the block back into its GS ( k sub-commands.
	marker := []byte{0x1D, 0x28, 0x6B}
	var frames [][]byte
	rest := out
	for len(rest) > 0 {
		require.True(t, bytes.HasPrefix(rest, marker))
		pL := int(rest[3])
		pH := int(rest[4])
		frameLen := 3 + 2 + pL + pH*256
		require.LessOrEqual(t, frameLen, len(rest))
		frames = append(frames, rest[:frameLen])
		rest = rest[frameLen:]
	}
	require.Len(t, frames, 5)

	// Model select carries one payload byte past the function header.
	assert.Equal(t, []byte{0x1D, 0x28, 0x6B, 0x04, 0x00, 0x31, 0x41, 0x32, 0x00}, frames[0])
	// Module size and error correction have header-only payloads.
	assert.Equal(t, []byte{0x1D, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x43, 0x04}, frames[1])
	assert.Equal(t, []byte{0x1D, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x45, 0x30}, frames[2])

	// Store frame: length covers the data plus the 3-byte header.
	store := frames[3]
	wantLen := len(data) + 3
	assert.Equal(t, byte(wantLen%256), store[3])
	assert.Equal(t, byte(wantLen/256), store[4])
	assert.Equal(t, []byte{0x31, 0x50, 0x30}, store[5:8])
	assert.Equal(t, data, string(store[8:]))

	// Print trigger.
	assert.Equal(t, []byte{0x1D, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x51, 0x30}, frames[4])
}

func TestRasterImageBlockHeader(t *testing.T) {
	bitmap := make([]byte, 48/8*10)
	out := RasterImageBlock(48, 10, bitmap)

	require.True(t, bytes.HasPrefix(out, []byte{0x1D, 0x76, 0x30, 0x00}))
	assert.Equal(t, byte(6), out[4]) // xL: 48 dots = 6 bytes per row
	assert.Equal(t, byte(0), out[5]) // xH
	assert.Equal(t, byte(10), out[6]) // yL
	assert.Equal(t, byte(0), out[7]) // yH
	assert.Len(t, out, 8+len(bitmap))
}

func TestRasterImageBlockWideImage(t *testing.T) {
	// 384 dots and 300 rows exercise the multi-byte height encoding.
	bitmap := make([]byte, 384/8*300)
	out := RasterImageBlock(384, 300, bitmap)

	assert.Equal(t, byte(48), out[4])
	assert.Equal(t, byte(0), out[5])
	assert.Equal(t, byte(300%256), out[6])
	assert.Equal(t, byte(300/256), out[7])
}
