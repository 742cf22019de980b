// internal/escpos/command.go
package escpos

import "encoding/binary"

// Size selects one of the font sizes the printer firmware understands.
// The selector is stateful on the device side, so every text write
// re-emits it instead of relying on a previous call.
type Size byte

const (
	SizeSmallest Size = 0x01 // ESC ! font B
	SizeSmall    Size = 0x00 // ESC ! font A
	SizeMedium   Size = 0x20 // ESC ! double width
	SizeBig      Size = 0x30 // ESC ! double width + height
)

// COMMANDS contains the raw ESC/POS opcodes used by the renderers.
var COMMANDS = struct {
	// Basic commands
	INITIALIZE []byte

	// Text alignment
	ALIGN_LEFT   []byte
	ALIGN_CENTER []byte

	// Font size selector prefix, followed by a Size byte
	SELECT_SIZE []byte

	// Paper handling
	LINE_FEED []byte
	CUT_FULL  []byte

	// Buzzer prefix, followed by count and duration bytes
	BEEP []byte

	// Function group prefixes, followed by a little-endian length pair
	QR_FUNCTION  []byte
	RASTER_IMAGE []byte
}{
	INITIALIZE: []byte{0x1B, 0x40}, // ESC @

	ALIGN_LEFT:   []byte{0x1B, 0x61, 0x00}, // ESC a 0
	ALIGN_CENTER: []byte{0x1B, 0x61, 0x01}, // ESC a 1

	SELECT_SIZE: []byte{0x1B, 0x21}, // ESC ! + n

	LINE_FEED: []byte{0x0A},       // LF
	CUT_FULL:  []byte{0x1B, 0x69}, // ESC i

	BEEP: []byte{0x1B, 0x42}, // ESC B + n + t

	QR_FUNCTION:  []byte{0x1D, 0x28, 0x6B},       // GS ( k + pL pH
	RASTER_IMAGE: []byte{0x1D, 0x76, 0x30, 0x00}, // GS v 0 + xL xH yL yH
}

const (
	beepMin = 1
	beepMax = 9
)

// Reset restores the printer to its power-on defaults.
func Reset() []byte {
	return COMMANDS.INITIALIZE
}

// AlignLeft sets left justification for subsequent writes.
func AlignLeft() []byte {
	return COMMANDS.ALIGN_LEFT
}

// AlignCenter sets centered justification for subsequent writes.
func AlignCenter() []byte {
	return COMMANDS.ALIGN_CENTER
}

// Text emits a size selector followed by the sanitized text. The size is
// re-selected on every call; see Size.
func Text(size Size, text string) []byte {
	out := make([]byte, 0, len(COMMANDS.SELECT_SIZE)+1+len(text))
	out = append(out, COMMANDS.SELECT_SIZE...)
	out = append(out, byte(size))
	out = append(out, []byte(Sanitize(text))...)
	return out
}

// Cut performs a full paper cut.
func Cut() []byte {
	return COMMANDS.CUT_FULL
}

// Beep sounds the buzzer. Count and duration are clamped to the
// printer's supported range [1,9]; out-of-range values are never
// rejected.
func Beep(times, duration int) []byte {
	out := make([]byte, 0, len(COMMANDS.BEEP)+2)
	out = append(out, COMMANDS.BEEP...)
	out = append(out, byte(clampBeep(times)), byte(clampBeep(duration)))
	return out
}

func clampBeep(n int) int {
	if n < beepMin {
		return beepMin
	}
	if n > beepMax {
		return beepMax
	}
	return n
}

// QRBlock wraps data into the native QR printing command group: model
// select, module size, error correction, data store and print trigger.
func QRBlock(data string) []byte {
	out := make([]byte, 0, 64+len(data))
	out = append(out, qrFunction([3]byte{0x31, 0x41, 0x32}, []byte{0x00})...) // model 2
	out = append(out, qrFunction([3]byte{0x31, 0x43, 0x04}, nil)...)          // module size 4
	out = append(out, qrFunction([3]byte{0x31, 0x45, 0x30}, nil)...)          // error correction L
	out = append(out, qrFunction([3]byte{0x31, 0x50, 0x30}, []byte(data))...) // store
	out = append(out, qrFunction([3]byte{0x31, 0x51, 0x30}, nil)...)          // print
	return out
}

// qrFunction frames one GS ( k sub-command. The length pair covers the
// payload plus the fixed 3-byte function header.
func qrFunction(header [3]byte, data []byte) []byte {
	out := make([]byte, 0, len(COMMANDS.QR_FUNCTION)+2+3+len(data))
	out = append(out, COMMANDS.QR_FUNCTION...)
	out = binary.LittleEndian.AppendUint16(out, uint16(len(data)+3))
	out = append(out, header[:]...)
	out = append(out, data...)
	return out
}

// RasterImageBlock wraps a pre-packed 1-bit bitmap in the raster image
// function header. widthDots must be a multiple of 8; the bitmap is
// row-major, MSB-first, len == widthDots/8*heightDots.
func RasterImageBlock(widthDots, heightDots int, bitmap []byte) []byte {
	rowBytes := widthDots / 8
	out := make([]byte, 0, len(COMMANDS.RASTER_IMAGE)+4+len(bitmap))
	out = append(out, COMMANDS.RASTER_IMAGE...)
	out = append(out, byte(rowBytes%256), byte(rowBytes/256))
	out = append(out, byte(heightDots%256), byte(heightDots/256))
	out = append(out, bitmap...)
	return out
}
