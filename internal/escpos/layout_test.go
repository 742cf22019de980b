package escpos

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textBody strips the leading size selector from a Text result.
func textBody(t *testing.T, out []byte) string {
	t.Helper()
	require.GreaterOrEqual(t, len(out), 3)
	require.Equal(t, byte(0x1B), out[0])
	require.Equal(t, byte(0x21), out[1])
	return string(out[3:])
}

func TestJustifyTwoColumnPadsToWidth(t *testing.T) {
	line := textBody(t, JustifyTwoColumn("Feijoada", "R$ 50.00", 48, SizeMedium))

	require.True(t, strings.HasSuffix(line, "\n"))
	body := strings.TrimSuffix(line, "\n")
	assert.Len(t, body, 48)
	assert.True(t, strings.HasPrefix(body, "Feijoada"))
	assert.True(t, strings.HasSuffix(body, "R$ 50.00"))
	assert.NotContains(t, body, "  R$ 50.00 ") // right column is flush right
}

func TestJustifyTwoColumnMinimumGap(t *testing.T) {
	left := strings.Repeat("x", 30)
	right := strings.Repeat("y", 25)

	line := strings.TrimSuffix(textBody(t, JustifyTwoColumn(left, right, 48, SizeSmall)), "\n")

	// Overflow keeps both sides intact with a single space between.
	assert.Equal(t, left+" "+right, line)
}

func TestJustifyTwoColumnMeasuresSanitizedLength(t *testing.T) {
	// "Pão" sanitizes to "Pao"; padding must be computed from the
	// three-character fold, not the UTF-8 input.
	line := strings.TrimSuffix(textBody(t, JustifyTwoColumn("Pão", "R$ 1.00", 20, SizeSmall)), "\n")

	assert.Len(t, line, 20)
	assert.Equal(t, "Pao", line[:3])
}

func TestLineTotalExactDecimals(t *testing.T) {
	assert.Equal(t, "R$ 50.00", Money("R$", LineTotal(2, 25.0)))
	assert.Equal(t, "R$ 0.30", Money("R$", LineTotal(3, 0.1)))
	assert.Equal(t, "R$ 1.05", Money("R$", LineTotal(0.5, 2.1)))
}

func TestMoneyFloat(t *testing.T) {
	assert.Equal(t, "R$ 55.00", MoneyFloat("R$", 55))
	assert.Equal(t, "R$ 0.00", MoneyFloat("R$", 0))
	assert.Equal(t, "EUR 12.35", MoneyFloat("EUR", 12.345))
}

func TestBillItemLine(t *testing.T) {
	line := strings.TrimSuffix(textBody(t, BillItemLine("Feijoada", 2, 25.0, 48, "R$")), "\n")

	assert.Len(t, line, 48)
	assert.True(t, strings.HasPrefix(line, "Feijoada / 2 UN x R$ 25.00"))
	assert.True(t, strings.HasSuffix(line, "R$ 50.00"))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "2", FormatQuantity(2))
	assert.Equal(t, "0.5", FormatQuantity(0.5))
	assert.Equal(t, "1.25", FormatQuantity(1.25))
}
