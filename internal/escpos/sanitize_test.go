package escpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsDiacritics(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Feijoada à Brasileira", "Feijoada a Brasileira"},
		{"Pão de Queijo", "Pao de Queijo"},
		{"Açaí", "Acai"},
		{"Crème Brûlée", "Creme Brulee"},
		{"João Çedilha", "Joao Cedilha"},
		{"NOТA", "NOA"}, // Cyrillic Т has no ASCII fold and is dropped
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), "input %q", tt.in)
	}
}

func TestSanitizeTransliteratesSpecials(t *testing.T) {
	assert.Equal(t, "Strasse", Sanitize("Straße"))
	assert.Equal(t, "Smorrebrod", Sanitize("Smørrebrød"))
	assert.Equal(t, "AEther", Sanitize("Æther"))
	assert.Equal(t, "Lodz", Sanitize("Łódź"))
}

func TestSanitizeKeepsControlWhitespace(t *testing.T) {
	assert.Equal(t, "a\nb\tc\r", Sanitize("a\nb\tc\r"))
}

func TestSanitizeDropsNonPrintable(t *testing.T) {
	assert.Equal(t, "ab", Sanitize("a\x00\x1Bb"))
	assert.Equal(t, "order 5", Sanitize("order \U0001F37A5"))
}

func TestSanitizeEmpty(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
}

func TestSanitizePassesASCIIUnchanged(t *testing.T) {
	in := "Table 12 / 2 UN x R$ 25.00"
	assert.Equal(t, in, Sanitize(in))
}
