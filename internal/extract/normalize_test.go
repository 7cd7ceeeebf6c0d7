package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{" a   b \n", "a b"},
		{"Furadeira\t de \n Impacto", "Furadeira de Impacto"},
		{"", ""},
		{"   ", ""},
		{"já limpo", "já limpo"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Clean(tc.input))
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{" a   b \n", "x", "", "  vários   espaços  "}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once))
	}
}

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"brazilian with thousands", "R$ 1.234,56", "1234.56"},
		{"brazilian simple", "R$ 99,90", "99.90"},
		{"no thousands separator", "R$ 1234,56", "1234.56"},
		{"international dot decimal", "R$ 1234.56", "1234.56"},
		{"bare comma decimal", "de 159,90 por", "159.90"},
		{"bare dot decimal", "price: 129.90", "129.90"},
		{"embedded in sentence", "Por apenas R$ 2.599,00 à vista", "2599.00"},
		{"no price at all", "produto sem estoque", ""},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParsePrice(tc.input))
		})
	}
}

func TestParsePriceSkipsNoiseBeforeSymbol(t *testing.T) {
	// Ratings and counts precede the actual price in page text; the
	// symbol-anchored pattern must win over earlier bare numbers.
	text := "Avaliação 4.87 · 123 vendidos · R$ 1.299,90 em até 10x"
	assert.Equal(t, "1299.90", ParsePrice(text))
}

func TestNormalizeNumber(t *testing.T) {
	assert.Equal(t, "1234.56", NormalizeNumber("1.234,56"))
	assert.Equal(t, "99.90", NormalizeNumber("99,90"))
	assert.Equal(t, "129.90", NormalizeNumber("129.9"))
	assert.Equal(t, "10.00", NormalizeNumber("10"))
	assert.Equal(t, "", NormalizeNumber("abc"))
	assert.Equal(t, "", NormalizeNumber(""))
}

func TestSlugify(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Furadeira de Impacto GSB 550", "furadeira-de-impacto-gsb-550"},
		{"Painel MDF Útil (15mm)", "painel-mdf-util-15mm"},
		{"Blusa Comfort em Crochê", "blusa-comfort-em-croche"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Slugify(tc.input))
	}
}
