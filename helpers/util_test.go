package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImageFilename(t *testing.T) {
	sku, n, ok := ParseImageFilename("10045678_1.jpg")
	assert.True(t, ok)
	assert.Equal(t, "10045678", sku)
	assert.Equal(t, 1, n)

	// SKUs can carry hyphens and underscores of their own.
	sku, n, ok = ParseImageFilename("BL-9001_B_12.PNG")
	assert.True(t, ok)
	assert.Equal(t, "BL-9001_B", sku)
	assert.Equal(t, 12, n)

	_, _, ok = ParseImageFilename("notes.txt")
	assert.False(t, ok)

	_, _, ok = ParseImageFilename("semnumero.jpg")
	assert.False(t, ok)
}
