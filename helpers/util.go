package helpers

import (
	"regexp"
	"strconv"
)

// imageFilename matches saved product images: "{sku}_{n}.{ext}". SKUs may
// themselves contain underscores, so the number is anchored to the last one.
var imageFilename = regexp.MustCompile(`(?i)^(.+)_(\d+)\.(jpg|jpeg|png)$`)

// ParseImageFilename splits a saved image filename into its SKU and image
// number. ok is false for files that do not follow the pattern.
func ParseImageFilename(name string) (sku string, n int, ok bool) {
	m := imageFilename.FindStringSubmatch(name)
	if m == nil {
		return "", 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return m[1], n, true
}
