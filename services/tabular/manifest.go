package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ordinalLabels name an image's position within its SKU group; past the
// fifth, a numeric ordinal takes over.
var ordinalLabels = []string{"primeira", "segunda", "terceira", "quarta", "quinta"}

// ManifestEntry is one saved image: the SKU it belongs to and its filename
// on disk.
type ManifestEntry struct {
	SKU      string
	Filename string
}

// OrdinalLabel returns the label for the i-th image of a SKU.
func OrdinalLabel(i int) string {
	if i < len(ordinalLabels) {
		return ordinalLabels[i]
	}
	return fmt.Sprintf("%dª", i+1)
}

// WriteManifest groups entries by SKU, preserving first-seen order, and
// writes one row per image. The first image of each SKU is the main one;
// URLs are the base URL joined with the filename.
func WriteManifest(path, baseURL string, entries []ManifestEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"_IDSKU", "IsMain", "Label", "Name", "url"}); err != nil {
		return err
	}

	var skuOrder []string
	grouped := map[string][]ManifestEntry{}
	for _, e := range entries {
		if _, ok := grouped[e.SKU]; !ok {
			skuOrder = append(skuOrder, e.SKU)
		}
		grouped[e.SKU] = append(grouped[e.SKU], e)
	}

	for _, sku := range skuOrder {
		for i, e := range grouped[sku] {
			isMain := "False"
			if i == 0 {
				isMain = "True"
			}
			label := OrdinalLabel(i)
			row := []string{sku, isMain, label, label, baseURL + e.Filename}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}
