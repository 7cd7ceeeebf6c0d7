// Package tabular reads the URL worklist and writes the product sheet and
// the image manifest.
package tabular

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/thomas-ramirez/scraper-leomadeiras/internal/record"
	scraperErrors "github.com/thomas-ramirez/scraper-leomadeiras/pkg/errors"
)

// utf8BOM keeps spreadsheet tools from mangling Portuguese text.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadURLList loads the input worklist. The file must carry a "url" column;
// its absence is a fatal configuration error reported before any fetch.
func ReadURLList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, scraperErrors.NewConfiguration("failed to open URL list", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, scraperErrors.NewConfiguration("failed to parse URL list", err)
	}
	if len(rows) == 0 {
		return nil, scraperErrors.NewConfiguration("URL list is empty", nil)
	}

	urlCol := -1
	for i, name := range rows[0] {
		name = strings.TrimPrefix(name, "\uFEFF")
		if strings.EqualFold(strings.TrimSpace(name), "url") {
			urlCol = i
			break
		}
	}
	if urlCol < 0 {
		return nil, scraperErrors.NewConfiguration(`URL list has no "url" column`, nil)
	}

	var urls []string
	for _, row := range rows[1:] {
		if urlCol >= len(row) {
			continue
		}
		if u := strings.TrimSpace(row[urlCol]); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// WriteProducts writes the product sheet, BOM first, one row per record.
func WriteProducts(path string, records []record.ProductRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(record.Headers()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(rec.Row()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
