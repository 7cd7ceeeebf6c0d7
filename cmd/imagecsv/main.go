// Command imagecsv scans a directory of downloaded product images named
// "{sku}_{n}.jpg" and writes the image manifest the import pipeline consumes.
package main

import (
	"flag"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"github.com/thomas-ramirez/scraper-leomadeiras/config"
	"github.com/thomas-ramirez/scraper-leomadeiras/helpers"
	"github.com/thomas-ramirez/scraper-leomadeiras/logger"
	"github.com/thomas-ramirez/scraper-leomadeiras/services/tabular"
)

func main() {
	godotenv.Load()
	logger.Init()
	log := logger.Default

	cfg := config.LoadConfig()
	dir := flag.String("dir", cfg.ImagesDir, "directory holding the downloaded images")
	out := flag.String("out", "imagens.csv", "manifest CSV path")
	baseURL := flag.String("base-url", cfg.ManifestBaseURL, "base URL prepended to each filename")
	flag.Parse()

	entries, err := scanImages(*dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", *dir).Msg("Failed to scan images directory")
	}
	if len(entries) == 0 {
		log.Fatal().Str("dir", *dir).Msg("No product images found")
	}

	if err := tabular.WriteManifest(*out, *baseURL, entries); err != nil {
		log.Fatal().Err(err).Msg("Failed to write manifest")
	}

	log.Info().
		Int("images", len(entries)).
		Str("manifest", *out).
		Msg("Manifest written")
}

// scanImages collects manifest entries from dir, grouped by SKU and ordered
// by image number within each SKU.
func scanImages(dir string) ([]tabular.ManifestEntry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	type image struct {
		sku   string
		n     int
		fname string
	}
	var images []image
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		sku, n, ok := helpers.ParseImageFilename(f.Name())
		if !ok {
			continue
		}
		images = append(images, image{sku: sku, n: n, fname: f.Name()})
	}

	sort.Slice(images, func(i, j int) bool {
		if images[i].sku != images[j].sku {
			return images[i].sku < images[j].sku
		}
		return images[i].n < images[j].n
	})

	entries := make([]tabular.ManifestEntry, 0, len(images))
	for _, img := range images {
		entries = append(entries, tabular.ManifestEntry{SKU: img.sku, Filename: img.fname})
	}
	return entries, nil
}
