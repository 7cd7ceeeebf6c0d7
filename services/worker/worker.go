// Package worker drives the scrape run: one URL at a time, render or fetch,
// extract, download images, assemble and publish records.
package worker

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/thomas-ramirez/scraper-leomadeiras/helpers"
	"github.com/thomas-ramirez/scraper-leomadeiras/internal/extract"
	"github.com/thomas-ramirez/scraper-leomadeiras/internal/record"
	"github.com/thomas-ramirez/scraper-leomadeiras/internal/site"
	"github.com/thomas-ramirez/scraper-leomadeiras/logger"
	"github.com/thomas-ramirez/scraper-leomadeiras/services/publisher"
	"github.com/thomas-ramirez/scraper-leomadeiras/services/tabular"
)

// Fetcher retrieves a page statically.
type Fetcher interface {
	Fetch(url string) (io.Reader, error)
}

// Renderer retrieves a page through a headless browser.
type Renderer interface {
	Render(ctx context.Context, url string, waitSelectors []string) (string, error)
}

// ImageSaver persists product images and returns the saved filenames.
type ImageSaver interface {
	SaveAll(sku string, urls []string) []string
}

// Stats summarizes a run.
type Stats struct {
	Processed int
	Failed    int
	Records   int
	Images    int
}

// Worker processes a URL list sequentially. A fixed courtesy delay separates
// fetches; a failed product is logged and skipped, never aborting the batch.
type Worker struct {
	ctx       context.Context
	fetcher   Fetcher
	renderer  Renderer
	images    ImageSaver
	assembler *record.Assembler
	publisher publisher.Publisher
	report    *helpers.ErrorReport
	delay     time.Duration
	log       *logger.Logger
}

// NewWorker creates a worker. renderer, images and report may be nil; pub
// may be the no-op publisher.
func NewWorker(
	ctx context.Context,
	fetcher Fetcher,
	renderer Renderer,
	images ImageSaver,
	pub publisher.Publisher,
	report *helpers.ErrorReport,
	delay time.Duration,
) *Worker {
	return &Worker{
		ctx:       ctx,
		fetcher:   fetcher,
		renderer:  renderer,
		images:    images,
		assembler: record.NewAssembler(),
		publisher: pub,
		report:    report,
		delay:     delay,
		log:       logger.ForWorker(),
	}
}

// Brands exposes the run's brand ID assignments for the end-of-run summary.
func (w *Worker) Brands() []record.BrandID {
	return w.assembler.Brands.Mapping()
}

// Run processes every URL and returns the assembled records, the manifest
// entries for saved images and the run stats.
func (w *Worker) Run(urls []string) ([]record.ProductRecord, []tabular.ManifestEntry, Stats) {
	var (
		records  []record.ProductRecord
		manifest []tabular.ManifestEntry
		stats    Stats
	)

	for i, rawURL := range urls {
		select {
		case <-w.ctx.Done():
			w.log.Warn().Int("remaining", len(urls)-i).Msg("Run cancelled")
			return records, manifest, stats
		default:
		}

		if i > 0 && w.delay > 0 {
			time.Sleep(w.delay)
		}

		recs, entries, err := w.processURL(rawURL)
		stats.Processed++
		if err != nil {
			stats.Failed++
			w.log.Error().Str("url", rawURL).Err(err).Msg("Product failed")
			if w.report != nil {
				w.report.Record(rawURL, err)
			}
			continue
		}
		records = append(records, recs...)
		manifest = append(manifest, entries...)
		stats.Records += len(recs)
		stats.Images += len(entries)
	}
	return records, manifest, stats
}

func (w *Worker) processURL(rawURL string) ([]record.ProductRecord, []tabular.ManifestEntry, error) {
	profile := site.FindProfile(rawURL)
	siteLog := logger.ForSite(profile.Name)

	body, err := w.pageBody(rawURL, profile)
	if err != nil {
		return nil, nil, err
	}

	page, err := extract.NewPage(rawURL, body, profile)
	if err != nil {
		return nil, nil, err
	}

	fields := extract.Extract(page)
	siteLog.Info().
		Str("url", rawURL).
		Str("name", fields.Name).
		Str("sku", fields.SKU).
		Str("price", fields.Price).
		Str("name_source", fields.NameSource).
		Str("price_source", fields.PriceSource).
		Msg("Product extracted")

	var saved []string
	if w.images != nil {
		saved = w.images.SaveAll(fields.SKU, fields.Images)
	}

	records := w.assembler.Assemble(fields, rawURL, saved)
	for _, rec := range records {
		if err := w.publisher.Publish(rec); err != nil {
			siteLog.Warn().Str("sku", rec.IDSKU).Err(err).Msg("Publish failed")
		}
	}

	entries := make([]tabular.ManifestEntry, 0, len(saved))
	for _, fname := range saved {
		entries = append(entries, tabular.ManifestEntry{SKU: fields.SKU, Filename: fname})
	}
	return records, entries, nil
}

// pageBody fetches the page, rendering first when the profile asks for it.
// A render failure falls back to the static fetch instead of failing the
// product.
func (w *Worker) pageBody(rawURL string, profile *site.Profile) (io.Reader, error) {
	if profile.UseRender && w.renderer != nil {
		html, err := w.renderer.Render(w.ctx, rawURL, profile.WaitSelectors)
		if err == nil {
			return strings.NewReader(html), nil
		}
		w.log.Warn().Str("url", rawURL).Err(err).Msg("Render failed, falling back to static fetch")
	}
	return w.fetcher.Fetch(rawURL)
}
