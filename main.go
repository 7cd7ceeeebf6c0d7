package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/thomas-ramirez/scraper-leomadeiras/config"
	"github.com/thomas-ramirez/scraper-leomadeiras/helpers"
	"github.com/thomas-ramirez/scraper-leomadeiras/internal/render"
	"github.com/thomas-ramirez/scraper-leomadeiras/logger"
	"github.com/thomas-ramirez/scraper-leomadeiras/services/cache"
	"github.com/thomas-ramirez/scraper-leomadeiras/services/filesink"
	"github.com/thomas-ramirez/scraper-leomadeiras/services/publisher"
	"github.com/thomas-ramirez/scraper-leomadeiras/services/tabular"
	"github.com/thomas-ramirez/scraper-leomadeiras/services/worker"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Str("input", cfg.InputCSV).
		Str("output", cfg.OutputCSV).
		Dur("request_delay", cfg.RequestDelay).
		Msg("Starting scraper")

	// The URL list is validated before anything else runs; a missing "url"
	// column is fatal.
	urls, err := tabular.ReadURLList(cfg.InputCSV)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read URL list")
	}
	if len(urls) == 0 {
		log.Fatal().Msg("URL list has no URLs")
	}
	log.Info().Int("url_count", len(urls)).Msg("Loaded URL list")

	// Set up context with cancellation on shutdown signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	// Initialize services
	fetcher := helpers.NewFetcher(cache.New(cfg.MemcacheAddr))
	renderer := render.NewRenderer(cfg.RenderTimeout)

	sink, err := filesink.NewImageSink(cfg.ImagesDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create images directory")
	}

	var pub publisher.Publisher = publisher.Noop{}
	if cfg.RedisAddr != "" {
		pub = publisher.NewRedisPublisher(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)
		log.Info().
			Str("addr", cfg.RedisAddr).
			Str("stream", cfg.RedisStream).
			Msg("Publishing records to Redis")
	}
	defer pub.Close()

	report := helpers.NewErrorReport(cfg.OutputCSV + ".errors.log")

	// Run the batch
	w := worker.NewWorker(ctx, fetcher, renderer, sink, pub, report, cfg.RequestDelay)
	records, manifest, stats := w.Run(urls)

	if len(records) == 0 {
		log.Fatal().Msg("No products were extracted")
	}

	if err := tabular.WriteProducts(cfg.OutputCSV, records); err != nil {
		log.Fatal().Err(err).Msg("Failed to write product sheet")
	}
	if len(manifest) > 0 {
		manifestPath := cfg.OutputCSV + ".imagens.csv"
		if err := tabular.WriteManifest(manifestPath, cfg.ManifestBaseURL, manifest); err != nil {
			log.Error().Err(err).Msg("Failed to write image manifest")
		}
	}

	log.Info().
		Int("processed", stats.Processed).
		Int("failed", stats.Failed).
		Int("records", stats.Records).
		Int("images", stats.Images).
		Str("output", cfg.OutputCSV).
		Str("images_dir", cfg.ImagesDir).
		Msg("Run finished")

	byBrand := make(map[string]int)
	byDept := make(map[string]int)
	for _, r := range records {
		byBrand[r.IDMarca]++
		byDept[r.NomeDepartamento]++
	}
	for _, b := range w.Brands() {
		log.Info().Str("brand", b.Brand).Str("id", b.ID).Int("records", byBrand[b.ID]).Msg("Brand mapping")
	}
	for dept, n := range byDept {
		log.Info().Str("department", dept).Int("records", n).Msg("Department summary")
	}
}
