package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomas-ramirez/scraper-leomadeiras/services/publisher"
)

const productHTML = `<html><head><script type="application/ld+json">
{"@type":"Product","name":"Blusa Maria","sku":"BL-9001","brand":"Colcci",
 "offers":{"price":"129.9"}}
</script></head><body></body></html>`

type fakeFetcher struct {
	pages map[string]string
}

func (f *fakeFetcher) Fetch(url string) (io.Reader, error) {
	html, ok := f.pages[url]
	if !ok {
		return nil, errors.New("fetch failed")
	}
	return strings.NewReader(html), nil
}

type fakeRenderer struct {
	html string
	err  error
	used bool
}

func (r *fakeRenderer) Render(_ context.Context, _ string, _ []string) (string, error) {
	r.used = true
	return r.html, r.err
}

type fakeSaver struct{}

func (fakeSaver) SaveAll(sku string, urls []string) []string {
	saved := make([]string, 0, len(urls))
	for i := range urls {
		saved = append(saved, fmt.Sprintf("%s_%d.jpg", sku, i+1))
	}
	return saved
}

func TestRun(t *testing.T) {
	url := "https://www.colcci.com.br/blusa-maria"
	fetcher := &fakeFetcher{pages: map[string]string{url: productHTML}}

	w := NewWorker(context.Background(), fetcher, nil, fakeSaver{}, publisher.Noop{}, nil, 0)
	records, manifest, stats := w.Run([]string{url})

	require.NotEmpty(t, records)
	assert.Equal(t, "Blusa Maria", records[0].NomeProduto)
	assert.Equal(t, "129.90", records[0].Preco)
	assert.Equal(t, "BL-9001", records[0].IDProduto)
	assert.Empty(t, manifest)
	assert.Equal(t, 1, stats.Processed)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, len(records), stats.Records)
}

func TestRunContinuesPastFailures(t *testing.T) {
	good := "https://www.colcci.com.br/blusa-maria"
	bad := "https://www.colcci.com.br/nao-existe"
	fetcher := &fakeFetcher{pages: map[string]string{good: productHTML}}

	w := NewWorker(context.Background(), fetcher, nil, nil, publisher.Noop{}, nil, 0)
	records, _, stats := w.Run([]string{bad, good})

	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 1, stats.Failed)
	require.NotEmpty(t, records)
	assert.Equal(t, "Blusa Maria", records[0].NomeProduto)
}

func TestRenderFallsBackToStaticFetch(t *testing.T) {
	// Leo Madeiras profiles render first; a render failure must not lose the
	// product when the static fetch works.
	url := "https://www.leomadeiras.com.br/p/10045678/painel-mdf"
	fetcher := &fakeFetcher{pages: map[string]string{url: `<html><head><script type="application/ld+json">
		{"@type":"Product","name":"Painel MDF","sku":"10045678"}
	</script></head><body></body></html>`}}
	renderer := &fakeRenderer{err: errors.New("chrome crashed")}

	w := NewWorker(context.Background(), fetcher, renderer, nil, publisher.Noop{}, nil, 0)
	records, _, stats := w.Run([]string{url})

	assert.True(t, renderer.used)
	assert.Equal(t, 0, stats.Failed)
	require.NotEmpty(t, records)
	assert.Equal(t, "Painel MDF", records[0].NomeProduto)
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := &fakeFetcher{pages: map[string]string{}}
	w := NewWorker(ctx, fetcher, nil, nil, publisher.Noop{}, nil, time.Second)
	_, _, stats := w.Run([]string{"https://www.example.com/a", "https://www.example.com/b"})

	assert.Equal(t, 0, stats.Processed)
}

func TestManifestEntriesFollowSavedImages(t *testing.T) {
	url := "https://www.colcci.com.br/blusa-maria"
	html := `<html><head><script type="application/ld+json">
	{"@type":"Product","name":"Blusa Maria","sku":"BL-9001"}
	</script></head><body>
	<img src="/media/BL-9001_frente.jpg">
	<img src="/media/BL-9001_verso.jpg">
	</body></html>`
	fetcher := &fakeFetcher{pages: map[string]string{url: html}}

	w := NewWorker(context.Background(), fetcher, nil, fakeSaver{}, publisher.Noop{}, nil, 0)
	_, manifest, stats := w.Run([]string{url})

	require.Len(t, manifest, 2)
	assert.Equal(t, "BL-9001", manifest[0].SKU)
	assert.Equal(t, "BL-9001_1.jpg", manifest[0].Filename)
	assert.Equal(t, 2, stats.Images)
}
