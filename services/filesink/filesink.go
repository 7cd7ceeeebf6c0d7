// Package filesink downloads product images to local disk.
package filesink

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thomas-ramirez/scraper-leomadeiras/logger"
	scraperErrors "github.com/thomas-ramirez/scraper-leomadeiras/pkg/errors"
)

// minImageBytes flags payloads that are almost certainly thumbnails or
// tracking pixels rather than product photos.
const minImageBytes = 1024

// ImageSink saves product images under a single directory, named
// "{sku}_{n}.jpg" in download order.
type ImageSink struct {
	dir    string
	client *http.Client
	log    *logger.Logger
}

// NewImageSink creates the target directory if needed.
func NewImageSink(dir string) (*ImageSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &ImageSink{
		dir: dir,
		// The default client follows redirects, which CDN image URLs need.
		client: &http.Client{Timeout: 30 * time.Second},
		log:    logger.ForFetcher(),
	}, nil
}

// Dir returns the directory images are saved to.
func (s *ImageSink) Dir() string {
	return s.dir
}

// SaveAll downloads the given image URLs, numbering files from 1, and
// returns the filenames that saved successfully. A failed download is
// logged and skipped; it never fails the product.
func (s *ImageSink) SaveAll(sku string, urls []string) []string {
	var saved []string
	for i, u := range urls {
		fname := fmt.Sprintf("%s_%d.jpg", sku, i+1)
		if err := s.save(u, fname); err != nil {
			s.log.Warn().Str("url", u).Err(err).Msg("Image download failed")
			continue
		}
		saved = append(saved, fname)
	}
	return saved
}

func (s *ImageSink) save(rawURL, fname string) error {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return scraperErrors.NewImage("", "failed to create request", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "image/webp,image/apng,image/*,*/*;q=0.8")
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.8")
	req.Header.Set("Accept-Encoding", "identity")

	resp, err := s.client.Do(req)
	if err != nil {
		return scraperErrors.NewImage("", "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return scraperErrors.NewImage("", fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return scraperErrors.NewImage("", "not an image: "+ct, nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return scraperErrors.NewImage("", "failed to read image body", err)
	}
	if len(data) < minImageBytes {
		return scraperErrors.NewImage("", fmt.Sprintf("image too small (%d bytes), likely a thumbnail", len(data)), nil)
	}

	return os.WriteFile(filepath.Join(s.dir, fname), data, 0644)
}
