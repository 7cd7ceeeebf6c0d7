package helpers

import (
	"bytes"
	"fmt"
	"io"
	mathrand "math/rand"
	"net/http"
	"net/url"
	"slices"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/thomas-ramirez/scraper-leomadeiras/logger"
	scraperErrors "github.com/thomas-ramirez/scraper-leomadeiras/pkg/errors"
	"github.com/thomas-ramirez/scraper-leomadeiras/services/cache"
)

// HTTP client and header configurations
var (
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15",
	}

	// HTTP client with timeout
	client = &http.Client{
		Timeout: 30 * time.Second,
	}
)

const (
	maxRetries     = 3
	retryBaseDelay = 500 * time.Millisecond

	// cooldownTTL is how long a rate-limited domain stays on cooldown.
	cooldownTTL = 2 * time.Minute
)

// Fetcher performs static page fetches with browser-like headers, bounded
// retries and an optional per-domain cooldown cache so a rate-limited host
// is not hammered again within the same run.
type Fetcher struct {
	cooldowns cache.CacheService
	log       *logger.Logger
}

// NewFetcher creates a fetcher. The cooldown cache may be nil, in which case
// rate-limit cooldowns are not tracked.
func NewFetcher(cooldowns cache.CacheService) *Fetcher {
	return &Fetcher{
		cooldowns: cooldowns,
		log:       logger.ForFetcher(),
	}
}

// Fetch GETs rawURL and returns the body as UTF-8. Retries on 429 and 5xx
// responses with a growing delay; a 429 additionally puts the whole domain
// on cooldown.
func (f *Fetcher) Fetch(rawURL string) (io.Reader, error) {
	host := hostOf(rawURL)
	if f.onCooldown(host) {
		return nil, scraperErrors.NewRateLimit(host, cooldownTTL)
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryBaseDelay * time.Duration(attempt))
		}

		body, retryable, err := f.fetchOnce(rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
		f.log.Warn().
			Str("url", rawURL).
			Int("attempt", attempt+1).
			Err(err).
			Msg("Fetch failed, retrying")
	}
	return nil, lastErr
}

// fetchOnce performs a single request. The second return value reports
// whether the failure is worth retrying.
func (f *Fetcher) fetchOnce(rawURL string) (io.Reader, bool, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, scraperErrors.NewNetwork(hostOf(rawURL), "failed to create request", err)
	}
	setBrowserHeaders(req)

	resp, err := client.Do(req)
	if err != nil {
		return nil, true, scraperErrors.NewNetwork(hostOf(rawURL), "request failed", err)
	}
	defer resp.Body.Close()

	if slices.Contains([]int{http.StatusTooManyRequests, 430}, resp.StatusCode) {
		// Retrying right away would only dig the hole deeper; put the domain
		// on cooldown and move on.
		f.startCooldown(hostOf(rawURL))
		return nil, false, scraperErrors.NewRateLimit(hostOf(rawURL), cooldownTTL)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, true, scraperErrors.NewNetwork(hostOf(rawURL),
			fmt.Sprintf("server error: %d", resp.StatusCode), nil)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, scraperErrors.NewNetwork(hostOf(rawURL),
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, scraperErrors.NewNetwork(hostOf(rawURL), "failed to read response body", err)
	}

	body, err := toUTF8(bodyBytes, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, false, err
	}
	return body, false, nil
}

// setBrowserHeaders makes the request look like a Brazilian desktop browser
// session. Accept-Encoding is pinned to identity so bodies arrive unencoded.
func setBrowserHeaders(req *http.Request) {
	rnd := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	req.Header.Set("User-Agent", userAgents[rnd.Intn(len(userAgents))])
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7")
	req.Header.Set("Accept-Encoding", "identity")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
	req.Header.Set("Sec-Fetch-User", "?1")
}

// toUTF8 converts the body to UTF-8 based on the Content-Type header and
// body sniffing.
func toUTF8(bodyBytes []byte, contentType string) (io.Reader, error) {
	encoding, name, _ := charset.DetermineEncoding(bodyBytes, contentType)
	if name == "utf-8" || name == "UTF-8" {
		return bytes.NewReader(bodyBytes), nil
	}

	utf8Reader := encoding.NewDecoder().Reader(bytes.NewReader(bodyBytes))
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, utf8Reader); err != nil {
		return nil, scraperErrors.NewParsing("", "failed to convert body to UTF-8", err)
	}
	return &buf, nil
}

func (f *Fetcher) onCooldown(host string) bool {
	if f.cooldowns == nil || host == "" {
		return false
	}
	_, err := f.cooldowns.Get(cooldownKey(host))
	return err == nil
}

func (f *Fetcher) startCooldown(host string) {
	if f.cooldowns == nil || host == "" {
		return
	}
	if err := f.cooldowns.Set(cooldownKey(host), []byte("1"), cooldownTTL); err != nil {
		f.log.Warn().Str("host", host).Err(err).Msg("Failed to record cooldown")
	}
}

func cooldownKey(host string) string {
	return "cooldown:" + host
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
