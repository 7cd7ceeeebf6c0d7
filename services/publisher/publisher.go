// Package publisher pushes assembled product records to an optional
// downstream consumer. The CSV sheet is always written; publishing is an
// extra integration surface, not a replacement for it.
package publisher

import "github.com/thomas-ramirez/scraper-leomadeiras/internal/record"

// Publisher represents a service for publishing product records
type Publisher interface {
	// Publish publishes one assembled record
	Publish(rec record.ProductRecord) error

	// Close closes the publisher connection
	Close() error
}

// Noop discards records, for runs without a configured broker.
type Noop struct{}

func (Noop) Publish(record.ProductRecord) error { return nil }
func (Noop) Close() error                       { return nil }
