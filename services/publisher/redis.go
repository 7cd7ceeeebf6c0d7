package publisher

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/thomas-ramirez/scraper-leomadeiras/internal/record"
	"github.com/thomas-ramirez/scraper-leomadeiras/logger"
)

// streamMaxLength caps the stream so an unattended consumer cannot grow it
// without bound.
const streamMaxLength = 10000

// RedisPublisher implements Publisher using a Redis stream
type RedisPublisher struct {
	client *redis.Client
	ctx    context.Context
	stream string
	log    *logger.Logger
}

// NewRedisPublisher creates a new Redis publisher targeting one stream
func NewRedisPublisher(ctx context.Context, addr string, db int, stream string) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	return &RedisPublisher{
		client: client,
		ctx:    ctx,
		stream: stream,
		log:    logger.ForPublisher(),
	}
}

// Publish appends one record to the stream, keyed by SKU. The record is JSON
// serialized and base64 encoded so consumers never fight Redis over UTF-8
// payload quirks.
func (p *RedisPublisher) Publish(rec record.ProductRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	encoded := base64.StdEncoding.EncodeToString(payload)

	err = p.client.XAdd(p.ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: streamMaxLength,
		Approx: true,
		Values: map[string]interface{}{
			"sku":    rec.IDSKU,
			"record": encoded,
		},
	}).Err()
	if err != nil {
		return err
	}

	p.log.Debug().Str("sku", rec.IDSKU).Str("stream", p.stream).Msg("Record published")
	return nil
}

// Close closes the Redis connection
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
