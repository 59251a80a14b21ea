package analytics

import (
	"context"
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/config"
	"github.com/TemirB/storefront/internal/observability"
	"github.com/TemirB/storefront/internal/pkg/pool"
	"github.com/TemirB/storefront/internal/pkg/retry"
)

//go:generate mockgen -source=kafka.go -destination=kafka_mock_test.go -package=analytics

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaPublisher hands events to a worker pool that writes them with
// retries. A full queue drops the event.
type KafkaPublisher struct {
	writer  Writer
	pool    *pool.Pool
	retry   config.Retry
	timeout time.Duration
	metrics observability.Metrics
	logger  *zap.Logger
}

func NewKafkaWriter(cfg config.Kafka) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafkago.LeastBytes{},
		BatchTimeout:           10 * time.Millisecond,
		BatchSize:              100,
		AllowAutoTopicCreation: false,
	}
}

func NewKafkaPublisher(w Writer, workers int, policy config.Retry, metrics observability.Metrics, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer:  w,
		pool:    pool.New(workers),
		retry:   policy,
		timeout: 5 * time.Second,
		metrics: metrics,
		logger:  logger,
	}
}

func (p *KafkaPublisher) Publish(_ context.Context, e Event) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	value, err := json.Marshal(e)
	if err != nil {
		p.logger.Warn("analytics encode failed", zap.String("event", e.Name), zap.Error(err))
		return
	}
	msg := kafkago.Message{Key: []byte(e.SessionID), Value: value}

	// The request context is gone by the time a worker runs.
	ok := p.pool.TrySubmit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()
		err := retry.Do(ctx, p.retry, func() error {
			return p.writer.WriteMessages(ctx, msg)
		})
		p.metrics.ObserveAnalytics(e.Name, err == nil)
		if err != nil {
			p.logger.Warn("analytics publish failed", zap.String("event", e.Name), zap.Error(err))
		}
	})
	if !ok {
		p.metrics.ObserveAnalytics(e.Name, false)
		p.logger.Debug("analytics queue full, event dropped", zap.String("event", e.Name))
	}
}

// Close drains queued events and closes the writer.
func (p *KafkaPublisher) Close() error {
	p.pool.Close()
	return p.writer.Close()
}
