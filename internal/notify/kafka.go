// Package notify publishes payment receipts to downstream consumers.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
	"github.com/goodnatureofminers/arena-wallet-backend/pkg/batcher"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	DefaultBatchSize     = 50
	DefaultFlushInterval = time.Second
)

// KafkaConfig configures the receipt topic.
type KafkaConfig struct {
	Brokers       []string
	Topic         string
	BatchSize     int
	FlushInterval time.Duration
}

// NewKafkaWriter builds a writer keyed by transaction id.
func NewKafkaWriter(cfg KafkaConfig) (*kafka.Writer, error) {
	if len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, fmt.Errorf("%w: kafka brokers and topic are required", model.ErrConfiguration)
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		RequiredAcks:           kafka.RequireAll,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}, nil
}

// KafkaPublisher batches receipts into Kafka messages.
type KafkaPublisher struct {
	writer  MessageWriter
	batcher *batcher.Batcher[kafka.Message]
	logger  *zap.Logger
}

// NewKafkaPublisher wraps writer with a batcher. Start must be called before Publish.
func NewKafkaPublisher(writer MessageWriter, cfg KafkaConfig, logger *zap.Logger) *KafkaPublisher {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultFlushInterval
	}
	logger = logger.Named("receipt_publisher")
	return &KafkaPublisher{
		writer: writer,
		batcher: batcher.New[kafka.Message](
			logger.Named("batcher"),
			func(ctx context.Context, msgs []kafka.Message) error {
				return writer.WriteMessages(ctx, msgs...)
			},
			batcher.Config{Size: cfg.BatchSize, Interval: cfg.FlushInterval},
		),
		logger: logger,
	}
}

// Start runs the flushing loop until ctx is done or Close is called.
func (p *KafkaPublisher) Start(ctx context.Context) {
	p.batcher.Start(ctx)
}

// Publish queues a receipt; delivery errors are logged by the flushing loop.
func (p *KafkaPublisher) Publish(ctx context.Context, receipt model.Receipt) error {
	value, err := json.Marshal(receipt)
	if err != nil {
		return fmt.Errorf("marshal receipt: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(receipt.TxID),
		Value: value,
		Time:  receipt.Timestamp,
	}
	if err := p.batcher.Add(ctx, msg); err != nil {
		return fmt.Errorf("queue receipt %s: %w", receipt.TxID, err)
	}
	p.logger.Debug("receipt queued", zap.String("tx_id", receipt.TxID))
	return nil
}

// Close flushes buffered receipts and closes the writer.
func (p *KafkaPublisher) Close() error {
	p.batcher.Stop()
	if err := p.writer.Close(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("close kafka writer: %w", err)
	}
	return nil
}
