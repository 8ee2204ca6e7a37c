package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/aolabi/docpipe/internal/common"
)

type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &kafkaPublisher{writer: writer, logger: logger}
}

// Publish writes one task, keyed by document id so duplicate deliveries for
// the same document land on the same partition.
func (p *kafkaPublisher) Publish(ctx context.Context, task ExtractionTask) error {
	payload, err := EncodeTask(task)
	if err != nil {
		return common.NewAppError("TASK_ENCODE", "failed to encode extraction task", err)
	}
	msg := kafka.Message{
		Key:   []byte(task.DocID),
		Value: payload,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("task publish failed", "doc_id", task.DocID, "error", err)
		return common.NewAppError("QUEUE_UNAVAILABLE", err.Error(), common.ErrUnavailable)
	}
	p.logger.Debug("task published", "doc_id", task.DocID)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type kafkaConsumer struct {
	reader  *kafka.Reader
	handler Handler
	logger  *slog.Logger
	backoff time.Duration
}

type ConsumerConfig struct {
	Brokers      []string
	Topic        string
	GroupID      string
	RetryBackoff time.Duration
}

func NewKafkaConsumer(cfg ConsumerConfig, handler Handler, logger *slog.Logger) Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = 5 * time.Second
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	return &kafkaConsumer{
		reader:  reader,
		handler: handler,
		logger:  logger,
		backoff: cfg.RetryBackoff,
	}
}

// Run fetches and processes messages until the context is cancelled.
// Offsets are committed only after the handler reaches a safe checkpoint,
// so a crash mid-task redelivers the message to another consumer.
func (c *kafkaConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("fetch message failed", "error", err)
			continue
		}
		if err := c.process(ctx, msg); err != nil {
			return err
		}
	}
}

// process runs the handler for one message and commits on success. Transient
// handler failures are retried in place with backoff; the offset stays
// uncommitted the whole time, so a crash here also ends in redelivery.
func (c *kafkaConsumer) process(ctx context.Context, msg kafka.Message) error {
	task, err := DecodeTask(msg.Value)
	if err != nil {
		c.logger.Warn("discarding malformed task", "partition", msg.Partition, "offset", msg.Offset, "error", err)
		c.commit(ctx, msg)
		return nil
	}

	for {
		err := c.handler.HandleTask(ctx, task)
		if err == nil {
			c.commit(ctx, msg)
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.logger.Error("task handling failed, retrying", "doc_id", task.DocID, "backoff", c.backoff, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.backoff):
		}
	}
}

func (c *kafkaConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		// The task itself is done and idempotent; a redelivery after this
		// commit failure short-circuits on the terminal status.
		c.logger.Error("offset commit failed", "partition", msg.Partition, "offset", msg.Offset, "error", err)
	}
}

func (c *kafkaConsumer) Close() error {
	return c.reader.Close()
}
