package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/config"
	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/internal/events"
	"github.com/segmentio/kafka-go"
)

type StatusNotifier interface {
	Notify(ctx context.Context, change entities.StatusChange)
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	notifier StatusNotifier
}

// NewKafkaHandler consumes status change events. Every replica reads the
// full topic, so the group id is expected to be unique per instance.
func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, notifier StatusNotifier) *kafkaHandler {
	reader := kafka.NewReader(readerConfig(cfg))
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaHandler(logger, reader, dlq, notifier)
}

// readerConfig starts a new group at the tail of the topic. Streams send
// the current status on connect, so older events are never needed.
func readerConfig(cfg config.Kafka) kafka.ReaderConfig {
	return kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		GroupID:     cfg.GroupID,
		Topic:       cfg.Topic,
		MaxWait:     cfg.ReaderMaxWait,
		StartOffset: kafka.LastOffset,
	}
}

func newKafkaHandler(logger *slog.Logger, reader MessageReader, dlq MessageWriter, notifier StatusNotifier) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		notifier: notifier,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleStatusChanged(ctx, m); err != nil {
			eventsFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

			// the writer retries on its own
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleStatusChanged(ctx context.Context, m kafka.Message) error {
	eventsInProgress.Inc()
	start := time.Now()
	defer func() {
		eventsInProgress.Dec()
		eventProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	change, err := events.Decode(m.Value)
	if err != nil {
		return fmt.Errorf("invalid status event: %w", err)
	}

	h.notifier.Notify(ctx, change)
	eventsProcessed.Inc()
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
