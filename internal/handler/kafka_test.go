package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/config"
	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/internal/events"
	mocks "github.com/SergeyBogomolovv/chef-market/internal/handler/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeReader replays fetch results in order, then reports io.EOF.
type fakeReader struct {
	results   []fetchResult
	committed []kafka.Message
	closed    bool
}

type fetchResult struct {
	msg kafka.Message
	err error
}

func (r *fakeReader) FetchMessage(context.Context) (kafka.Message, error) {
	if len(r.results) == 0 {
		return kafka.Message{}, io.EOF
	}
	res := r.results[0]
	r.results = r.results[1:]
	return res.msg, res.err
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

type fakeWriter struct {
	written []kafka.Message
	err     error
	closed  bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func statusMessage(t *testing.T, offset int64, change entities.StatusChange) kafka.Message {
	t.Helper()
	data, err := events.Encode(change)
	require.NoError(t, err)
	return kafka.Message{Topic: "order-status", Offset: offset, Key: []byte(change.OrderID), Value: data}
}

func TestKafkaHandler_Consume(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	change := entities.StatusChange{
		OrderID:       "o1",
		BuyerID:       "buyer-1",
		SellerID:      "5",
		From:          entities.StatusRequested,
		To:            entities.StatusPending,
		StatusVersion: 1,
		Actor:         entities.RoleSeller,
		At:            time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
	}
	broken := kafka.Message{Topic: "order-status", Offset: 2, Value: []byte(`{"order_id":`)}

	testCases := []struct {
		name          string
		results       func(t *testing.T) []fetchResult
		dlqErr        error
		mockBehavior  func(n *mocks.MockStatusNotifier)
		wantCommitted []int64
		wantDLQ       int
	}{
		{
			name: "status change is delivered",
			results: func(t *testing.T) []fetchResult {
				return []fetchResult{{msg: statusMessage(t, 1, change)}}
			},
			mockBehavior: func(n *mocks.MockStatusNotifier) {
				n.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(c entities.StatusChange) bool {
					return c.OrderID == "o1" && c.To == entities.StatusPending && c.At.Equal(change.At)
				})).Return().Once()
			},
			wantCommitted: []int64{1},
		},
		{
			name: "broken message goes to DLQ",
			results: func(*testing.T) []fetchResult {
				return []fetchResult{{msg: broken}}
			},
			mockBehavior:  func(*mocks.MockStatusNotifier) {},
			wantCommitted: []int64{2},
			wantDLQ:       1,
		},
		{
			name: "message stays uncommitted when DLQ fails",
			results: func(*testing.T) []fetchResult {
				return []fetchResult{{msg: broken}}
			},
			dlqErr:       errors.New("broker down"),
			mockBehavior: func(*mocks.MockStatusNotifier) {},
		},
		{
			name: "fetch error is skipped",
			results: func(t *testing.T) []fetchResult {
				return []fetchResult{
					{err: errors.New("rebalance in progress")},
					{msg: statusMessage(t, 3, change)},
				}
			},
			mockBehavior: func(n *mocks.MockStatusNotifier) {
				n.EXPECT().Notify(mock.Anything, mock.Anything).Return().Once()
			},
			wantCommitted: []int64{3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			notifier := mocks.NewMockStatusNotifier(t)
			tc.mockBehavior(notifier)

			reader := &fakeReader{results: tc.results(t)}
			dlq := &fakeWriter{err: tc.dlqErr}
			h := newKafkaHandler(logger, reader, dlq, notifier)

			h.Consume(context.Background())

			var committed []int64
			for _, m := range reader.committed {
				committed = append(committed, m.Offset)
			}
			assert.Equal(t, tc.wantCommitted, committed)

			require.Len(t, dlq.written, tc.wantDLQ)
			for _, m := range dlq.written {
				assert.Equal(t, "order-status-dlq", m.Topic)
			}

			require.NoError(t, h.Close())
			assert.True(t, reader.closed)
			assert.True(t, dlq.closed)
		})
	}
}

func TestReaderConfig_StartsAtTail(t *testing.T) {
	cfg := readerConfig(config.Kafka{
		Brokers:       []string{"localhost:9092"},
		GroupID:       "chef-market-pod-1",
		Topic:         "order-status",
		ReaderMaxWait: time.Second,
	})

	assert.Equal(t, kafka.LastOffset, cfg.StartOffset)
	assert.Equal(t, "chef-market-pod-1", cfg.GroupID)
	assert.Equal(t, "order-status", cfg.Topic)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Brokers)
}
