// Package events carries order status changes over Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/config"
	"github.com/SergeyBogomolovv/chef-market/internal/entities"

	"github.com/segmentio/kafka-go"
)

type statusChanged struct {
	OrderID       string    `json:"order_id"`
	BuyerID       string    `json:"buyer_id"`
	SellerID      string    `json:"seller_id"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	StatusVersion int       `json:"status_version"`
	Actor         string    `json:"actor"`
	At            time.Time `json:"at"`
}

func Encode(c entities.StatusChange) ([]byte, error) {
	return json.Marshal(statusChanged{
		OrderID:       c.OrderID,
		BuyerID:       c.BuyerID,
		SellerID:      c.SellerID,
		From:          string(c.From),
		To:            string(c.To),
		StatusVersion: c.StatusVersion,
		Actor:         string(c.Actor),
		At:            c.At,
	})
}

func Decode(data []byte) (entities.StatusChange, error) {
	var e statusChanged
	if err := json.Unmarshal(data, &e); err != nil {
		return entities.StatusChange{}, fmt.Errorf("failed to unmarshal status event: %w", err)
	}
	if e.OrderID == "" || !entities.Status(e.To).Valid() {
		return entities.StatusChange{}, fmt.Errorf("invalid status event for order %q", e.OrderID)
	}
	return entities.StatusChange{
		OrderID:       e.OrderID,
		BuyerID:       e.BuyerID,
		SellerID:      e.SellerID,
		From:          entities.Status(e.From),
		To:            entities.Status(e.To),
		StatusVersion: e.StatusVersion,
		Actor:         entities.Role(e.Actor),
		At:            e.At,
	}, nil
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.BatchTimeout,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish keys messages by order id so one order's events stay ordered.
func (p *kafkaPublisher) Publish(ctx context.Context, c entities.StatusChange) error {
	value, err := Encode(c)
	if err != nil {
		return fmt.Errorf("failed to encode status event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(c.OrderID),
		Value: value,
		Time:  c.At,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish status event: %w", err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
