// Command status-generator walks fake orders through their lifecycle and
// publishes every change to Kafka. Useful to watch order streams locally.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/internal/events"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var happyPath = []entities.Status{
	entities.StatusPending,
	entities.StatusReady,
	entities.StatusCompleted,
}

type fakeOrder struct {
	change entities.StatusChange
	step   int
}

func newFakeOrder(orderID, buyerID string) *fakeOrder {
	return &fakeOrder{change: entities.StatusChange{
		OrderID:  orderID,
		BuyerID:  buyerID,
		SellerID: "chef-" + uuid.NewString()[:8],
		To:       entities.StatusRequested,
		Actor:    entities.RoleBuyer,
		At:       time.Now(),
	}}
}

// next returns the following change, false once the order is terminal.
func (o *fakeOrder) next() (entities.StatusChange, bool) {
	if o.change.To.IsTerminal() {
		return entities.StatusChange{}, false
	}

	c := o.change
	c.From = c.To
	c.StatusVersion++
	c.At = time.Now()
	c.Actor = entities.RoleSeller

	switch {
	case o.step == 0 && rand.Intn(5) == 0:
		c.To = entities.StatusRejected
	case o.step == 1 && rand.Intn(10) == 0:
		c.To = entities.StatusCancelled
		c.Actor = entities.RoleBuyer
	default:
		c.To = happyPath[o.step]
	}
	if c.To == entities.StatusCompleted {
		c.Actor = entities.RoleBuyer
	}

	o.step++
	o.change = c
	return c, true
}

func main() {
	brokers := flag.String("broker", "localhost:9092", "kafka broker")
	topic := flag.String("topic", "order-status", "status topic")
	orderID := flag.String("order", "", "order id to drive, random when empty")
	buyerID := flag.String("buyer", "buyer-1", "buyer id")
	interval := flag.Duration("interval", 2*time.Second, "delay between changes")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:     kafka.TCP(*brokers),
		Topic:    *topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	id := *orderID
	if id == "" {
		id = uuid.NewString()
	}
	order := newFakeOrder(id, *buyerID)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			change, ok := order.next()
			if !ok {
				if *orderID != "" {
					return
				}
				order = newFakeOrder(uuid.NewString(), *buyerID)
				continue
			}
			data, err := events.Encode(change)
			if err != nil {
				log.Fatal(err)
			}
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(change.OrderID), Value: data}); err != nil {
				log.Println("write failed:", err)
				continue
			}
			log.Printf("order %s: %s -> %s", change.OrderID, change.From, change.To)
		case <-ctx.Done():
			return
		}
	}
}
