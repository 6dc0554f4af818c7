// Package events publishes domain events such as order status changes and
// generated reports.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	TypeOrderCreated       = "order.created"
	TypeOrderStatusChanged = "order.status_changed"
	TypeOrderDeleted       = "order.deleted"
	TypeReportGenerated    = "report.generated"
)

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
	Close() error
}

// Event is the envelope written to every topic.
type Event struct {
	Type      string      `json:"eventType"`
	Timestamp int64       `json:"timestamp"`
	Key       string      `json:"key"`
	Data      interface{} `json:"data"`
}

type OrderStatusChange struct {
	OrderID string `json:"orderId"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// Emit marshals an Event and publishes it keyed by key.
func Emit(ctx context.Context, p Publisher, topic, eventType, key string, data interface{}) error {
	msg, err := json.Marshal(Event{
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Key:       key,
		Data:      data,
	})
	if err != nil {
		return fmt.Errorf("encode %s event: %w", eventType, err)
	}
	return p.Publish(ctx, topic, key, msg)
}

// LogPublisher writes events to the log when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, topic, key string, payload []byte) error {
	log.WithFields(log.Fields{"topic": topic, "key": key}).Info(string(payload))
	return nil
}

func (LogPublisher) Close() error { return nil }
