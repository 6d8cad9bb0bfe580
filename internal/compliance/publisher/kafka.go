// Package publisher forwards violation changes to Kafka for reporting and
// incident workflows.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"worktime/internal/compliance/models"
)

// Producer is the slice of *kgo.Client the publisher needs.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// Kafka publishes one record per change, keyed by employee so a consumer
// sees an employee's changes in order.
type Kafka struct {
	producer Producer
	topic    string
}

func NewKafka(producer Producer, topic string) *Kafka {
	return &Kafka{producer: producer, topic: topic}
}

func (k *Kafka) Publish(ctx context.Context, changes []models.ViolationChange) error {
	records := make([]*kgo.Record, 0, len(changes))
	for _, c := range changes {
		value, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshal violation change: %w", err)
		}
		records = append(records, &kgo.Record{
			Topic: k.topic,
			Key:   []byte(c.EmployeeID.String()),
			Value: value,
			Headers: []kgo.RecordHeader{
				{Key: "kind", Value: []byte(c.Kind)},
				{Key: "company_id", Value: []byte(c.CompanyID.String())},
			},
		})
	}
	if err := k.producer.ProduceSync(ctx, records...).FirstErr(); err != nil {
		return fmt.Errorf("produce violation changes: %w", err)
	}
	return nil
}
