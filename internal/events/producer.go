// Package events publishes assignment notifications to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"classsync/internal/model"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	TypeAssignmentPublished = "assignment.published"
	TypeAssignmentReminder  = "assignment.reminder"
)

type Event struct {
	Type         string           `json:"type"`
	AssignmentID uuid.UUID        `json:"assignment_id"`
	ClassID      *uuid.UUID       `json:"class_id,omitempty"`
	Title        string           `json:"title"`
	DueDate      *model.Date      `json:"due_date,omitempty"`
	DueTime      *model.TimeOfDay `json:"due_time,omitempty"`
	Urgency      string           `json:"urgency,omitempty"`
	OccurredAt   time.Time        `json:"occurred_at"`
}

func NewEvent(eventType string, a *model.Assignment, at time.Time) Event {
	return Event{
		Type:         eventType,
		AssignmentID: a.ID,
		ClassID:      a.ClassID,
		Title:        a.Title,
		DueDate:      a.DueDate,
		DueTime:      a.DueTime,
		OccurredAt:   at.UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: writer, topic: topic}
}

// Publish writes event keyed by assignment id so all events of one
// assignment land on the same partition.
func (p *Producer) Publish(ctx context.Context, event Event) error {
	msgBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.AssignmentID.String()),
		Value: msgBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// Discard drops every event; used when no brokers are configured.
type Discard struct{}

func (Discard) Publish(context.Context, Event) error { return nil }
