package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

type BookingEvent struct {
	Type           string `json:"type"`
	BookingID      int64  `json:"booking_id"`
	Token          string `json:"token"`
	FlightID       int64  `json:"flight_id"`
	SeatClass      string `json:"seat_class"`
	SeatNumber     int    `json:"seat_number"`
	PassengerEmail string `json:"passenger_email"`
	Status         string `json:"status"`
	FareCents      int64  `json:"fare_cents"`
}

type RoleChangeEvent struct {
	Type         string `json:"type"`
	ActorID      int64  `json:"actor_id"`
	TargetUserID int64  `json:"target_user_id"`
	RoleID       int64  `json:"role_id"`
	Email        string `json:"email"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
