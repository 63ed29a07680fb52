// Package mailer publishes outgoing email events to a message broker.
// A separate delivery worker owns the SMTP conversation; this side only
// records what should be sent.
package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/codepioneers/recruiting/internal/models"
)

const (
	defaultTopic        = "recruiting.emails"
	defaultWriteTimeout = 5 * time.Second
)

// Mailer is implemented by the kafka producer and a noop used when no
// brokers are configured
type Mailer interface {
	// SendTempPassword mails the auto-generated signup password
	SendTempPassword(ctx context.Context, user models.User, tempPassword string) error

	// SendApplicationStatus notifies the applicant about a status change
	SendApplicationStatus(ctx context.Context, email string, fullName string, jobTitle string, status models.ApplicationStatus) error

	Close() error
}

type emailEvent struct {
	Kind         string `json:"kind"`
	To           string `json:"to"`
	Username     string `json:"username,omitempty"`
	TempPassword string `json:"tempPassword,omitempty"`
	FullName     string `json:"fullName,omitempty"`
	JobTitle     string `json:"jobTitle,omitempty"`
	Status       string `json:"status,omitempty"`
}

type Config struct {
	Brokers []string

	// Topic the email events are written to, defaults when empty
	Topic string
}

type KafkaMailer struct {
	writer *kafka.Writer
}

// New builds the kafka backed mailer, or the noop one when no brokers are
// configured so local runs work without a broker.
func New(cfg Config) Mailer {
	if len(cfg.Brokers) == 0 {
		return NoOpMailer{}
	}

	topic := cfg.Topic
	if topic == "" {
		topic = defaultTopic
	}

	return &KafkaMailer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: defaultWriteTimeout,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (m *KafkaMailer) SendTempPassword(ctx context.Context, user models.User, tempPassword string) error {
	return m.publish(ctx, user.Email, emailEvent{
		Kind:         "tempPassword",
		To:           user.Email,
		Username:     user.Username,
		TempPassword: tempPassword,
	})
}

func (m *KafkaMailer) SendApplicationStatus(ctx context.Context, email string, fullName string, jobTitle string, status models.ApplicationStatus) error {
	return m.publish(ctx, email, emailEvent{
		Kind:     "applicationStatus",
		To:       email,
		FullName: fullName,
		JobTitle: jobTitle,
		Status:   string(status),
	})
}

func (m *KafkaMailer) publish(ctx context.Context, key string, event emailEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("mailer: marshal event. Err: %w", err)
	}

	err = m.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("mailer: write event. Err: %w", err)
	}

	return nil
}

func (m *KafkaMailer) Close() error {
	return m.writer.Close()
}

// NoOpMailer drops every event
type NoOpMailer struct{}

func (NoOpMailer) SendTempPassword(context.Context, models.User, string) error { return nil }
func (NoOpMailer) SendApplicationStatus(context.Context, string, string, string, models.ApplicationStatus) error {
	return nil
}
func (NoOpMailer) Close() error { return nil }
