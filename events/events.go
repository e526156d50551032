// Package events publishes screening and coaching events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/streadway/amqp"
)

const (
	RoutingResumeScored    = "resume.scored"
	RoutingAnswerEvaluated = "answer.evaluated"
)

// ResumeScored is emitted after a resume is classified.
type ResumeScored struct {
	Role          string   `json:"role"`
	Selected      bool     `json:"selected"`
	Score         float64  `json:"score"`
	MissingSkills []string `json:"missing_skills"`
}

// AnswerEvaluated is emitted after an answer is scored.
type AnswerEvaluated struct {
	Question string  `json:"question"`
	Score    float64 `json:"score"`
}

// Publisher sends an event under a routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
	Close() error
}

// Noop drops every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }
func (Noop) Close() error                               { return nil }

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQP publishes JSON events to a topic exchange.
type AMQP struct {
	conn     io.Closer
	ch       channel
	exchange string
}

// DialAMQP connects to url and declares a durable topic exchange.
func DialAMQP(url, exchange string) (*AMQP, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &AMQP{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish marshals event as JSON. streadway/amqp has no context support, so ctx is
// only checked before sending.
func (a *AMQP) Publish(ctx context.Context, routingKey string, event any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	return a.ch.Publish(a.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}

// Close closes the channel and the connection, returning the first error.
func (a *AMQP) Close() error {
	err := a.ch.Close()
	if a.conn != nil {
		if connErr := a.conn.Close(); err == nil {
			err = connErr
		}
	}
	return err
}
