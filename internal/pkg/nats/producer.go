package nats

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Producer handles publishing messages to NATS subjects
type Producer struct {
	conn *nats.Conn
}

// NewProducer creates a new NATS producer
func NewProducer(address string) (*Producer, error) {
	conn, err := nats.Connect(address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Producer{conn: conn}, nil
}

// NewProducerFromConn creates a producer on an existing connection
func NewProducerFromConn(conn *nats.Conn) *Producer {
	return &Producer{conn: conn}
}

// Publish marshals the message as JSON and sends it to the subject
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.conn.Publish(subject, msgBytes)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// Stop gracefully closes the NATS connection
func (p *Producer) Stop() {
	p.conn.Close()
}
