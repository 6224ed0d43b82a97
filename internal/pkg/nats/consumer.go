package nats

import (
	"fmt"

	"github.com/buslink/buslink/internal/pkg/logger"
	"github.com/nats-io/nats.go"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NATS subjects
type Consumer struct {
	conn         *nats.Conn
	subscription *nats.Subscription
	ownsConn     bool
}

// NewConsumer creates a new NATS consumer for a subject with an
// optional queue group. Handler errors are logged, not retried; core
// NATS delivery is at-most-once.
func NewConsumer(subject, queueGroup, address string, handler MessageHandler) (*Consumer, error) {
	conn, err := nats.Connect(address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	consumer := &Consumer{conn: conn, ownsConn: true}
	if err := consumer.subscribe(subject, queueGroup, handler); err != nil {
		conn.Close()
		return nil, err
	}

	return consumer, nil
}

// NewConsumerFromConn creates a consumer on an existing connection
func NewConsumerFromConn(subject, queueGroup string, conn *nats.Conn, handler MessageHandler) (*Consumer, error) {
	consumer := &Consumer{conn: conn}
	if err := consumer.subscribe(subject, queueGroup, handler); err != nil {
		return nil, err
	}

	return consumer, nil
}

func (c *Consumer) subscribe(subject, queueGroup string, handler MessageHandler) error {
	process := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Debug("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		subscription *nats.Subscription
		err          error
	)
	if queueGroup != "" {
		subscription, err = c.conn.QueueSubscribe(subject, queueGroup, process)
	} else {
		subscription, err = c.conn.Subscribe(subject, process)
	}
	if err != nil {
		return fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	c.subscription = subscription
	return nil
}

// Stop unsubscribes and closes the connection if owned
func (c *Consumer) Stop() {
	if c.subscription != nil {
		_ = c.subscription.Unsubscribe()
	}
	if c.ownsConn && c.conn != nil {
		c.conn.Close()
	}
}
