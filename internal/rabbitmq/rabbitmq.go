package rabbitmq

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	TWEETS_STORED_QUEUE = "tweets.stored"
)

type MQConn struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func New(connString string) (*MQConn, error) {
	conn, err := amqp.Dial(connString)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if _, err := ch.QueueDeclare(TWEETS_STORED_QUEUE, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &MQConn{
		conn: conn,
		ch:   ch,
	}, nil
}

func (c *MQConn) PublishJSON(ctx context.Context, queue string, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return c.ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

func (c *MQConn) Close() error {
	if err := c.ch.Close(); err != nil {
		c.conn.Close()
		return err
	}
	return c.conn.Close()
}
