package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/heart2help/constant"
	"github.com/rabbitmq/amqp091-go"
)

// Notifier is what the application layer publishes through.
type Notifier interface {
	PublishPush(ctx context.Context, msg PushMessage) error
	PublishEvent(ctx context.Context, kind constant.EventKind, entity any) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// declareTopology sets up the direct exchange and both work queues. Safe to repeat.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		notificationExchange, // name
		"direct",             // type
		true,                 // durable
		false,                // auto-delete
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		return err
	}

	bindings := map[string]string{
		pushQueue:  pushRoutingKey,
		eventQueue: eventRoutingKey,
	}
	for queue, key := range bindings {
		if _, err := channel.QueueDeclare(
			queue, // name
			true,  // durable
			false, // auto-delete
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		); err != nil {
			return err
		}
		if err := channel.QueueBind(queue, key, notificationExchange, false, nil); err != nil {
			return err
		}
	}
	return nil
}

func (p *Publisher) PublishPush(ctx context.Context, msg PushMessage) error {
	if len(msg.UserIDs) == 0 {
		return nil
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.publish(ctx, pushRoutingKey, body)
}

func (p *Publisher) PublishEvent(ctx context.Context, kind constant.EventKind, entity any) error {
	raw, err := json.Marshal(entity)
	if err != nil {
		return err
	}
	body, err := json.Marshal(EventMessage{
		Kind:       kind,
		Entity:     raw,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return p.publish(ctx, eventRoutingKey, body)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, body []byte) error {
	return p.channel.PublishWithContext(ctx,
		notificationExchange, // exchange
		routingKey,           // routing key
		false,                // mandatory
		false,                // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
