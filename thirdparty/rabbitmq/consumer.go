package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/muhammadheryan/heart2help/utils/logger"
	"github.com/muhammadheryan/heart2help/utils/retry"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// fcmBatchSize is the token limit of one FCM multicast.
const fcmBatchSize = 500

// DeviceTokenResolver maps users to their registered push tokens.
type DeviceTokenResolver interface {
	ListTokensByUserIDs(ctx context.Context, userIDs []uint64) ([]string, error)
	DeleteTokens(ctx context.Context, tokens []string) error
}

var isUnregistered = messaging.IsUnregistered

// PushSender is satisfied by *messaging.Client.
type PushSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type ConsumerConfig struct {
	AdminWebhookURL string
	AdminAPIKey     string
	Retry           retry.Config
}

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	cfg     ConsumerConfig
	tokens  DeviceTokenResolver
	push    PushSender
	client  *http.Client
}

func NewConsumer(host string, port int, user, password string, cfg ConsumerConfig, tokens DeviceTokenResolver, push PushSender) (*Consumer, error) {
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

	return newConsumer(conn, channel, cfg, tokens, push), nil
}

func newConsumer(conn *amqp091.Connection, channel *amqp091.Channel, cfg ConsumerConfig, tokens DeviceTokenResolver, push PushSender) *Consumer {
	return &Consumer{
		conn:    conn,
		channel: channel,
		cfg:     cfg,
		tokens:  tokens,
		push:    push,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	handlers := map[string]func(context.Context, []byte) error{
		pushQueue:  c.handlePush,
		eventQueue: c.handleEvent,
	}
	for queue, handle := range handlers {
		msgs, err := c.channel.Consume(
			queue,
			"",    // consumer tag
			false, // auto-ack
			false, // exclusive
			false, // no-local
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			return err
		}
		go c.loop(ctx, queue, msgs, handle)
	}

	return nil
}

func (c *Consumer) loop(ctx context.Context, queue string, msgs <-chan amqp091.Delivery, handle func(context.Context, []byte) error) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}

			err := handle(ctx, msg.Body)
			switch {
			case err == nil:
				msg.Ack(false)
			case isMalformed(err):
				logger.Error("[Consumer] drop malformed message", zap.String("queue", queue), zap.String("error", err.Error()))
				msg.Ack(false)
			default:
				// one redelivery, then drop
				logger.Error("[Consumer] deliver", zap.String("queue", queue), zap.Bool("redelivered", msg.Redelivered), zap.String("error", err.Error()))
				msg.Nack(false, !msg.Redelivered)
			}
		}
	}
}

type malformedError struct{ err error }

func (e malformedError) Error() string { return "malformed message: " + e.err.Error() }

func isMalformed(err error) bool {
	_, ok := err.(malformedError)
	return ok
}

func (c *Consumer) handlePush(ctx context.Context, body []byte) error {
	var msg PushMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return malformedError{err}
	}

	tokens, err := c.tokens.ListTokensByUserIDs(ctx, msg.UserIDs)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		logger.Debug("[Consumer] no device tokens", zap.Int("users", len(msg.UserIDs)))
		return nil
	}

	var stale []string
	for start := 0; start < len(tokens); start += fcmBatchSize {
		end := start + fcmBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[start:end]

		resp, err := c.push.SendEachForMulticast(ctx, multicast(msg, batch))
		if err != nil {
			// earlier batches went out, so a redelivery would push them twice
			if start > 0 {
				logger.Error("[Consumer] err push.SendEachForMulticast", zap.Int("tokens", len(batch)), zap.String("error", err.Error()))
				continue
			}
			return err
		}
		if resp.FailureCount > 0 {
			logger.Warn("[Consumer] push partially failed",
				zap.Int("success", resp.SuccessCount),
				zap.Int("failure", resp.FailureCount),
			)
		}
		for i, r := range resp.Responses {
			if r.Success || r.Error == nil {
				continue
			}
			if isUnregistered(r.Error) {
				stale = append(stale, batch[i])
				continue
			}
			logger.Debug("[Consumer] push token failed", zap.String("error", r.Error.Error()))
		}
	}

	if len(stale) > 0 {
		if err := c.tokens.DeleteTokens(ctx, stale); err != nil {
			logger.Error("[Consumer] err tokens.DeleteTokens", zap.Int("tokens", len(stale)), zap.String("error", err.Error()))
		}
	}
	return nil
}

func multicast(msg PushMessage, tokens []string) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens: tokens,
		Data:   msg.Payload,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Android: &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{Sound: "default"},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{Aps: &messaging.Aps{Sound: "default"}},
		},
	}
}

func (c *Consumer) handleEvent(ctx context.Context, body []byte) error {
	var msg EventMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return malformedError{err}
	}
	if c.cfg.AdminWebhookURL == "" {
		logger.Info("[Consumer] event without webhook", zap.String("kind", string(msg.Kind)))
		return nil
	}
	return c.post(ctx, c.cfg.AdminWebhookURL, "Bearer "+c.cfg.AdminAPIKey, msg)
}

// post sends payload to the admin webhook as JSON, retrying network errors and 5xx responses.
func (c *Consumer) post(ctx context.Context, url, authorization string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return retry.Do(ctx, c.cfg.Retry, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return retry.Permanent(err)
		}
		req.Header.Set("Authorization", authorization)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Internal-Service", "notification-consumer")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		respBody, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			return fmt.Errorf("%s returned status %d: %s", url, resp.StatusCode, string(respBody))
		}
		if resp.StatusCode >= 300 {
			return retry.Permanent(fmt.Errorf("%s returned status %d: %s", url, resp.StatusCode, string(respBody)))
		}
		return nil
	})
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
