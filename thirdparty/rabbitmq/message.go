package rabbitmq

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/muhammadheryan/heart2help/constant"
)

const (
	notificationExchange = "heart2help_notification_exchange"

	pushQueue       = "push_notification_queue"
	pushRoutingKey  = "notification.push"
	eventQueue      = "moderation_event_queue"
	eventRoutingKey = "notification.event"
)

// PushMessage asks the consumer to deliver a push to every device of UserIDs.
type PushMessage struct {
	Title   string            `json:"title"`
	Body    string            `json:"body"`
	Payload map[string]string `json:"payload"`
	UserIDs []uint64          `json:"user_ids"`
}

// EventMessage is a moderation or activity event forwarded to the admin webhook.
type EventMessage struct {
	Kind       constant.EventKind `json:"kind"`
	Entity     json.RawMessage    `json:"entity"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// PushPayload builds the data block the mobile clients route on.
func PushPayload(code string, id uint64, eventType string) map[string]string {
	return map[string]string{
		"event_code": code,
		"event_id":   strconv.FormatUint(id, 10),
		"event_type": eventType,
	}
}
