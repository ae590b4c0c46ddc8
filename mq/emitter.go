package mq

import (
	"context"
	"encoding/json"
	"log"

	"voyago/rdx"
)

const channel = "trip-events"

// TripEvent announces a trip lifecycle change to downstream consumers.
type TripEvent struct {
	Action string `json:"action"` // created / deleted
	TripID string `json:"tripid"`
	UserID string `json:"user_id"`
}

// Emit publishes the event to Redis. Delivery is best effort; a failed
// publish is logged and dropped.
func Emit(ctx context.Context, event TripEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("mq: marshal %s event: %v", event.Action, err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("mq: publish %s event: %v", event.Action, err)
	}
}
