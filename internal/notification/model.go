package notification

import "time"

// Kinds of event notifications
const (
	KindEventCreated = "event.created"
	KindEventUpdated = "event.updated"
	KindEventDeleted = "event.deleted"
	KindGamerJoined  = "event.gamer_joined"
	KindGamerLeft    = "event.gamer_left"
)

// Message is the JSON payload written to the notifications topic.
type Message struct {
	Kind       string    `json:"kind"`
	EventID    uint      `json:"event_id"`
	GamerID    uint      `json:"gamer_id"`
	GameID     uint      `json:"game_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
