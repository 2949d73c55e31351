package bus

import "context"

// Event is one self-describing bus event. ID is assigned by the publisher
// so consumers can deduplicate redeliveries.
type Event struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Type   string `json:"type"`
	Detail any    `json:"detail"`
}

// EventBus publishes events to interested consumers.
type EventBus interface {
	Publish(ctx context.Context, event Event) error
}
