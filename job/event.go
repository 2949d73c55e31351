package job

import (
	"encoding/json"
	"strings"

	"github.com/foliohq/folio/faults"
)

// EventKind is the closed set of trigger shapes.
type EventKind int

const (
	// EventDirect is a direct invocation: parameters read straight from
	// the event.
	EventDirect EventKind = iota

	// EventGateway is an HTTP-gateway invocation: parameters read from a
	// JSON-encoded body field.
	EventGateway

	// EventQueueBatch is a queue delivery of one or more independent
	// messages.
	EventQueueBatch
)

// QueueEventSource is the marker a queue record must carry for the
// envelope to classify as a queue batch.
const QueueEventSource = "queue"

// Record is one message of a queue-batch envelope.
type Record struct {
	MessageID   string            `json:"message_id"`
	Body        string            `json:"body"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	EventSource string            `json:"event_source,omitempty"`
}

// Envelope is the parsed shape of an inbound event, holding only the fields
// classification and dispatch need.
type Envelope struct {
	Records []Record          `json:"records,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    *string           `json:"body,omitempty"`

	// raw keeps the original event for direct-invocation parsing.
	raw json.RawMessage
}

// Classify parses the raw event and determines its trigger shape. The
// priority order is fixed: queue-batch is detected first (a multi-record
// envelope tagged with the queue event-source marker), then gateway
// (presence of both a body and a headers field), else direct.
func Classify(raw []byte) (*Envelope, EventKind, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, EventDirect, faults.Validationf("unparsable event: %v", err)
	}
	env.raw = append(json.RawMessage(nil), raw...)

	if len(env.Records) > 0 && env.Records[0].EventSource == QueueEventSource {
		return &env, EventQueueBatch, nil
	}
	if env.Body != nil && env.Headers != nil {
		return &env, EventGateway, nil
	}
	return &env, EventDirect, nil
}

// JobBody returns the JSON bytes the job parameters should be parsed from:
// the body field for gateway events, the raw event itself for direct
// invocations.
func (e *Envelope) JobBody(kind EventKind) []byte {
	if kind == EventGateway && e.Body != nil {
		return []byte(*e.Body)
	}
	return e.raw
}

// Header returns a header value, matching the canonical name
// case-insensitively on its first letter variants (gateway senders differ).
func (e *Envelope) Header(name string) string {
	if e.Headers == nil {
		return ""
	}
	if v, ok := e.Headers[name]; ok {
		return v
	}
	for k, v := range e.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
