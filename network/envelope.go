package network

import "encoding/json"

// Envelope is the JSON message frame exchanged with clients: an event type
// plus an opaque payload the application layer decodes.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewEnvelope wraps an outbound payload. Payloads are server-owned view
// structs, so a marshal failure only happens on a programming error and
// yields an empty payload.
func NewEnvelope(msgType string, payload any) Envelope {
	data, _ := json.Marshal(payload)
	return Envelope{Type: msgType, Data: data}
}
