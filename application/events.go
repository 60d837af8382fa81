package application

import "chiproom/domain/poker"

// Outbound event type names on the wire.
const (
	EventRoomCreated = "room_created"
	EventRoomUpdate  = "room_update"
	EventActionLog   = "action_log"
	EventHandOver    = "hand_over"
	EventError       = "error"
	EventJoinError   = "join_error"
)

type RoomCreatedPayload struct {
	Code string `json:"code"`
}

type ActionLogPayload struct {
	Message string `json:"message"`
}

type HandOverPayload struct {
	Winner string      `json:"winner"`
	Pot    poker.Chips `json:"pot"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
