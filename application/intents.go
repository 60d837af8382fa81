package application

import (
	"encoding/json"
	"fmt"

	"chiproom/domain/poker"
)

// Inbound intent type names on the wire.
const (
	TypeCreateRoom    = "create_room"
	TypeJoinRoom      = "join_room"
	TypeLeaveRoom     = "leave_room"
	TypeConfigureGame = "configure_game"
	TypeOpenConfig    = "open_config"
	TypeCloseConfig   = "close_config"
	TypeStartHand     = "start_hand"
	TypeAction        = "action"
	TypeDeclareWinner = "declare_winner"
)

// Intent is an inbound client request decoded into a tagged variant with
// its required fields validated. Nothing reaches a Room method before
// passing DecodeIntent.
type Intent interface {
	intent()
}

type CreateRoom struct {
	Name string `json:"name"`
}

type JoinRoom struct {
	Name string `json:"name"`
	Room string `json:"room"`
}

type LeaveRoom struct {
	Room string `json:"room"`
}

type ConfigureGame struct {
	Room          string  `json:"room"`
	StartingChips float64 `json:"starting_chips"`
	SmallBlind    float64 `json:"small_blind"`
	BigBlind      float64 `json:"big_blind"`
}

type OpenConfig struct {
	Room string `json:"room"`
}

type CloseConfig struct {
	Room string `json:"room"`
}

type StartHand struct {
	Room string `json:"room"`
}

type PlayerAction struct {
	Room   string  `json:"room"`
	Action string  `json:"action"`
	Amount float64 `json:"amount"`
}

type DeclareWinner struct {
	Room   string `json:"room"`
	Winner string `json:"winner"`
}

func (CreateRoom) intent()    {}
func (JoinRoom) intent()      {}
func (LeaveRoom) intent()     {}
func (ConfigureGame) intent() {}
func (OpenConfig) intent()    {}
func (CloseConfig) intent()   {}
func (StartHand) intent()     {}
func (PlayerAction) intent()  {}
func (DeclareWinner) intent() {}

// DecodeIntent parses and validates a raw payload for the given wire type.
// Unknown types and malformed or incomplete payloads are rejected here,
// before any room state is touched.
func DecodeIntent(msgType string, data []byte) (Intent, error) {
	switch msgType {
	case TypeCreateRoom:
		var in CreateRoom
		if err := unmarshalIntent(msgType, data, &in); err != nil {
			return nil, err
		}
		if in.Name == "" {
			return nil, fmt.Errorf("%s: name is required", msgType)
		}
		return in, nil

	case TypeJoinRoom:
		var in JoinRoom
		if err := unmarshalIntent(msgType, data, &in); err != nil {
			return nil, err
		}
		if in.Name == "" {
			return nil, fmt.Errorf("%s: name is required", msgType)
		}
		if in.Room == "" {
			return nil, fmt.Errorf("%s: room is required", msgType)
		}
		return in, nil

	case TypeLeaveRoom:
		var in LeaveRoom
		if err := unmarshalIntent(msgType, data, &in); err != nil {
			return nil, err
		}
		if in.Room == "" {
			return nil, fmt.Errorf("%s: room is required", msgType)
		}
		return in, nil

	case TypeConfigureGame:
		var in ConfigureGame
		if err := unmarshalIntent(msgType, data, &in); err != nil {
			return nil, err
		}
		if in.Room == "" {
			return nil, fmt.Errorf("%s: room is required", msgType)
		}
		if in.StartingChips <= 0 || in.SmallBlind <= 0 || in.BigBlind <= 0 {
			return nil, fmt.Errorf("%s: amounts must be positive", msgType)
		}
		return in, nil

	case TypeOpenConfig:
		var in OpenConfig
		if err := unmarshalIntent(msgType, data, &in); err != nil {
			return nil, err
		}
		if in.Room == "" {
			return nil, fmt.Errorf("%s: room is required", msgType)
		}
		return in, nil

	case TypeCloseConfig:
		var in CloseConfig
		if err := unmarshalIntent(msgType, data, &in); err != nil {
			return nil, err
		}
		if in.Room == "" {
			return nil, fmt.Errorf("%s: room is required", msgType)
		}
		return in, nil

	case TypeStartHand:
		var in StartHand
		if err := unmarshalIntent(msgType, data, &in); err != nil {
			return nil, err
		}
		if in.Room == "" {
			return nil, fmt.Errorf("%s: room is required", msgType)
		}
		return in, nil

	case TypeAction:
		var in PlayerAction
		if err := unmarshalIntent(msgType, data, &in); err != nil {
			return nil, err
		}
		if in.Room == "" {
			return nil, fmt.Errorf("%s: room is required", msgType)
		}
		switch poker.ActionType(in.Action) {
		case poker.ActionFold, poker.ActionCheck, poker.ActionCall, poker.ActionRaise:
		default:
			return nil, fmt.Errorf("%s: unknown action %q", msgType, in.Action)
		}
		if in.Amount < 0 {
			return nil, fmt.Errorf("%s: amount must not be negative", msgType)
		}
		return in, nil

	case TypeDeclareWinner:
		var in DeclareWinner
		if err := unmarshalIntent(msgType, data, &in); err != nil {
			return nil, err
		}
		if in.Room == "" {
			return nil, fmt.Errorf("%s: room is required", msgType)
		}
		if in.Winner == "" {
			return nil, fmt.Errorf("%s: winner is required", msgType)
		}
		return in, nil
	}

	return nil, fmt.Errorf("unknown intent type %q", msgType)
}

func unmarshalIntent(msgType string, data []byte, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("decoding %s: empty payload", msgType)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", msgType, err)
	}
	return nil
}
