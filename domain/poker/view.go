package poker

// PlayerView is the externally visible projection of a player. The
// connection id is deliberately absent.
type PlayerView struct {
	Name  string `json:"name"`
	Chips Chips  `json:"chips"`
}

// RoomView is the full snapshot broadcast to every participant after each
// mutation. There are no partial updates; clients always receive the whole
// room.
type RoomView struct {
	Code     string `json:"code"`
	LeaderID string `json:"leader_id"`

	Players     []PlayerView `json:"players"`
	CurrentTurn string       `json:"current_turn,omitempty"`
	Dealer      string       `json:"dealer,omitempty"`

	Pot        Chips    `json:"pot"`
	CallAmount Chips    `json:"call_amount"`
	Round      Round    `json:"round"`
	Community  []string `json:"community_cards"`

	GameConfigured bool  `json:"game_configured"`
	StartingChips  Chips `json:"starting_chips"`
	SmallBlind     Chips `json:"small_blind"`
	BigBlind       Chips `json:"big_blind"`

	HandStarted bool `json:"hand_started"`
	ShowConfig  bool `json:"show_config"`
}

// View builds the room snapshot. CallAmount is what the current player
// still owes to match the table bet; community cards are vestigial and stay
// empty, kept only so clients see a stable shape.
func (r *Room) View() RoomView {
	v := RoomView{
		Code:           r.Code,
		LeaderID:       r.LeaderID,
		Players:        make([]PlayerView, 0, len(r.Players)),
		Pot:            r.Pot,
		Round:          r.Round,
		Community:      []string{},
		GameConfigured: r.GameConfigured,
		StartingChips:  r.StartingChips,
		SmallBlind:     r.SmallBlind,
		BigBlind:       r.BigBlind,
		HandStarted:    r.HandStarted,
		ShowConfig:     r.ShowConfig,
	}
	for _, p := range r.Players {
		v.Players = append(v.Players, p.View())
	}
	if current := r.CurrentPlayer(); current != nil {
		v.CurrentTurn = current.Name
		v.CallAmount = r.CallAmount(current.ID)
	}
	if len(r.Players) > 0 {
		v.Dealer = r.Players[r.DealerIndex].Name
	}
	return v
}
