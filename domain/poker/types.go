package poker

// Player is a seated participant: connection identity, display name and
// chip stack. The ID is the session identifier of the connection and is
// never included in any outward view.
type Player struct {
	ID    string
	Name  string
	Chips Chips
}

// View returns the externally visible projection of the player.
func (p *Player) View() PlayerView {
	return PlayerView{Name: p.Name, Chips: p.Chips}
}

// ActionType identifies a voluntary player action.
type ActionType string

const (
	ActionFold  ActionType = "fold"
	ActionCheck ActionType = "check"
	ActionCall  ActionType = "call"
	ActionRaise ActionType = "raise"
)

// Round is one betting phase of a hand. No cards are dealt in this system;
// the round is purely a counter of betting phases.
type Round string

const (
	PreFlop Round = "preflop"
	Flop    Round = "flop"
	Turn    Round = "turn"
	River   Round = "river"
	Done    Round = "done"
)

// nextRound returns the round following current. The sequence is linear
// and ends at Done, which maps to itself.
func nextRound(current Round) Round {
	switch current {
	case PreFlop:
		return Flop
	case Flop:
		return Turn
	case Turn:
		return River
	case River, Done:
		return Done
	}
	// Not found, default to first
	return PreFlop
}

// FlowStep is the decision taken by ProcessActionAndAdvance after a player
// action.
type FlowStep string

const (
	EndHand      FlowStep = "end_hand"
	AdvanceRound FlowStep = "advance_round"
	AdvanceTurn  FlowStep = "advance_turn"
)

// FlowResult reports how the game advanced after a player action. Winner
// and Won are set only when Step is EndHand and a sole remaining player was
// paid the pot.
type FlowResult struct {
	Step   FlowStep
	Winner *Player
	Won    Chips
}
