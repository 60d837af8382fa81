package poker

// BettingRoundComplete reports whether every player owing an action this
// round has acted.
func (r *Room) BettingRoundComplete() bool {
	return len(r.ToAct) == 0
}

// AdvanceRound resets the betting state for a new round and steps the round
// counter forward. Reaching Done returns without touching the turn index;
// otherwise action restarts at the small blind seat, resolved to the next
// player still in the hand.
func (r *Room) AdvanceRound() {
	r.ToAct = make(map[string]struct{}, len(r.InHand))
	for _, p := range r.InHand {
		r.ToAct[p.ID] = struct{}{}
	}
	r.CurrentBet = 0
	r.Bets = make(map[string]Chips, len(r.Players))
	for _, p := range r.Players {
		r.Bets[p.ID] = 0
	}

	r.Round = nextRound(r.Round)
	if r.Round == Done {
		return
	}

	// First to act post-flop is the small blind, or the next active seat.
	r.TurnIndex = r.SmallBlindIndex
	r.skipToNextActive()
}

// CurrentPlayer returns the player whose turn it is, after resolving the
// turn index past folded seats. Returns nil once the hand is done or the
// room is empty.
func (r *Room) CurrentPlayer() *Player {
	if r.Round == Done || len(r.Players) == 0 {
		return nil
	}
	r.skipToNextActive()
	return r.Players[r.TurnIndex]
}

// AdvanceTurn moves the turn one seat forward, skipping folded players.
func (r *Room) AdvanceTurn() {
	n := len(r.Players)
	if n == 0 {
		return
	}
	r.TurnIndex = (r.TurnIndex + 1) % n
	r.skipToNextActive()
}

// skipToNextActive advances the turn index circularly until its occupant is
// still in the hand. A full loop back to the start means nobody is active;
// the index is left unchanged and IsHandOver covers that degenerate case.
func (r *Room) skipToNextActive() {
	n := len(r.Players)
	if n == 0 {
		return
	}
	start := r.TurnIndex
	for !r.isInHand(r.Players[r.TurnIndex].ID) {
		r.TurnIndex = (r.TurnIndex + 1) % n
		if r.TurnIndex == start {
			break
		}
	}
}

// ProcessActionAndAdvance decides the next step after a player action. The
// precedence is load-bearing: a fold that leaves one player must end the
// hand even while ToAct still holds entries for players no longer in it.
func (r *Room) ProcessActionAndAdvance() FlowResult {
	if r.IsHandOver() {
		winner, won := r.AwardPotToWinner()
		return FlowResult{Step: EndHand, Winner: winner, Won: won}
	}
	if r.BettingRoundComplete() {
		r.AdvanceRound()
		return FlowResult{Step: AdvanceRound}
	}
	r.AdvanceTurn()
	return FlowResult{Step: AdvanceTurn}
}
