package poker

// MaxPlayers caps how many players a single room seats.
const MaxPlayers = 10

// Default settings applied until the leader configures the game.
const (
	DefaultStartingChips = Chips(1000) // $10.00
	DefaultSmallBlind    = Chips(10)   // $0.10
	DefaultBigBlind      = Chips(20)   // $0.20
)

// Room tracks chip counts and betting state for one table. Seating order is
// insertion order and defines both dealer rotation and turn order. All
// methods are synchronous and non-throwing: invalid calls report failure
// through their return values and leave the room untouched.
type Room struct {
	Code     string
	LeaderID string

	Players []*Player           // seating order
	InHand  []*Player           // players who have not folded this hand
	ToAct   map[string]struct{} // ids still owing an action this round
	Bets    map[string]Chips    // per-player amount wagered this round

	Pot        Chips
	CurrentBet Chips
	Round      Round

	DealerIndex     int
	SmallBlindIndex int
	BigBlindIndex   int
	TurnIndex       int

	HandStarted bool
	ShowConfig  bool

	StartingChips  Chips
	SmallBlind     Chips
	BigBlind       Chips
	GameConfigured bool
}

// NewRoom creates a room with default settings. The leader id may be empty
// and reassigned later.
func NewRoom(code, leaderID string) *Room {
	return &Room{
		Code:          code,
		LeaderID:      leaderID,
		ToAct:         make(map[string]struct{}),
		Bets:          make(map[string]Chips),
		Round:         PreFlop,
		BigBlindIndex: 1,
		StartingChips: DefaultStartingChips,
		SmallBlind:    DefaultSmallBlind,
		BigBlind:      DefaultBigBlind,
	}
}

// AddPlayer appends p to the seating order. Returns false without mutation
// when the room is full.
func (r *Room) AddPlayer(p *Player) bool {
	if len(r.Players) >= MaxPlayers {
		return false
	}
	r.Players = append(r.Players, p)
	return true
}

// FindPlayer returns the seated player with the given id, or nil.
func (r *Room) FindPlayer(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindPlayerByName returns the first seated player with the given display
// name, or nil. Names are not guaranteed unique.
func (r *Room) FindPlayerByName(name string) *Player {
	for _, p := range r.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// RemovePlayer removes the player with the given id from the seating order
// and from all hand state. Every position index that pointed at or after
// the removed seat is shifted down by one, floored at zero, so it keeps
// naming the same logical player. Leadership transfers to the new first
// player when the leader leaves. Returns whether a player was removed; the
// caller owns dropping the room once it is empty.
func (r *Room) RemovePlayer(id string) bool {
	seat := -1
	for i, p := range r.Players {
		if p.ID == id {
			seat = i
			break
		}
	}
	if seat == -1 {
		return false
	}

	r.Players = append(r.Players[:seat], r.Players[seat+1:]...)
	r.InHand = removeByID(r.InHand, id)
	delete(r.ToAct, id)
	delete(r.Bets, id)

	if len(r.Players) > 0 {
		if seat <= r.DealerIndex {
			r.DealerIndex = max(0, r.DealerIndex-1)
		}
		if seat <= r.SmallBlindIndex {
			r.SmallBlindIndex = max(0, r.SmallBlindIndex-1)
		}
		if seat <= r.BigBlindIndex {
			r.BigBlindIndex = max(0, r.BigBlindIndex-1)
		}
		if seat <= r.TurnIndex {
			r.TurnIndex = max(0, r.TurnIndex-1)
		}
	}

	if r.LeaderID == id && len(r.Players) > 0 {
		r.LeaderID = r.Players[0].ID
	}
	return true
}

// ConfigureGame overwrites the room settings and resets every seated
// player's stack to the new starting amount, even mid-series. The room does
// not check permissions; leader enforcement is the dispatcher's job.
func (r *Room) ConfigureGame(starting, small, big Chips) {
	r.StartingChips = starting
	r.SmallBlind = small
	r.BigBlind = big
	r.GameConfigured = true
	for _, p := range r.Players {
		p.Chips = starting
	}
}

// StartHand resets hand state and, with at least two players, rotates the
// dealer button and derives the blind and turn positions. Blind posting is
// a separate step performed by the dispatcher through PlaceBet.
func (r *Room) StartHand() {
	r.HandStarted = true
	r.Round = PreFlop
	r.Pot = 0
	r.CurrentBet = 0

	r.InHand = append([]*Player(nil), r.Players...)
	r.ToAct = make(map[string]struct{}, len(r.InHand))
	r.Bets = make(map[string]Chips, len(r.Players))
	for _, p := range r.Players {
		r.ToAct[p.ID] = struct{}{}
		r.Bets[p.ID] = 0
	}

	n := len(r.Players)
	if n < 2 {
		return // a hand cannot proceed
	}

	r.DealerIndex = (r.DealerIndex + 1) % n
	r.SmallBlindIndex = (r.DealerIndex + 1) % n
	r.BigBlindIndex = (r.DealerIndex + 2) % n

	// First to act preflop sits after the big blind.
	r.TurnIndex = (r.BigBlindIndex + 1) % n
}

// IsHandOver reports whether the hand cannot continue: at most one player
// remains, or the final betting round has been exhausted.
func (r *Room) IsHandOver() bool {
	return len(r.InHand) <= 1 || r.Round == Done
}

// AwardPotToWinner pays the whole pot to the sole remaining player. With
// any other number of players in hand it is a no-op returning nil: round
// exhaustion with several players standing is resolved by an explicit
// winner declaration instead.
func (r *Room) AwardPotToWinner() (*Player, Chips) {
	if len(r.InHand) != 1 {
		return nil, 0
	}
	winner := r.InHand[0]
	won := r.Pot
	winner.Chips += won
	r.Pot = 0
	r.Round = Done
	r.HandStarted = false
	return winner, won
}

// DeclareWinner credits the named player with the whole pot and closes the
// hand. Returns false without mutation when no seated player has that name.
func (r *Room) DeclareWinner(name string) (*Player, Chips, bool) {
	winner := r.FindPlayerByName(name)
	if winner == nil {
		return nil, 0, false
	}
	won := r.Pot
	winner.Chips += won
	r.Pot = 0
	r.Round = Done
	r.HandStarted = false
	return winner, won, true
}

// PlaceBet is the forced-bet primitive used for posting blinds. It fails
// when the player is missing or cannot cover the amount; otherwise the
// amount moves from the stack into the pot and the table bet rises to at
// least the posted amount.
func (r *Room) PlaceBet(id string, amount Chips) bool {
	p := r.FindPlayer(id)
	if p == nil {
		return false
	}
	if amount > p.Chips {
		return false
	}
	p.Chips -= amount
	r.Pot += amount
	if amount > r.CurrentBet {
		r.CurrentBet = amount
	}
	r.Bets[id] += amount
	return true
}

// CanCheck reports whether the player has already matched the table bet.
func (r *Room) CanCheck(id string) bool {
	return r.Bets[id] == r.CurrentBet
}

// CallAmount returns what the player still owes to match the table bet.
func (r *Room) CallAmount(id string) Chips {
	return r.CurrentBet - r.Bets[id]
}

// Call matches the table bet, capped at the caller's stack: a short stack
// goes all in with no further side-pot handling. Calling with nothing owed
// is a successful no-op.
func (r *Room) Call(id string) bool {
	p := r.FindPlayer(id)
	if p == nil {
		return false
	}
	owed := r.CallAmount(id)
	if owed <= 0 {
		return true // already matched
	}
	if owed > p.Chips {
		owed = p.Chips // all-in
	}
	p.Chips -= owed
	r.Pot += owed
	r.Bets[id] += owed
	return true
}

// RaiseBet raises the table bet by delta on top of whatever the player
// still owes. Fails without mutation for a non-positive delta or when the
// player cannot cover the call plus the raise. The table bet grows by the
// raise increment, not to the raiser's total contribution: it is the call
// target for everyone else.
func (r *Room) RaiseBet(id string, delta Chips) bool {
	p := r.FindPlayer(id)
	if p == nil || delta <= 0 {
		return false
	}
	needed := r.CallAmount(id) + delta
	if needed > p.Chips {
		return false
	}
	p.Chips -= needed
	r.Pot += needed
	r.Bets[id] += needed
	r.CurrentBet += delta
	return true
}

// FoldCurrentPlayer removes the player whose turn it is from the hand and
// discards their betting state for the round.
func (r *Room) FoldCurrentPlayer() {
	p := r.CurrentPlayer()
	if p == nil {
		return
	}
	r.InHand = removeByID(r.InHand, p.ID)
	delete(r.ToAct, p.ID)
	delete(r.Bets, p.ID)
}

// MarkActed records that the player has taken their action this betting
// round.
func (r *Room) MarkActed(id string) {
	delete(r.ToAct, id)
}

// ResetToAct requires a fresh response from every in-hand player except the
// raiser. Called by the dispatcher after a successful raise.
func (r *Room) ResetToAct(raiserID string) {
	r.ToAct = make(map[string]struct{}, len(r.InHand))
	for _, p := range r.InHand {
		if p.ID != raiserID {
			r.ToAct[p.ID] = struct{}{}
		}
	}
}

func (r *Room) isInHand(id string) bool {
	for _, p := range r.InHand {
		if p.ID == id {
			return true
		}
	}
	return false
}

func removeByID(players []*Player, id string) []*Player {
	kept := players[:0]
	for _, p := range players {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return kept
}
