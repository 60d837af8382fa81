// Package application connects client intents to room state: it decodes
// and validates inbound messages, owns the registry of live rooms,
// enforces leader-only operations, and broadcasts snapshots and action
// lines after every mutation. Rooms themselves stay free of I/O and
// authorization.
package application

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"chiproom/domain/poker"
	"chiproom/ledger"
	"chiproom/network"
)

// logReplayCount caps how much room history a joining player receives.
const logReplayCount = 20

// Sender delivers outbound envelopes to connected sessions. The network
// hub implements it.
type Sender interface {
	Send(sessionID string, ev network.Envelope)
	SendAll(sessionIDs []string, ev network.Envelope)
}

// Dispatcher routes every inbound intent to the targeted room. A single
// mutex serializes all room mutation, which keeps the at-most-one
// in-flight mutation per room contract that the state machine relies on.
type Dispatcher struct {
	sender    Sender
	logger    *slog.Logger
	autoStart bool

	mu    sync.Mutex
	rooms map[string]*roomEntry
}

type Option func(*Dispatcher)

// WithLogger replaces the default slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithAutoStart makes a player action on an idle table start a hand
// implicitly instead of being rejected. Kept as a dispatcher policy; the
// room itself never self-starts.
func WithAutoStart() Option {
	return func(d *Dispatcher) {
		d.autoStart = true
	}
}

// NewDispatcher creates a dispatcher sending through the given Sender.
func NewDispatcher(sender Sender, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		logger: slog.Default(),
		rooms:  make(map[string]*roomEntry),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// HandleMessage decodes one inbound envelope and applies it. Malformed
// intents are reported to the requester only; nothing is mutated.
func (d *Dispatcher) HandleMessage(sessionID, msgType string, data []byte) {
	in, err := DecodeIntent(msgType, data)
	if err != nil {
		d.logger.Warn("rejected intent", "session", sessionID, "type", msgType, "error", err)
		d.sender.Send(sessionID, network.NewEnvelope(EventError, ErrorPayload{Message: "invalid request"}))
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch in := in.(type) {
	case CreateRoom:
		d.createRoom(sessionID, in)
	case JoinRoom:
		d.joinRoom(sessionID, in)
	case LeaveRoom:
		d.leaveRoom(sessionID, in)
	case ConfigureGame:
		d.configureGame(sessionID, in)
	case OpenConfig:
		d.setConfigPanel(sessionID, in.Room, true)
	case CloseConfig:
		d.setConfigPanel(sessionID, in.Room, false)
	case StartHand:
		d.startHand(sessionID, in)
	case PlayerAction:
		d.playerAction(sessionID, in)
	case DeclareWinner:
		d.declareWinner(sessionID, in)
	}
}

// Disconnect removes the session's player from whichever room holds them
// and closes the room if it empties out.
func (d *Dispatcher) Disconnect(sessionID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for code, entry := range d.rooms {
		p := entry.room.FindPlayer(sessionID)
		if p == nil {
			continue
		}
		entry.room.RemovePlayer(sessionID)
		if len(entry.room.Players) == 0 {
			delete(d.rooms, code)
			d.logger.Info("room closed", "code", code)
		} else {
			d.logAction(entry, fmt.Sprintf("%s disconnected.", p.Name))
			d.broadcastState(entry)
		}
		break
	}
}

func (d *Dispatcher) createRoom(sessionID string, in CreateRoom) {
	code := d.generateCode()
	room := poker.NewRoom(code, sessionID)
	entry := &roomEntry{room: room, log: ledger.NewLog()}
	d.rooms[code] = entry

	room.AddPlayer(&poker.Player{ID: sessionID, Name: in.Name, Chips: room.StartingChips})
	d.logger.Info("room created", "code", code, "player", in.Name)

	d.sender.Send(sessionID, network.NewEnvelope(EventRoomCreated, RoomCreatedPayload{Code: code}))
	d.broadcastState(entry)
}

func (d *Dispatcher) joinRoom(sessionID string, in JoinRoom) {
	entry, ok := d.rooms[in.Room]
	if !ok {
		d.sender.Send(sessionID, network.NewEnvelope(EventJoinError, ErrorPayload{
			Message: fmt.Sprintf("Room code %q does not exist. Please check the code and try again.", in.Room),
		}))
		return
	}

	p := &poker.Player{ID: sessionID, Name: in.Name, Chips: entry.room.StartingChips}
	if !entry.room.AddPlayer(p) {
		d.sender.Send(sessionID, network.NewEnvelope(EventError, ErrorPayload{Message: "Room is full"}))
		return
	}
	d.logger.Info("player joined", "code", in.Room, "player", in.Name)

	// Bring the newcomer up to speed before the join line lands.
	for _, e := range entry.log.Tail(logReplayCount) {
		d.sender.Send(sessionID, network.NewEnvelope(EventActionLog, ActionLogPayload{Message: e.Message}))
	}
	d.logAction(entry, fmt.Sprintf("%s has joined the room.", in.Name))
	d.broadcastState(entry)
}

func (d *Dispatcher) leaveRoom(sessionID string, in LeaveRoom) {
	entry, ok := d.rooms[in.Room]
	if !ok {
		return
	}
	p := entry.room.FindPlayer(sessionID)
	if p == nil {
		return
	}

	entry.room.RemovePlayer(sessionID)
	if len(entry.room.Players) == 0 {
		delete(d.rooms, in.Room)
		d.logger.Info("room closed", "code", in.Room)
		return
	}
	d.logAction(entry, fmt.Sprintf("%s has left the room.", p.Name))
	d.broadcastState(entry)
}

func (d *Dispatcher) configureGame(sessionID string, in ConfigureGame) {
	entry, ok := d.rooms[in.Room]
	if !ok {
		return
	}
	if entry.room.LeaderID != sessionID {
		d.sender.Send(sessionID, network.NewEnvelope(EventError, ErrorPayload{
			Message: "Only the room leader can configure settings",
		}))
		return
	}

	entry.room.ConfigureGame(
		poker.ChipsFromDollars(in.StartingChips),
		poker.ChipsFromDollars(in.SmallBlind),
		poker.ChipsFromDollars(in.BigBlind),
	)
	d.logAction(entry, fmt.Sprintf("Game configured: %s starting, blinds %s/%s",
		entry.room.StartingChips, entry.room.SmallBlind, entry.room.BigBlind))
	d.broadcastState(entry)
}

func (d *Dispatcher) setConfigPanel(sessionID, roomCode string, show bool) {
	entry, ok := d.rooms[roomCode]
	if !ok {
		return
	}
	if entry.room.LeaderID != sessionID {
		d.sender.Send(sessionID, network.NewEnvelope(EventError, ErrorPayload{
			Message: "Only the room leader can open settings",
		}))
		return
	}
	entry.room.ShowConfig = show
	d.broadcastState(entry)
}

func (d *Dispatcher) startHand(sessionID string, in StartHand) {
	entry, ok := d.rooms[in.Room]
	if !ok {
		return
	}
	entry.room.ShowConfig = false
	d.beginHand(entry)
	d.broadcastState(entry)
}

// beginHand starts a fresh hand and posts the blinds. Blind posting is
// forced betting, separate from voluntary action, and consumes nobody's
// turn. Skipped entirely when the hand cannot proceed.
func (d *Dispatcher) beginHand(entry *roomEntry) {
	room := entry.room
	room.StartHand()
	if len(room.Players) < 2 {
		return
	}

	sb := room.Players[room.SmallBlindIndex]
	bb := room.Players[room.BigBlindIndex]
	room.PlaceBet(sb.ID, room.SmallBlind)
	room.PlaceBet(bb.ID, room.BigBlind)

	d.logAction(entry, "--- New Hand Started ---")
	d.logAction(entry, fmt.Sprintf("%s posts small blind (%s)", sb.Name, room.SmallBlind))
	d.logAction(entry, fmt.Sprintf("%s posts big blind (%s)", bb.Name, room.BigBlind))
}

func (d *Dispatcher) playerAction(sessionID string, in PlayerAction) {
	entry, ok := d.rooms[in.Room]
	if !ok {
		return
	}
	room := entry.room

	if len(room.InHand) == 0 {
		if !d.autoStart {
			d.sender.Send(sessionID, network.NewEnvelope(EventError, ErrorPayload{Message: "No hand in progress"}))
			return
		}
		d.beginHand(entry)
	}

	current := room.CurrentPlayer()
	if current == nil || current.ID != sessionID {
		d.sender.Send(sessionID, network.NewEnvelope(EventError, ErrorPayload{Message: "Not your turn!"}))
		return
	}

	switch poker.ActionType(in.Action) {
	case poker.ActionFold:
		room.MarkActed(current.ID)
		room.FoldCurrentPlayer()
		d.logAction(entry, fmt.Sprintf("%s folds", current.Name))

	case poker.ActionCheck:
		if !room.CanCheck(current.ID) {
			d.sender.Send(sessionID, network.NewEnvelope(EventError, ErrorPayload{
				Message: "Cannot check, call or fold instead",
			}))
			return
		}
		room.MarkActed(current.ID)
		d.logAction(entry, fmt.Sprintf("%s checks", current.Name))

	case poker.ActionCall:
		owed := room.CallAmount(current.ID)
		room.Call(current.ID)
		room.MarkActed(current.ID)
		d.logAction(entry, fmt.Sprintf("%s calls %s", current.Name, owed))

	case poker.ActionRaise:
		delta := poker.ChipsFromDollars(in.Amount)
		if delta <= 0 {
			d.sender.Send(sessionID, network.NewEnvelope(EventError, ErrorPayload{
				Message: "Raise must be a positive amount",
			}))
			return
		}
		if !room.RaiseBet(current.ID, delta) {
			d.sender.Send(sessionID, network.NewEnvelope(EventError, ErrorPayload{
				Message: "Not enough chips to raise",
			}))
			return
		}
		// Everyone else has to respond to the new table bet.
		room.ResetToAct(current.ID)
		d.logAction(entry, fmt.Sprintf("%s raises %s", current.Name, delta))
	}

	res := room.ProcessActionAndAdvance()
	d.broadcastState(entry)

	switch res.Step {
	case poker.EndHand:
		if res.Winner != nil {
			d.logAction(entry, fmt.Sprintf("%s wins %s!", res.Winner.Name, res.Won))
			d.broadcast(entry, network.NewEnvelope(EventHandOver, HandOverPayload{
				Winner: res.Winner.Name,
				Pot:    res.Won,
			}))
		}
	case poker.AdvanceRound:
		d.logAction(entry, fmt.Sprintf("--- %s ---", strings.ToUpper(string(room.Round))))
	}
}

func (d *Dispatcher) declareWinner(sessionID string, in DeclareWinner) {
	entry, ok := d.rooms[in.Room]
	if !ok {
		return
	}
	if entry.room.LeaderID != sessionID {
		d.sender.Send(sessionID, network.NewEnvelope(EventError, ErrorPayload{
			Message: "Only the room leader can declare the winner",
		}))
		return
	}

	winner, won, ok := entry.room.DeclareWinner(in.Winner)
	if !ok {
		return
	}
	d.logAction(entry, fmt.Sprintf("%s wins %s!", winner.Name, won))
	d.broadcastState(entry)
	d.broadcast(entry, network.NewEnvelope(EventHandOver, HandOverPayload{
		Winner: winner.Name,
		Pot:    won,
	}))
}

func (d *Dispatcher) sessionIDs(room *poker.Room) []string {
	ids := make([]string, 0, len(room.Players))
	for _, p := range room.Players {
		ids = append(ids, p.ID)
	}
	return ids
}

func (d *Dispatcher) broadcast(entry *roomEntry, ev network.Envelope) {
	d.sender.SendAll(d.sessionIDs(entry.room), ev)
}

func (d *Dispatcher) broadcastState(entry *roomEntry) {
	d.broadcast(entry, network.NewEnvelope(EventRoomUpdate, entry.room.View()))
}

// logAction appends a narration line to the room's ledger and broadcasts
// it.
func (d *Dispatcher) logAction(entry *roomEntry, message string) {
	entry.log.Append(message)
	d.broadcast(entry, network.NewEnvelope(EventActionLog, ActionLogPayload{Message: message}))
}
