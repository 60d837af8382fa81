// Package poker implements the room state machine for a social poker game
// played without a card engine: players track chips by hand while a human
// declares winners, so no cards are ever dealt or ranked.
//
// # Core Types
//
// Room: The complete state of one table, including seating order, dealer and
// blind positions, the betting round, the pot, and who still owes an action.
//
// Player: A seated participant with a connection identity, display name and
// chip stack.
//
// Chips: A chip amount held as a whole number of cents, so betting
// arithmetic stays exact while the wire format remains decimal dollars.
//
// # Game Flow
//
// A hand progresses preflop → flop → turn → river → done, with no skipping
// and no backward transition except StartHand resetting to preflop. Rooms
// perform no I/O and no locking: an external dispatcher serializes all
// operations for a given room and broadcasts the RoomView snapshot after
// every mutation.
package poker
