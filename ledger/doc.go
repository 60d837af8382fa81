// Package ledger implements an append-only, hash-chained log of the
// human-readable action lines emitted for a single room.
//
// # Core Components
//
// Log: An append-only history of action lines, one per room, with
// cryptographic hash chaining for tamper detection.
//
// Entry: A single action line with its position, timestamp, and links to
// the previous entry.
//
// The chain provides auditability of a full hand history and lets a room
// replay its recent tail to players who join mid-game. The Verify method
// can be called at any time to ensure the chain remains intact.
package ledger
