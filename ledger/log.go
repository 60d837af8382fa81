package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Entry is one appended action line, hash-chained to its predecessor.
type Entry struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	Message   string `json:"message"`
}

// Log is the append-only action history of a room.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() int64
}

// NewLog creates a log with an initialized genesis entry. The genesis entry
// has index 0 and previous hash "0".
func NewLog() *Log {
	l := &Log{
		now: func() int64 { return time.Now().Unix() },
	}
	genesis := Entry{
		Index:     0,
		Timestamp: l.now(),
		PrevHash:  "0",
		Message:   "genesis",
	}
	genesis.Hash = calculateHash(genesis)
	l.entries = append(l.entries, genesis)
	return l
}

// Append records a new action line chained to the latest entry and returns
// it.
func (l *Log) Append(message string) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	latest := l.entries[len(l.entries)-1]
	entry := Entry{
		Index:     latest.Index + 1,
		Timestamp: l.now(),
		PrevHash:  latest.Hash,
		Message:   message,
	}
	entry.Hash = calculateHash(entry)
	l.entries = append(l.entries, entry)
	return entry
}

// Latest returns the most recently appended entry.
func (l *Log) Latest() Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entries[len(l.entries)-1]
}

// Entries returns a copy of the full history, genesis included.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Entry(nil), l.entries...)
}

// Tail returns up to n of the most recent action entries, oldest first,
// excluding the genesis entry. Used to replay history to joining players.
func (l *Log) Tail(n int) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	history := l.entries[1:]
	if n < len(history) {
		history = history[len(history)-n:]
	}
	return append([]Entry(nil), history...)
}

// Verify validates the integrity of the entire chain by checking the
// genesis entry and verifying each subsequent entry's hash, index
// continuity, and previous-hash linkage.
func (l *Log) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.entries) == 0 {
		return fmt.Errorf("empty log")
	}
	if l.entries[0].PrevHash != "0" {
		return fmt.Errorf("invalid genesis entry")
	}
	for i := 1; i < len(l.entries); i++ {
		if err := validateEntry(l.entries[i], l.entries[i-1]); err != nil {
			return fmt.Errorf("entry %d invalid: %w", i, err)
		}
	}
	return nil
}

// validateEntry verifies that an entry is valid relative to its
// predecessor: index continuity, previous-hash linkage, and hash validity.
func validateEntry(current, previous Entry) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 hash of an entry from its index,
// timestamp, previous hash, and message.
func calculateHash(entry Entry) string {
	data := fmt.Sprintf("%d%d%s%s",
		entry.Index,
		entry.Timestamp,
		entry.PrevHash,
		entry.Message,
	)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
