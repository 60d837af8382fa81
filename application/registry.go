package application

import (
	"crypto/rand"

	"chiproom/domain/poker"
	"chiproom/ledger"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 5
)

// roomEntry pairs a room with its action history.
type roomEntry struct {
	room *poker.Room
	log  *ledger.Log
}

// generateCode returns a room code not currently in use. Caller holds the
// dispatcher lock.
func (d *Dispatcher) generateCode() string {
	for {
		code := randomCode()
		if _, taken := d.rooms[code]; !taken {
			return code
		}
	}
}

func randomCode() string {
	b := make([]byte, codeLength)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(b)
}
