package poker

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestViewSnapshot(t *testing.T) {
	room := setupRoom(3)
	room.StartHand() // dealer=P1, SB=P2, BB=P0, action=P1
	room.PlaceBet("sid2", room.SmallBlind)
	room.PlaceBet("sid0", room.BigBlind)

	v := room.View()

	if v.Code != "TESTR" || v.LeaderID != "sid0" {
		t.Errorf("unexpected identity: %s/%s", v.Code, v.LeaderID)
	}
	if len(v.Players) != 3 {
		t.Fatalf("expected 3 player views, got %d", len(v.Players))
	}
	if v.CurrentTurn != "P1" {
		t.Errorf("expected P1 to act, got %q", v.CurrentTurn)
	}
	if v.Dealer != "P1" {
		t.Errorf("expected dealer P1, got %q", v.Dealer)
	}
	if v.Pot != 30 {
		t.Errorf("expected pot 30, got %d", v.Pot)
	}
	// P1 posted nothing yet and owes the full big blind.
	if v.CallAmount != 20 {
		t.Errorf("expected call amount 20, got %d", v.CallAmount)
	}
	if v.Round != PreFlop {
		t.Errorf("expected preflop, got %s", v.Round)
	}
	if !v.HandStarted || v.ShowConfig {
		t.Errorf("unexpected flags: started=%v config=%v", v.HandStarted, v.ShowConfig)
	}
}

func TestViewEmptyRoom(t *testing.T) {
	room := NewRoom("EMPTY", "")
	v := room.View()
	if v.CurrentTurn != "" || v.Dealer != "" {
		t.Error("expected no turn or dealer names in an empty room")
	}
	if len(v.Players) != 0 {
		t.Errorf("expected no players, got %d", len(v.Players))
	}
}

func TestViewJSONShape(t *testing.T) {
	room := setupRoom(2)
	b, err := json.Marshal(room.View())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(b)

	// Community cards are vestigial but must serialize as an empty array,
	// not null, so clients keep a stable shape.
	if !strings.Contains(s, `"community_cards":[]`) {
		t.Errorf("expected empty community_cards array, got %s", s)
	}
	// Amounts go out as dollars.
	if !strings.Contains(s, `"small_blind":0.1`) || !strings.Contains(s, `"big_blind":0.2`) {
		t.Errorf("expected dollar blinds on the wire, got %s", s)
	}
	// Connection identifiers must never leak through player views. The
	// leader id is the one deliberate exception.
	if strings.Contains(s, "sid1") {
		t.Errorf("unexpected session id leak: %s", s)
	}
	for _, p := range room.View().Players {
		if p.Name == "" {
			t.Error("expected player names in the view")
		}
	}
}
