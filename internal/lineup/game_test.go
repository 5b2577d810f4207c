package lineup

import "testing"

// A simplified 4-3-3 with three visible anchors.
func testContent() Content {
	slot := func(pos PositionKey, name, display string, hidden bool) Slot {
		return Slot{PositionKey: pos, FullName: name, DisplayName: display, Hidden: hidden}
	}
	return Content{Slots: []Slot{
		slot(PosGK, "Alisson Becker", "Alisson", false),
		slot(PosRB, "Trent Alexander-Arnold", "Alexander-Arnold", true),
		slot(PosRCB, "Joel Matip", "Matip", true),
		slot(PosLCB, "Virgil van Dijk", "Van Dijk", false),
		slot(PosLB, "Andrew Robertson", "Robertson", true),
		slot(PosRCM, "Jordan Henderson", "Henderson", true),
		slot(PosCDM, "Fabinho", "Fabinho", true),
		slot(PosLCM, "Georginio Wijnaldum", "Wijnaldum", true),
		slot(PosRW, "Mohamed Salah", "Salah", false),
		slot(PosST, "Roberto Firmino", "Firmino", true),
		slot(PosLW, "Sadio Mané", "Mané", true),
	}}
}

func TestNewGameValidation(t *testing.T) {
	if _, err := NewGame(Content{}); err == nil {
		t.Error("expected error for empty content")
	}

	c := testContent()
	c.Slots = c.Slots[:10]
	if _, err := NewGame(c); err == nil {
		t.Error("expected error for 10-slot lineup")
	}

	g, err := NewGame(testContent())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if g.Status != StatusPlaying || g.HiddenCount() != 8 || g.FoundCount() != 0 {
		t.Errorf("initial state: status=%v hidden=%d found=%d", g.Status, g.HiddenCount(), g.FoundCount())
	}
}

func TestGuessCorrect(t *testing.T) {
	g, _ := NewGame(testContent())

	// Surname is enough, accents optional.
	if got := g.Guess(10, "Mane"); got != OutcomeCorrect {
		t.Fatalf("Guess(10, Mane) = %v", got)
	}
	if !g.Slots[10].Found {
		t.Error("slot not marked found")
	}
	if g.FoundCount() != 1 {
		t.Errorf("FoundCount = %d", g.FoundCount())
	}
}

func TestGuessIncorrect(t *testing.T) {
	g, _ := NewGame(testContent())
	if got := g.Guess(1, "Lionel Messi"); got != OutcomeIncorrect {
		t.Errorf("name not in lineup = %v", got)
	}
	if g.Slots[1].Found {
		t.Error("incorrect guess marked slot found")
	}
}

func TestGuessWrongPosition(t *testing.T) {
	g, _ := NewGame(testContent())

	// Firmino plays ST (slot 9), guessed at RB (slot 1).
	if got := g.Guess(1, "Firmino"); got != OutcomeWrongPosition {
		t.Errorf("Guess(1, Firmino) = %v, want wrong_position", got)
	}
	if g.Slots[1].Found || g.Slots[9].Found {
		t.Error("wrong_position guess must not fill any slot")
	}

	// A name belonging to a visible anchor slot is plain incorrect.
	if got := g.Guess(1, "Salah"); got != OutcomeIncorrect {
		t.Errorf("Guess(1, Salah) = %v, want incorrect (slot is visible)", got)
	}
}

func TestGuessDuplicate(t *testing.T) {
	g, _ := NewGame(testContent())

	if got := g.Guess(9, "Firmino"); got != OutcomeCorrect {
		t.Fatalf("first Firmino guess = %v", got)
	}
	// Same slot again.
	if got := g.Guess(9, "Firmino"); got != OutcomeDuplicate {
		t.Errorf("repeat on found slot = %v, want duplicate", got)
	}
	// Found player guessed at a different slot.
	if got := g.Guess(1, "Firmino"); got != OutcomeDuplicate {
		t.Errorf("found player elsewhere = %v, want duplicate", got)
	}
}

func TestGuessGuards(t *testing.T) {
	g, _ := NewGame(testContent())

	if got := g.Guess(0, "Alisson"); got != OutcomeIgnored {
		t.Errorf("guess on visible slot = %v", got)
	}
	if got := g.Guess(-1, "Firmino"); got != OutcomeIgnored {
		t.Errorf("negative slot = %v", got)
	}
	if got := g.Guess(11, "Firmino"); got != OutcomeIgnored {
		t.Errorf("out-of-range slot = %v", got)
	}
	if got := g.Guess(1, "  "); got != OutcomeIgnored {
		t.Errorf("blank guess = %v", got)
	}
}

func TestCompletion(t *testing.T) {
	g, _ := NewGame(testContent())

	hidden := []struct {
		slot int
		name string
	}{
		{1, "Alexander-Arnold"},
		{2, "Matip"},
		{4, "Robertson"},
		{5, "Henderson"},
		{6, "Fabinho"},
		{7, "Wijnaldum"},
		{9, "Firmino"},
	}
	for _, h := range hidden {
		if got := g.Guess(h.slot, h.name); got != OutcomeCorrect {
			t.Fatalf("Guess(%d, %s) = %v", h.slot, h.name, got)
		}
	}

	if got := g.Guess(10, "Sadio Mané"); got != OutcomeComplete {
		t.Fatalf("final guess = %v, want complete", got)
	}
	if g.Status != StatusComplete {
		t.Errorf("status = %v", g.Status)
	}
	if got := g.Guess(1, "anything"); got != OutcomeIgnored {
		t.Errorf("guess after completion = %v", got)
	}
}
