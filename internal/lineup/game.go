package lineup

import (
	"strings"

	"github.com/charliearlie/football-iq/internal/names"
)

// Status is the game's lifecycle state.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusComplete Status = "complete"
)

// Outcome tags a guess against the selected slot. WrongPosition is the
// "warm" case: the name is in the lineup, just not where the player
// pointed.
type Outcome string

const (
	OutcomeIgnored       Outcome = "ignored"
	OutcomeCorrect       Outcome = "correct"
	OutcomeIncorrect     Outcome = "incorrect"
	OutcomeWrongPosition Outcome = "wrong_position"
	OutcomeDuplicate     Outcome = "duplicate"
	OutcomeComplete      Outcome = "complete"
)

// Game is the Starting XI state machine.
type Game struct {
	Slots  []Slot `json:"slots"`
	Status Status `json:"gameStatus"`
}

// NewGame validates content and copies the slots so content stays
// immutable across attempts.
func NewGame(c Content) (*Game, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	slots := make([]Slot, len(c.Slots))
	copy(slots, c.Slots)
	return &Game{Slots: slots, Status: StatusPlaying}, nil
}

// FoundCount reports how many hidden slots have been recalled.
func (g *Game) FoundCount() int {
	n := 0
	for _, s := range g.Slots {
		if s.Hidden && s.Found {
			n++
		}
	}
	return n
}

// HiddenCount reports how many slots there are to find in total.
func (g *Game) HiddenCount() int {
	n := 0
	for _, s := range g.Slots {
		if s.Hidden {
			n++
		}
	}
	return n
}

// Guess resolves a free-text guess against the slot at slotIndex.
func (g *Game) Guess(slotIndex int, text string) Outcome {
	if g.Status != StatusPlaying || strings.TrimSpace(text) == "" {
		return OutcomeIgnored
	}
	if slotIndex < 0 || slotIndex >= len(g.Slots) {
		return OutcomeIgnored
	}

	slot := &g.Slots[slotIndex]
	if !slot.Hidden {
		return OutcomeIgnored
	}
	if slot.Found {
		return OutcomeDuplicate
	}

	if names.ValidateGuess(text, slot.FullName).Match {
		slot.Found = true
		if g.FoundCount() == g.HiddenCount() {
			g.Status = StatusComplete
			return OutcomeComplete
		}
		return OutcomeCorrect
	}

	// Not this slot — check whether the name belongs elsewhere in the XI.
	for i := range g.Slots {
		if i == slotIndex {
			continue
		}
		other := &g.Slots[i]
		if !names.ValidateGuess(text, other.FullName).Match {
			continue
		}
		if other.Hidden && other.Found {
			return OutcomeDuplicate
		}
		if other.Hidden {
			return OutcomeWrongPosition
		}
	}
	return OutcomeIncorrect
}
