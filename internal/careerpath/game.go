package careerpath

import (
	"strings"

	"github.com/charliearlie/football-iq/internal/names"
	"github.com/charliearlie/football-iq/internal/scoring"
)

// Status is the game's lifecycle state.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Result tags the outcome of a dispatched action, consumed by the UI for
// feedback (card flip, shake, terminal screen).
type Result string

const (
	ResultIgnored         Result = "ignored"
	ResultRevealed        Result = "revealed"
	ResultWon             Result = "won"
	ResultIncorrectReveal Result = "incorrect_reveal"
	ResultLost            Result = "lost"
	ResultGaveUp          Result = "gave_up"
)

// Game is the Career Path state machine. Content is immutable; state
// advances only through Reveal, SubmitGuess, and GiveUp.
type Game struct {
	Puzzle         Puzzle         `json:"-"`
	RevealedCount  int            `json:"revealedCount"`
	Guesses        []string       `json:"guesses"`
	Status         Status         `json:"gameStatus"`
	LastGuessWrong bool           `json:"lastGuessWrong,omitempty"`
	Score          *scoring.GameScore `json:"score,omitempty"`
}

// NewGame validates the puzzle and starts with the first step revealed.
func NewGame(p Puzzle) (*Game, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		Puzzle:        p,
		RevealedCount: 1,
		Guesses:       []string{},
		Status:        StatusPlaying,
	}, nil
}

// TotalSteps is the number of career steps in the puzzle.
func (g *Game) TotalSteps() int { return len(g.Puzzle.Steps) }

// FullyRevealed reports whether every clue is on the table. Reaching this
// point never ends the game by itself: the player always gets a last
// guess while fully revealed.
func (g *Game) FullyRevealed() bool { return g.RevealedCount >= g.TotalSteps() }

// Reveal voluntarily uncovers the next step.
func (g *Game) Reveal() Result {
	if g.Status != StatusPlaying || g.FullyRevealed() {
		return ResultIgnored
	}
	g.RevealedCount++
	g.LastGuessWrong = false
	return ResultRevealed
}

// SubmitGuess runs the guess against the answer. A wrong guess costs a
// clue (penalty reveal); a wrong guess with everything already revealed
// loses the game.
func (g *Game) SubmitGuess(text string) Result {
	if g.Status != StatusPlaying || strings.TrimSpace(text) == "" {
		return ResultIgnored
	}

	g.Guesses = append(g.Guesses, text)

	if names.ValidateGuess(text, g.Puzzle.Answer).Match {
		g.Status = StatusWon
		g.LastGuessWrong = false
		score := scoring.CalculateScore(g.TotalSteps(), g.RevealedCount, true)
		g.Score = &score
		return ResultWon
	}

	g.LastGuessWrong = true
	if g.FullyRevealed() {
		// Last chance spent.
		g.Status = StatusLost
		score := scoring.CalculateScore(g.TotalSteps(), g.RevealedCount, false)
		g.Score = &score
		return ResultLost
	}

	g.RevealedCount++
	return ResultIncorrectReveal
}

// GiveUp forfeits the game at any point while playing.
func (g *Game) GiveUp() Result {
	if g.Status != StatusPlaying {
		return ResultIgnored
	}
	g.Status = StatusLost
	score := scoring.CalculateScore(g.TotalSteps(), g.RevealedCount, false)
	g.Score = &score
	return ResultGaveUp
}

// VisibleSteps returns the revealed prefix of the career.
func (g *Game) VisibleSteps() []Step {
	return g.Puzzle.Steps[:g.RevealedCount]
}
