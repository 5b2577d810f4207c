package grid

import (
	"strings"

	"github.com/charliearlie/football-iq/internal/names"
	"github.com/charliearlie/football-iq/internal/scoring"
)

// Status is the game's lifecycle state.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusComplete Status = "complete"
	StatusGaveUp   Status = "gave_up"
)

// Result tags the outcome of a dispatched action.
type Result string

const (
	ResultIgnored   Result = "ignored"
	ResultSelected  Result = "selected"
	ResultFilled    Result = "filled"
	ResultIncorrect Result = "incorrect"
	ResultStale     Result = "stale"
	ResultComplete  Result = "complete"
	ResultGaveUp    Result = "gave_up"
)

// NoSelection marks "no cell awaiting input".
const NoSelection = -1

// Game is The Grid state machine. Asynchronous cell validation is tied
// back to the board through selection tokens: selecting a cell issues a
// token, and a validation result carrying a token that no longer matches
// the current selection is discarded.
type Game struct {
	Content       Content            `json:"-"`
	CellsState    [Cells]*FilledCell `json:"cells"`
	Selected      int                `json:"selectedCell"`
	Status        Status             `json:"gameStatus"`
	LastWrong     bool               `json:"lastGuessWrong,omitempty"`
	Score         *scoring.GridScore `json:"score,omitempty"`

	// Token identifies the current selection. A validation result carrying
	// an older token is discarded as stale.
	Token int `json:"selectionToken,omitempty"`
}

// NewGame starts a fresh attempt with an empty board.
func NewGame(c Content) *Game {
	return &Game{Content: c, Selected: NoSelection}
}

// CellsFilled counts non-empty slots.
func (g *Game) CellsFilled() int {
	n := 0
	for _, c := range g.CellsState {
		if c != nil {
			n++
		}
	}
	return n
}

// Complete reports whether all nine slots are filled.
func (g *Game) Complete() bool { return g.CellsFilled() == Cells }

// FilledMask returns the filled/empty shape of the board, for share text.
func (g *Game) FilledMask() [Cells]bool {
	var mask [Cells]bool
	for i, c := range g.CellsState {
		mask[i] = c != nil
	}
	return mask
}

// SelectCell designates an empty slot as awaiting input and returns a
// token identifying this selection. Selecting a filled cell, or anything
// while not playing, is a no-op.
func (g *Game) SelectCell(index int) (Result, int) {
	if g.Status != StatusPlaying {
		return ResultIgnored, 0
	}
	if _, _, err := CellToRowCol(index); err != nil {
		return ResultIgnored, 0
	}
	if g.CellsState[index] != nil {
		return ResultIgnored, 0
	}
	g.Selected = index
	g.Token++
	return ResultSelected, g.Token
}

// ApplyValidation feeds an asynchronous database-validation result back
// into the board. A result for a superseded selection is discarded.
func (g *Game) ApplyValidation(token, index int, valid bool, cell FilledCell) Result {
	if g.Status != StatusPlaying {
		return ResultIgnored
	}
	if token != g.Token || index != g.Selected {
		return ResultStale
	}
	if !valid {
		g.LastWrong = true
		return ResultIncorrect
	}
	return g.fill(index, cell)
}

// SubmitGuess is the legacy free-text flow: the guess is fuzzy-matched
// against the cell's pre-authored valid answers.
func (g *Game) SubmitGuess(index int, text string) Result {
	if g.Status != StatusPlaying || strings.TrimSpace(text) == "" {
		return ResultIgnored
	}
	if _, _, err := CellToRowCol(index); err != nil {
		return ResultIgnored
	}
	if g.CellsState[index] != nil {
		return ResultIgnored
	}
	for _, answer := range g.Content.ValidAnswers[index] {
		if names.ValidateGuess(text, answer).Match {
			return g.fill(index, FilledCell{PlayerName: answer})
		}
	}
	g.LastWrong = true
	return ResultIncorrect
}

func (g *Game) fill(index int, cell FilledCell) Result {
	c := cell
	g.CellsState[index] = &c
	g.Selected = NoSelection
	g.LastWrong = false
	if g.Complete() {
		g.Status = StatusComplete
		score := scoring.CalculateGridScore(Cells)
		g.Score = &score
		return ResultComplete
	}
	return ResultFilled
}

// GiveUp ends the attempt with partial credit for whatever is on the
// board, unlike Career Path where a forfeit zeroes the score.
func (g *Game) GiveUp() Result {
	if g.Status != StatusPlaying {
		return ResultIgnored
	}
	g.Status = StatusGaveUp
	g.Selected = NoSelection
	score := scoring.CalculateGridScore(g.CellsFilled())
	g.Score = &score
	return ResultGaveUp
}
