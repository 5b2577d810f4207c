// Package careerpath implements the Career Path game: a player's club
// history is revealed step by step, and each wrong guess costs a clue.
package careerpath

import (
	"errors"
	"fmt"
)

// StepKind distinguishes permanent moves from loan spells.
type StepKind string

const (
	StepClub StepKind = "club"
	StepLoan StepKind = "loan"
)

// Step is one entry in a player's career, in chronological order.
// EndYear is nil for the player's current club.
type Step struct {
	Kind        StepKind `json:"kind"`
	Label       string   `json:"label"`
	Period      string   `json:"period"`
	EndYear     *int     `json:"endYear"`
	Appearances *int     `json:"appearances,omitempty"`
	Goals       *int     `json:"goals,omitempty"`
}

// Puzzle is the immutable content of one Career Path puzzle.
type Puzzle struct {
	Answer string `json:"answer"`
	Steps  []Step `json:"careerSteps"`
}

const (
	minSteps = 3
	maxSteps = 20
)

var errNoAnswer = errors.New("puzzle has no answer")

// Validate checks the puzzle content is playable.
func (p Puzzle) Validate() error {
	if p.Answer == "" {
		return errNoAnswer
	}
	if n := len(p.Steps); n < minSteps || n > maxSteps {
		return fmt.Errorf("puzzle has %d steps, want %d-%d", n, minSteps, maxSteps)
	}
	return nil
}
