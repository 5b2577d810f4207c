// Package category resolves grid categories ("Brazil", "Real Madrid",
// "Champions League", "100+ Goals") against player data. Unresolvable
// labels fail closed: a puzzle-authoring typo makes a cell unwinnable,
// never crashes a session and never falsely accepts a guess.
package category

// Kind discriminates how a category label is interpreted.
type Kind string

const (
	KindClub   Kind = "club"
	KindNation Kind = "nation"
	KindTrophy Kind = "trophy"
	KindStat   Kind = "stat"
)

// Category is one axis entry of a 3x3 grid puzzle.
type Category struct {
	Kind  Kind   `json:"kind"`
	Label string `json:"label"`
}

// MatchedCriteria reports which of the two cell predicates a player
// satisfied. Present only when the player was found at all.
type MatchedCriteria struct {
	Row bool `json:"row"`
	Col bool `json:"col"`
}

// CellValidation is the result of the dual-criterion cell check.
type CellValidation struct {
	Valid   bool             `json:"isValid"`
	Matched *MatchedCriteria `json:"matchedCriteria,omitempty"`
}
