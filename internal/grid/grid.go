// Package grid implements The Grid: a 3x3 board where every cell is the
// intersection of a row and a column category, filled by picking players
// that satisfy both.
package grid

import (
	"fmt"

	"github.com/charliearlie/football-iq/internal/category"
)

// Cells is the board size.
const Cells = 9

// Content is the immutable puzzle content. YAxis holds the three row
// categories, XAxis the three column categories. ValidAnswers backs the
// legacy free-text flow only; the typed-selection flow validates against
// the player database instead.
type Content struct {
	XAxis        [3]category.Category `json:"xAxis"`
	YAxis        [3]category.Category `json:"yAxis"`
	ValidAnswers map[int][]string     `json:"validAnswers,omitempty"`
}

// CellCategories is a cell's row/column category pair.
type CellCategories struct {
	Row category.Category `json:"row"`
	Col category.Category `json:"col"`
}

// CellToRowCol maps a linear cell index to board coordinates.
// Indices outside 0..8 are a programming error.
func CellToRowCol(index int) (row, col int, err error) {
	if index < 0 || index >= Cells {
		return 0, 0, fmt.Errorf("cell index %d out of range", index)
	}
	return index / 3, index % 3, nil
}

// Categories resolves a cell index to its row and column categories.
func (c Content) Categories(index int) (CellCategories, error) {
	row, col, err := CellToRowCol(index)
	if err != nil {
		return CellCategories{}, err
	}
	return CellCategories{Row: c.YAxis[row], Col: c.XAxis[col]}, nil
}

// FilledCell records the player placed in a slot. RarityPct is the share
// of attempts that used the same player for this cell, when known.
type FilledCell struct {
	PlayerName      string   `json:"playerName"`
	PlayerID        string   `json:"playerId,omitempty"`
	NationalityCode string   `json:"nationalityCode,omitempty"`
	RarityPct       *float64 `json:"rarityPct,omitempty"`
}
