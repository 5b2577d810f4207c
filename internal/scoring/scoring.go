// Package scoring holds the pure score formulas for all three games and
// the share-text formatters built on top of them.
package scoring

import "math"

// GameScore is the terminal score of a Career Path attempt.
type GameScore struct {
	Points        int  `json:"points"`
	MaxPoints     int  `json:"maxPoints"`
	StepsRevealed int  `json:"stepsRevealed"`
	Won           bool `json:"won"`
}

// GridScore is the terminal score of a Grid attempt. MaxPoints is always 100.
type GridScore struct {
	Points      int `json:"points"`
	MaxPoints   int `json:"maxPoints"`
	CellsFilled int `json:"cellsFilled"`
}

// GridCells is the number of slots on the 3x3 board.
const GridCells = 9

// CalculateScore computes the Career Path score. A win on the first clue
// earns totalSteps points; every further reveal costs one point, down to
// 1 on the final clue. A loss is always worth exactly 0.
func CalculateScore(totalSteps, revealedCount int, won bool) GameScore {
	s := GameScore{
		MaxPoints:     totalSteps,
		StepsRevealed: revealedCount,
		Won:           won,
	}
	if won {
		s.Points = totalSteps - (revealedCount - 1)
	}
	return s
}

// CalculateGridScore computes partial credit for cellsFilled of the 9
// slots. A full board is pinned to exactly 100 rather than trusting the
// rounded formula to land there.
func CalculateGridScore(cellsFilled int) GridScore {
	if cellsFilled < 0 {
		cellsFilled = 0
	}
	if cellsFilled > GridCells {
		cellsFilled = GridCells
	}
	s := GridScore{MaxPoints: 100, CellsFilled: cellsFilled}
	if cellsFilled == GridCells {
		s.Points = 100
	} else {
		s.Points = int(math.Round(float64(cellsFilled) / GridCells * 100))
	}
	return s
}
