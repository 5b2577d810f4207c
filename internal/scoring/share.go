package scoring

import (
	"fmt"
	"strings"
)

// FormatScore renders the Career Path share line, e.g. "Score: 8/10".
func FormatScore(s GameScore) string {
	return fmt.Sprintf("Score: %d/%d", s.Points, s.MaxPoints)
}

// FormatReveals renders the clue-usage line, e.g. "3 of 8 clubs revealed".
func FormatReveals(s GameScore) string {
	return fmt.Sprintf("%d of %d clubs revealed", s.StepsRevealed, s.MaxPoints)
}

// FormatGridShare renders the emoji board for The Grid: one row per grid
// row, filled cells green, empty cells white, followed by the score line.
func FormatGridShare(filled [GridCells]bool, s GridScore) string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if filled[row*3+col] {
				b.WriteString("🟩")
			} else {
				b.WriteString("⬜")
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Score: %d/%d", s.Points, s.MaxPoints)
	return b.String()
}

// FormatLineupShare renders the Starting XI share line, e.g.
// "7 of 8 players found".
func FormatLineupShare(found, hidden int) string {
	return fmt.Sprintf("%d of %d players found", found, hidden)
}
