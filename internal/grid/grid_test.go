package grid

import (
	"testing"

	"github.com/charliearlie/football-iq/internal/category"
)

func TestCellToRowCol(t *testing.T) {
	tests := []struct {
		index, row, col int
	}{
		{0, 0, 0}, {1, 0, 1}, {2, 0, 2},
		{3, 1, 0}, {4, 1, 1}, {5, 1, 2},
		{6, 2, 0}, {7, 2, 1}, {8, 2, 2},
	}
	for _, tt := range tests {
		row, col, err := CellToRowCol(tt.index)
		if err != nil || row != tt.row || col != tt.col {
			t.Errorf("CellToRowCol(%d) = (%d, %d, %v), want (%d, %d)", tt.index, row, col, err, tt.row, tt.col)
		}
	}

	for _, bad := range []int{-1, 9, 100} {
		if _, _, err := CellToRowCol(bad); err == nil {
			t.Errorf("CellToRowCol(%d) accepted out-of-range index", bad)
		}
	}
}

func TestContentCategories(t *testing.T) {
	c := testContent()

	got, err := c.Categories(0)
	if err != nil {
		t.Fatalf("Categories(0): %v", err)
	}
	if got.Row != c.YAxis[0] || got.Col != c.XAxis[0] {
		t.Errorf("Categories(0) = %+v", got)
	}

	got, err = c.Categories(5) // row 1, col 2
	if err != nil {
		t.Fatalf("Categories(5): %v", err)
	}
	if got.Row != c.YAxis[1] || got.Col != c.XAxis[2] {
		t.Errorf("Categories(5) = %+v", got)
	}

	if _, err := c.Categories(9); err == nil {
		t.Error("Categories(9) accepted out-of-range index")
	}
}

func testContent() Content {
	return Content{
		XAxis: [3]category.Category{
			{Kind: category.KindClub, Label: "Real Madrid"},
			{Kind: category.KindClub, Label: "Barcelona"},
			{Kind: category.KindClub, Label: "Chelsea"},
		},
		YAxis: [3]category.Category{
			{Kind: category.KindNation, Label: "Brazil"},
			{Kind: category.KindNation, Label: "France"},
			{Kind: category.KindTrophy, Label: "Champions League"},
		},
		ValidAnswers: map[int][]string{
			0: {"Vinicius Junior", "Rodrygo"},
			1: {"Neymar", "Ronaldinho"},
		},
	}
}
