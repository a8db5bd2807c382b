package server

import (
	"fmt"
	"slices"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/tomz197/roadrush/internal/loop/config"
)

// Run is a finished game on the best runs board.
type Run struct {
	Username string
	Score    int
	Distance int
	Combo    int
	At       time.Time
	clientID int // Used for deterministic tie-break when scores are equal
}

// Board keeps the top runs, best first.
type Board struct {
	limit int
	runs  []Run
}

// NewBoard creates a board holding at most limit runs.
func NewBoard(limit int) *Board {
	return &Board{limit: limit}
}

// Add inserts run and reports whether it made the board.
func (b *Board) Add(run Run) bool {
	if b.limit <= 0 {
		return false
	}
	i, _ := slices.BinarySearchFunc(b.runs, run, compareRuns)
	if i >= b.limit {
		return false
	}
	b.runs = slices.Insert(b.runs, i, run)
	if len(b.runs) > b.limit {
		b.runs = b.runs[:b.limit]
	}
	return true
}

// Runs returns a copy of the board.
func (b *Board) Runs() []Run {
	return slices.Clone(b.runs)
}

// compareRuns orders by score, then distance, then the earlier session.
func compareRuns(a, b Run) int {
	switch {
	case a.Score != b.Score:
		return b.Score - a.Score
	case a.Distance != b.Distance:
		return b.Distance - a.Distance
	}
	return a.clientID - b.clientID
}

// BoardLines formats runs for the menu panels. Names are cut and padded by
// display width. No runs gives no lines.
func BoardLines(runs []Run) []string {
	if len(runs) == 0 {
		return nil
	}
	lines := []string{"", "BEST RUNS"}
	for i, r := range runs {
		name := runewidth.Truncate(r.Username, config.MaxUsernameLength, "")
		name = runewidth.FillRight(name, config.MaxUsernameLength)
		lines = append(lines, fmt.Sprintf("%d. %s %7d  %5dm", i+1, name, r.Score, r.Distance))
	}
	return lines
}
