package engine

import (
	"math"
	"testing"
)

// newScoredGame seats n players and installs the given bids and trick
// counts directly, ready for scoreSet.
func newScoredGame(t *testing.T, bids, tricks []int) *Game {
	t.Helper()
	g := New(3, nil)
	g.StartGame(testRefs(len(bids), false))
	for seat, p := range g.players {
		p.bid = bids[seat]
		p.hasBid = true
		p.TricksWon = tricks[seat]
	}
	return g
}

// TestWinnerPointsTable spot-checks the per-winner values, including
// the fractional seven-player entries.
func TestWinnerPointsTable(t *testing.T) {
	tests := []struct {
		players, winners int
		want             float64
	}{
		{2, 1, 5},
		{3, 1, 10},
		{3, 2, 5},
		{4, 1, 12},
		{4, 3, 4},
		{5, 4, 3},
		{6, 1, 15},
		{7, 2, 7.5},
		{7, 4, 4.5},
		{7, 6, 2.5},
	}
	for _, tt := range tests {
		if got := WinnerPoints(tt.players, tt.winners); got != tt.want {
			t.Errorf("WinnerPoints(%d, %d) = %v, want %v", tt.players, tt.winners, got, tt.want)
		}
	}
}

// TestWinnerPointsPanics verifies lookups outside the table fail fast.
func TestWinnerPointsPanics(t *testing.T) {
	tests := []struct{ players, winners int }{
		{8, 1},
		{4, 4},
		{4, 0},
	}
	for _, tt := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("WinnerPoints(%d, %d) did not panic", tt.players, tt.winners)
				}
			}()
			WinnerPoints(tt.players, tt.winners)
		}()
	}
}

// TestScoreSetSingleWinner verifies the winner gains the table value
// and the losers split that total.
func TestScoreSetSingleWinner(t *testing.T) {
	g := newScoredGame(t, []int{1, 0, 2, 0}, []int{1, 1, 1, 2})
	g.scoreSet()

	if got := g.Points(0); got != 12 {
		t.Errorf("winner points = %v, want 12", got)
	}
	for seat := 1; seat < 4; seat++ {
		if got := g.Points(seat); got != -4 {
			t.Errorf("loser %d points = %v, want -4", seat, got)
		}
	}
	if delta, ok := g.LastDelta(0); !ok || delta != 12 {
		t.Errorf("LastDelta(0) = %v, %v, want 12, true", delta, ok)
	}
}

// TestScoreSetNoWinners verifies no points move when everyone missed.
func TestScoreSetNoWinners(t *testing.T) {
	g := newScoredGame(t, []int{1, 1, 1}, []int{0, 0, 3})
	g.scoreSet()

	for seat := 0; seat < 3; seat++ {
		if got := g.Points(seat); got != 0 {
			t.Errorf("seat %d points = %v, want 0", seat, got)
		}
		if delta, ok := g.LastDelta(seat); !ok || delta != 0 {
			t.Errorf("LastDelta(%d) = %v, %v, want 0, true", seat, delta, ok)
		}
	}
}

// TestScoreSetZeroSum verifies every table entry settles to zero across
// the whole table.
func TestScoreSetZeroSum(t *testing.T) {
	for players := MinPlayers; players <= MaxPlayers; players++ {
		for winners := 1; winners < players; winners++ {
			bids := make([]int, players)
			tricks := make([]int, players)
			for seat := winners; seat < players; seat++ {
				tricks[seat] = 1 // bid 0, took a trick: loser
			}
			g := newScoredGame(t, bids, tricks)
			g.scoreSet()

			var sum float64
			for seat := 0; seat < players; seat++ {
				sum += g.Points(seat)
			}
			if math.Abs(sum) > 1e-9 {
				t.Errorf("players=%d winners=%d: point sum = %v, want 0", players, winners, sum)
			}
		}
	}
}
