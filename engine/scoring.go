package engine

import "fmt"

// winnerPointsTable maps playerCount → winnerCount → points per winner.
// Losers split the winners' total equally, so every Set is zero-sum.
var winnerPointsTable = map[int]map[int]float64{
	2: {1: 5},
	3: {1: 10, 2: 5},
	4: {1: 12, 2: 6, 3: 4},
	5: {1: 12, 2: 6, 3: 4, 4: 3},
	6: {1: 15, 2: 8, 3: 5, 4: 4, 5: 3},
	7: {1: 15, 2: 7.5, 3: 6, 4: 4.5, 5: 3, 6: 2.5},
}

// WinnerPoints returns the points each winner gains in a Set with the
// given table size and winner count. Panics outside the supported
// range: a lookup that cannot be satisfied is a programming error, not
// a recoverable condition.
func WinnerPoints(playerCount, winnerCount int) float64 {
	row, ok := winnerPointsTable[playerCount]
	if !ok {
		panic(fmt.Sprintf("engine: no scoring table for %d players", playerCount))
	}
	points, ok := row[winnerCount]
	if !ok {
		panic(fmt.Sprintf("engine: no scoring entry for %d winners of %d players", winnerCount, playerCount))
	}
	return points
}

// scoreSet settles the finished Set: a player wins iff tricksWon equals
// its bid exactly. Winners gain the table value; losers split the
// winners' total equally. With no winners (or, were it reachable, no
// losers) no points move. The last-bidder rule guarantees at least one
// loser whenever anyone wins.
func (g *Game) scoreSet() {
	winners := 0
	for _, p := range g.players {
		if bid, ok := p.Bid(); ok && bid == p.TricksWon {
			winners++
		}
	}
	losers := len(g.players) - winners

	var winDelta, loseDelta float64
	if winners > 0 && losers > 0 {
		winDelta = WinnerPoints(len(g.players), winners)
		loseDelta = -(float64(winners) * winDelta) / float64(losers)
	}

	for _, p := range g.players {
		delta := loseDelta
		if bid, ok := p.Bid(); ok && bid == p.TricksWon {
			delta = winDelta
		}
		p.Points += delta
		p.lastDelta = delta
		p.hasLastDelta = true
	}
}
