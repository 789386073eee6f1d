package engine

import "sort"

// Deck parameters: the full 52-card deck is used above three players, a
// 32-card deck (ranks 7..A) otherwise. The whole deck identity matters
// for probability reasoning, not just the cards still in play.

const (
	fullDeckLowRank  Rank = 2
	smallDeckLowRank Rank = 7
	maxHandSize           = 10
)

// buildDeck returns the card universe for the given player count.
func buildDeck(playerCount int) []Card {
	low := fullDeckLowRank
	if playerCount <= 3 {
		low = smallDeckLowRank
	}
	deck := make([]Card, 0, int(RankAce-low+1)*NumSuits)
	for suit := Suit(0); suit < NumSuits; suit++ {
		for rank := low; rank <= RankAce; rank++ {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// shuffledDeck returns a fresh permutation of the deck using the Game's
// xorshift stream. Fisher-Yates.
func (g *Game) shuffledDeck() []Card {
	deck := make([]Card, len(g.deck))
	copy(deck, g.deck)
	for i := len(deck) - 1; i > 0; i-- {
		j := int(g.randN(uint64(i + 1)))
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}

// displayLess orders cards by rank, breaking ties with the fixed suit
// display order. Suit never affects play legality.
func displayLess(a, b Card) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Suit < b.Suit
}

// sortCards sorts cards in display order, lowest first.
func sortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return displayLess(cards[i], cards[j])
	})
}

func (g *Game) nextRand() uint64 {
	x := g.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.rng = x
	return x
}

// randN returns a random number in [0, n).
func (g *Game) randN(n uint64) uint64 {
	return g.nextRand() % n
}
