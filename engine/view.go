package engine

// View is the read-only query surface of a Game. Strategies and other
// observers depend on it instead of the mutable *Game so that state can
// only change through the submit calls.
type View interface {
	// Table shape.
	PlayerCount() int
	HandSize() int
	DeckSize() int
	LowestRank() Rank
	CardsPerSuit() int

	// Progress counters. GameNumber increments on every StartGame,
	// SetNumber is the zero-based Set index within the current Game.
	GameNumber() int
	SetNumber() int
	Phase() Phase

	// Seats and turns. Seats are indices into the current Game's
	// seating order; TurnOrder lists them in this Set's bidding order.
	TurnOrder() []int
	CurrentActor() (int, bool)
	PlayerAt(seat int) PlayerRef

	// Per-player state.
	Hand(seat int) []Slot
	Bid(seat int) (int, bool)
	TricksWon(seat int) int
	Points(seat int) float64

	// Current trick, slots in play order (index 0 is the leader).
	Trick() []Slot
	TrickSeats() []int
	ProvisionalWinner() (seat int, card Card, ok bool)

	// Legality.
	LegalCards(seat int) []Card
	ForbiddenBid(seat int) (int, bool)

	// Resolved tricks of the current Set, oldest first.
	TrickHistory() []TrickRecord
}

var _ View = (*Game)(nil)

// Strategy decides moves for automated players. The engine re-validates
// every returned move through the normal submit path, so a misbehaving
// strategy can produce a rejection but never corrupt state.
type Strategy interface {
	DecideBid(v View, seat int) int
	DecideCard(v View, seat int) Card
}
