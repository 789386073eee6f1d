// Package engine implements the rules of the trick-prediction card
// game: deal progression across Games, Sets and Tricks, bid and play
// legality, trick resolution, scoring and the fairness rotation of the
// last-bidder seat.
//
// The engine is synchronous and single-threaded by contract. It holds
// no locks and no process-wide state; serializing calls against one
// Game is the caller's job.
package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// MinPlayers and MaxPlayers bound the supported table size; the scoring
// table covers exactly this range.
const (
	MinPlayers = 2
	MaxPlayers = 7
)

// Game owns the authoritative state of one table. Players persist
// across Games (points, fairness marks); everything else is rebuilt at
// Game, Set and Trick boundaries.
type Game struct {
	players  []*Player // current Game seating; index = seat
	byID     map[uuid.UUID]*Player
	strategy Strategy
	rng      uint64

	deck []Card

	gameNum         int
	setNum          int
	initialHandSize int
	handSize        int
	phase           Phase

	bidTurn int // position in the Set's bidding order

	trickIdx   int
	trick      []Slot
	trickSeats []int // seats in play order, trickSeats[0] leads
	trickPos   int   // filled slots in the current trick
	winnerPos  int   // provisional winner's position, -1 when empty
	history    []TrickRecord
}

// New creates an empty table. strategy decides moves for bot players
// and may be nil when an external driver submits every move itself.
func New(seed uint64, strategy Strategy) *Game {
	if seed == 0 {
		seed = 1 // xorshift can't start at 0
	}
	return &Game{
		byID:     make(map[uuid.UUID]*Player),
		strategy: strategy,
		rng:      seed,
		phase:    PhaseGameOver,
	}
}

// StartGame seats the given players and prepares the hand-size
// schedule. Returning players (matched by ID) keep their points and
// fairness marks. The seat predicted to bid last in the Game's final
// 1-card Set is chosen by the fairness rotation and marked Pending;
// that mark converts to Served on the following StartGame.
//
// Panics on an unsupported player count or a duplicate player ID; both
// are programming errors, not game states.
func (g *Game) StartGame(refs []PlayerRef) {
	n := len(refs)
	if n < MinPlayers || n > MaxPlayers {
		panic(fmt.Sprintf("engine: unsupported player count %d", n))
	}

	for _, p := range g.byID {
		if p.Fairness == FairnessPending {
			p.Fairness = FairnessServed
		}
	}

	seen := make(map[uuid.UUID]bool, n)
	g.players = make([]*Player, n)
	for i, ref := range refs {
		if seen[ref.ID] {
			panic(fmt.Sprintf("engine: duplicate player %s", ref.ID))
		}
		seen[ref.ID] = true
		p := g.byID[ref.ID]
		if p == nil {
			p = &Player{Ref: ref}
			g.byID[ref.ID] = p
		}
		p.Ref = ref
		g.players[i] = p
	}

	g.deck = buildDeck(n)
	g.initialHandSize = len(g.deck) / n
	if g.initialHandSize > maxHandSize {
		g.initialHandSize = maxHandSize
	}

	g.rotateForFairness()

	g.gameNum++
	g.setNum = 0
	g.handSize = 0
	g.history = nil
	g.phase = PhaseIdle
}

// rotateForFairness rotates the seating until the seat predicted to be
// the final Set's last bidder has not yet served in the current
// fairness cycle, then marks it Pending. A full scan of Served seats
// resets every mark and starts a new cycle.
func (g *Game) rotateForFairness() {
	n := len(g.players)
	rotations := 0
	for {
		cand := g.players[(g.initialHandSize-1+n-1)%n]
		if cand.Fairness != FairnessServed {
			cand.Fairness = FairnessPending
			return
		}
		g.players = append(g.players[1:], g.players[0])
		rotations++
		if rotations == n {
			for _, p := range g.players {
				p.Fairness = FairnessUnset
			}
		}
	}
}

// StartSet deals the next Set and enters Bidding. Valid after StartGame
// or after the previous Set finished; once the schedule is exhausted it
// returns ErrGameExhausted and only StartGame may continue.
func (g *Game) StartSet() error {
	switch g.phase {
	case PhaseIdle, PhaseSetDone:
	case PhaseGameOver:
		return ErrGameExhausted
	default:
		return ErrWrongPhase
	}

	g.handSize = g.initialHandSize - g.setNum
	g.deal()

	for _, p := range g.players {
		p.hasBid = false
		p.TricksWon = 0
	}

	g.history = nil
	g.trickIdx = 0
	g.bidTurn = 0
	g.phase = PhaseBidding

	return g.runBots()
}

// deal hands out handSize cards per player from a fresh shuffle, in
// this Set's turn order, and sorts each hand in display order.
func (g *Game) deal() {
	deck := g.shuffledDeck()
	n := len(g.players)
	for pos := 0; pos < n; pos++ {
		cards := make([]Card, g.handSize)
		for i := 0; i < g.handSize; i++ {
			cards[i] = deck[i*n+pos]
		}
		sortCards(cards)
		hand := make([]Slot, g.handSize)
		for i, c := range cards {
			hand[i] = SlotOf(c)
		}
		g.players[g.seatAt(pos)].Hand = hand
	}
}

// seatAt maps a position in this Set's turn order to a seat. The turn
// order is the Game seating rotated by one per Set.
func (g *Game) seatAt(pos int) int {
	return (g.setNum + pos) % len(g.players)
}

// beginTrick resets the trick slots with the given seat leading.
func (g *Game) beginTrick(leader int) {
	n := len(g.players)
	g.trick = make([]Slot, n)
	g.trickSeats = make([]int, n)
	for i := 0; i < n; i++ {
		g.trickSeats[i] = (leader + i) % n
	}
	g.trickPos = 0
	g.winnerPos = -1
}

// ---------------------------------------------------------------------------
// Queries (the View interface)
// ---------------------------------------------------------------------------

// PlayerCount returns the number of seated players.
func (g *Game) PlayerCount() int { return len(g.players) }

// HandSize returns the current Set's hand size, 0 before the first deal.
func (g *Game) HandSize() int { return g.handSize }

// DeckSize returns the size of the full deck in use (52 or 32).
func (g *Game) DeckSize() int { return len(g.deck) }

// LowestRank returns the lowest rank in the deck in use.
func (g *Game) LowestRank() Rank {
	if len(g.players) <= 3 {
		return smallDeckLowRank
	}
	return fullDeckLowRank
}

// CardsPerSuit returns how many cards of each suit the deck holds.
func (g *Game) CardsPerSuit() int { return len(g.deck) / NumSuits }

// GameNumber increments on every StartGame, starting at 1.
func (g *Game) GameNumber() int { return g.gameNum }

// SetNumber is the zero-based index of the current Set.
func (g *Game) SetNumber() int { return g.setNum }

// Phase returns the current phase of the Set state machine.
func (g *Game) Phase() Phase { return g.phase }

// GameOver reports whether the hand-size schedule is exhausted.
func (g *Game) GameOver() bool { return g.phase == PhaseGameOver }

// TurnOrder lists the seats in this Set's bidding order.
func (g *Game) TurnOrder() []int {
	order := make([]int, len(g.players))
	for i := range order {
		order[i] = g.seatAt(i)
	}
	return order
}

// CurrentActor returns the seat expected to act, if any.
func (g *Game) CurrentActor() (int, bool) {
	switch g.phase {
	case PhaseBidding:
		return g.seatAt(g.bidTurn), true
	case PhasePlaying:
		if g.trickPos < len(g.trickSeats) {
			return g.trickSeats[g.trickPos], true
		}
		return 0, false
	default:
		return 0, false
	}
}

// PlayerAt returns the reference of the player in the given seat.
func (g *Game) PlayerAt(seat int) PlayerRef { return g.players[seat].Ref }

// FairnessOf returns the fairness mark of the given seat.
func (g *Game) FairnessOf(seat int) FairnessMark { return g.players[seat].Fairness }

// Hand returns a copy of the seat's hand slots.
func (g *Game) Hand(seat int) []Slot {
	return append([]Slot(nil), g.players[seat].Hand...)
}

// Bid returns the seat's bid for this Set, if placed.
func (g *Game) Bid(seat int) (int, bool) { return g.players[seat].Bid() }

// TricksWon returns the seat's trick count of this Set.
func (g *Game) TricksWon(seat int) int { return g.players[seat].TricksWon }

// Points returns the seat's accumulated points.
func (g *Game) Points(seat int) float64 { return g.players[seat].Points }

// LastDelta returns the seat's points movement of the last scored Set.
func (g *Game) LastDelta(seat int) (float64, bool) { return g.players[seat].LastDelta() }

// Trick returns a copy of the current trick's slots in play order.
func (g *Game) Trick() []Slot {
	return append([]Slot(nil), g.trick...)
}

// TrickSeats returns the seats of the current trick in play order.
func (g *Game) TrickSeats() []int {
	return append([]int(nil), g.trickSeats...)
}

// TricksPlayed returns how many tricks of this Set have resolved.
func (g *Game) TricksPlayed() int { return len(g.history) }

// ProvisionalWinner returns the seat and card currently winning the
// trick in progress. ok is false while the trick is empty.
func (g *Game) ProvisionalWinner() (int, Card, bool) {
	if g.winnerPos < 0 || g.phase != PhasePlaying {
		return 0, Card{}, false
	}
	c, _ := g.trick[g.winnerPos].Card()
	return g.trickSeats[g.winnerPos], c, true
}

// TrickHistory returns the resolved tricks of the current Set, oldest
// first.
func (g *Game) TrickHistory() []TrickRecord {
	return append([]TrickRecord(nil), g.history...)
}

// ForbiddenBid returns the single bid value the given seat may not
// place. ok only when that seat is the Set's last bidder and it is its
// turn; every other bidder may pick any value in range.
func (g *Game) ForbiddenBid(seat int) (int, bool) {
	if g.phase != PhaseBidding || g.bidTurn != len(g.players)-1 || g.seatAt(g.bidTurn) != seat {
		return 0, false
	}
	sum := 0
	for _, p := range g.players {
		if bid, ok := p.Bid(); ok {
			sum += bid
		}
	}
	return g.handSize - sum, true
}
