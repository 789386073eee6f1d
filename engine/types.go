package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Suit of a playing card. The declaration order is the fixed display
// order used to break rank ties when hands are sorted.
type Suit uint8

const (
	SuitClubs Suit = iota
	SuitDiamonds
	SuitSpades
	SuitHearts
)

// TrumpSuit is permanent: Hearts beats any other suit regardless of rank.
const TrumpSuit = SuitHearts

// NumSuits is the number of suits in any deck.
const NumSuits = 4

func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "C"
	case SuitDiamonds:
		return "D"
	case SuitSpades:
		return "S"
	case SuitHearts:
		return "H"
	default:
		return "?"
	}
}

// Rank of a playing card, 2 through 14 (Ace high).
type Rank uint8

const (
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
	RankAce   Rank = 14
)

func (r Rank) String() string {
	switch r {
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	default:
		return fmt.Sprintf("%d", uint8(r))
	}
}

// Card is an immutable rank/suit pair, compared by value.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Beats reports whether c wins over other in a trick. A card wins over
// the running winner iff it is the same suit with a higher rank, or it
// is trump and the running winner is not.
func (c Card) Beats(other Card) bool {
	if c.Suit == other.Suit {
		return c.Rank > other.Rank
	}
	return c.Suit == TrumpSuit
}

// Slot is one card position in a hand or a trick. A hand slot empties
// when its card is played; a trick slot fills when its player acts.
// The zero value is the empty slot.
type Slot struct {
	card   Card
	filled bool
}

// SlotOf returns a slot holding the given card.
func SlotOf(c Card) Slot {
	return Slot{card: c, filled: true}
}

// Card returns the held card, if any.
func (s Slot) Card() (Card, bool) {
	return s.card, s.filled
}

// HasCard reports whether the slot holds a card.
func (s Slot) HasCard() bool { return s.filled }

// FairnessMark records a seat's progress through the fairness cycle of
// the structurally disadvantaged last-bidder seat.
type FairnessMark uint8

const (
	FairnessUnset FairnessMark = iota
	FairnessServed
	FairnessPending
)

func (m FairnessMark) String() string {
	switch m {
	case FairnessUnset:
		return "unset"
	case FairnessServed:
		return "served"
	case FairnessPending:
		return "pending"
	default:
		return "?"
	}
}

// PlayerRef identifies a participant handed to StartGame. Eligibility
// filtering happens outside the engine.
type PlayerRef struct {
	ID    uuid.UUID
	Name  string
	IsBot bool
}

// Player is the per-player game state. It persists across Games; bid
// and trick counters reset at each Set, the hand is replaced at each
// deal.
type Player struct {
	Ref       PlayerRef
	Hand      []Slot
	TricksWon int
	Points    float64
	Fairness  FairnessMark

	bid    int
	hasBid bool

	lastDelta    float64
	hasLastDelta bool
}

// Bid returns the player's bid for the current Set, if placed.
func (p *Player) Bid() (int, bool) { return p.bid, p.hasBid }

// LastDelta returns the points movement of the most recently scored
// Set, if any Set has been scored since the player joined.
func (p *Player) LastDelta() (float64, bool) { return p.lastDelta, p.hasLastDelta }

// heldCards returns the cards still in hand, in slot order.
func (p *Player) heldCards() []Card {
	cards := make([]Card, 0, len(p.Hand))
	for _, s := range p.Hand {
		if c, ok := s.Card(); ok {
			cards = append(cards, c)
		}
	}
	return cards
}

// holdsSuit reports whether any held card is of the given suit.
func (p *Player) holdsSuit(suit Suit) bool {
	for _, s := range p.Hand {
		if c, ok := s.Card(); ok && c.Suit == suit {
			return true
		}
	}
	return false
}

// holds reports whether the given card is still in hand.
func (p *Player) holds(card Card) bool {
	for _, s := range p.Hand {
		if c, ok := s.Card(); ok && c == card {
			return true
		}
	}
	return false
}

// Phase of the Set state machine.
type Phase uint8

const (
	// PhaseIdle: StartGame has seated players, no Set dealt yet.
	PhaseIdle Phase = iota
	// PhaseBidding: waiting for bids in turn order.
	PhaseBidding
	// PhasePlaying: tricks in progress.
	PhasePlaying
	// PhaseSetDone: a Set has been scored, the next one awaits StartSet.
	PhaseSetDone
	// PhaseGameOver: the final 1-card Set has been scored; only
	// StartGame may continue.
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBidding:
		return "bidding"
	case PhasePlaying:
		return "playing"
	case PhaseSetDone:
		return "set-done"
	case PhaseGameOver:
		return "game-over"
	default:
		return "?"
	}
}

// Rejection errors. A rejected move leaves state unchanged.
var (
	ErrWrongPhase   = errors.New("operation not valid in current phase")
	ErrNotYourTurn  = errors.New("not this player's turn")
	ErrIllegalBid   = errors.New("bid outside the 0..handSize range")
	ErrForbiddenBid = errors.New("last bid may not make the bid sum equal the hand size")
	ErrIllegalCard  = errors.New("card is not a legal play")

	// ErrGameExhausted signals that the hand-size schedule has run out;
	// the caller must start a new Game.
	ErrGameExhausted = errors.New("game exhausted: hand size schedule complete")
)

// TrickRecord is one resolved trick of the current Set, in play order.
type TrickRecord struct {
	Leader int    // seat that led
	Seats  []int  // seats in play order, Seats[0] == Leader
	Cards  []Card // cards in play order
	Winner int    // seat that took the trick
}
