// Package bot implements the automated-player strategy: per-opponent
// suit-void tracking under hidden information and a target-matching
// card selector that aims to hit the bid exactly rather than to win as
// many tricks as possible.
package bot

import engine "github.com/michal-laska/nazdar-baby/engine"

// OpponentModel is the belief state about one opponent: the set of
// suits it might still hold. It starts full at every Set and only
// shrinks as plays reveal information.
type OpponentModel struct {
	possible [engine.NumSuits]bool
}

func newOpponentModel() *OpponentModel {
	m := &OpponentModel{}
	for i := range m.possible {
		m.possible[i] = true
	}
	return m
}

// MightHold reports whether the opponent may still hold the suit.
func (m *OpponentModel) MightHold(s engine.Suit) bool { return m.possible[s] }

// MarkVoid records that the opponent cannot hold the suit.
func (m *OpponentModel) MarkVoid(s engine.Suit) { m.possible[s] = false }

// memory is one bot seat's knowledge of the current Set: every card
// seen leaving a hand plus a belief model per opponent.
type memory struct {
	playedOut  map[engine.Card]bool
	opponents  map[int]*OpponentModel
	tricksSeen int
}

func newMemory(v engine.View, seat int) *memory {
	m := &memory{
		playedOut: make(map[engine.Card]bool),
		opponents: make(map[int]*OpponentModel),
	}
	for _, s := range v.TurnOrder() {
		if s != seat {
			m.opponents[s] = newOpponentModel()
		}
	}
	return m
}

// sync folds every trick not yet seen into the memory, then scans the
// trick in progress. Reprocessing the live trick is harmless: the
// played-out set deduplicates and void marks only shrink.
func (m *memory) sync(v engine.View) {
	hist := v.TrickHistory()
	for ; m.tricksSeen < len(hist); m.tricksSeen++ {
		rec := hist[m.tricksSeen]
		m.observe(rec.Seats, rec.Cards)
	}

	seats := v.TrickSeats()
	var cards []engine.Card
	for _, slot := range v.Trick() {
		c, ok := slot.Card()
		if !ok {
			break
		}
		cards = append(cards, c)
	}
	if len(cards) > 0 {
		m.observe(seats[:len(cards)], cards)
	}
}

// observe records a trick's cards and applies the void deductions: a
// player who plays off the leading suit holds none of it, and if the
// off-suit card is not trump the follow rule proves it holds no trump
// either.
func (m *memory) observe(seats []int, cards []engine.Card) {
	lead := cards[0].Suit
	for i, c := range cards {
		m.playedOut[c] = true
		if i == 0 {
			continue
		}
		om := m.opponents[seats[i]]
		if om == nil || c.Suit == lead {
			continue
		}
		om.MarkVoid(lead)
		if c.Suit != engine.TrumpSuit {
			om.MarkVoid(engine.TrumpSuit)
		}
	}
}

// noteExhausted marks every opponent void in suits whose full deck
// allotment is accounted for by played-out cards plus the bot's hand.
func (m *memory) noteExhausted(v engine.View, hand []engine.Card) {
	per := v.CardsPerSuit()
	for suit := engine.Suit(0); suit < engine.NumSuits; suit++ {
		if m.knownInSuit(hand, suit) == per {
			for _, om := range m.opponents {
				om.MarkVoid(suit)
			}
		}
	}
}

// knownInSuit counts the cards of a suit the bot can account for:
// played out or in its own hand. The two sets never overlap.
func (m *memory) knownInSuit(hand []engine.Card, suit engine.Suit) int {
	n := 0
	for c := range m.playedOut {
		if c.Suit == suit {
			n++
		}
	}
	for _, c := range hand {
		if c.Suit == suit {
			n++
		}
	}
	return n
}

func (m *memory) knownAbove(hand []engine.Card, card engine.Card) int {
	n := 0
	for c := range m.playedOut {
		if c.Suit == card.Suit && c.Rank > card.Rank {
			n++
		}
	}
	for _, c := range hand {
		if c.Suit == card.Suit && c.Rank > card.Rank {
			n++
		}
	}
	return n
}

func (m *memory) knownBelow(hand []engine.Card, card engine.Card) int {
	n := 0
	for c := range m.playedOut {
		if c.Suit == card.Suit && c.Rank < card.Rank {
			n++
		}
	}
	for _, c := range hand {
		if c.Suit == card.Suit && c.Rank < card.Rank {
			n++
		}
	}
	return n
}

// isHighestRemaining reports whether the card is provably the highest
// of its suit still in play, and not already beaten by the trick's
// provisional winner.
func (m *memory) isHighestRemaining(v engine.View, hand []engine.Card, card engine.Card) bool {
	if _, w, ok := v.ProvisionalWinner(); ok && w.Beats(card) {
		return false
	}
	return m.knownAbove(hand, card) == int(engine.RankAce)-int(card.Rank)
}

// isLowestRemaining reports whether the card is provably the lowest of
// its suit still in play.
func (m *memory) isLowestRemaining(v engine.View, hand []engine.Card, card engine.Card) bool {
	return m.knownBelow(hand, card) == int(card.Rank)-int(v.LowestRank())
}

// remainingOpponents returns the models of opponents still to act in
// the trick in progress, or of every opponent outside a trick.
func (m *memory) remainingOpponents(v engine.View, seat int) []*OpponentModel {
	if v.Phase() == engine.PhasePlaying {
		seats := v.TrickSeats()
		played := 0
		for _, slot := range v.Trick() {
			if slot.HasCard() {
				played++
			}
		}
		var out []*OpponentModel
		for _, s := range seats[played:] {
			if om := m.opponents[s]; om != nil {
				out = append(out, om)
			}
		}
		return out
	}
	out := make([]*OpponentModel, 0, len(m.opponents))
	for _, om := range m.opponents {
		out = append(out, om)
	}
	return out
}

// othersVoidOfTrump reports whether no relevant opponent can still hold
// trump, so a trump card in hand is a sure trick unless the trick's
// provisional winner already beats it.
func (m *memory) othersVoidOfTrump(v engine.View, seat int, card engine.Card) bool {
	if _, w, ok := v.ProvisionalWinner(); ok && w.Beats(card) {
		return false
	}
	for _, om := range m.remainingOpponents(v, seat) {
		if om.MightHold(engine.TrumpSuit) {
			return false
		}
	}
	return true
}

// suitCanWin reports whether no opponent still to act is known to be
// void of the suit while possibly holding trump.
func (m *memory) suitCanWin(v engine.View, seat int, suit engine.Suit) bool {
	for _, om := range m.remainingOpponents(v, seat) {
		if !om.MightHold(suit) && om.MightHold(engine.TrumpSuit) {
			return false
		}
	}
	return true
}

// suitCanLose reports whether some opponent still to act might beat a
// card of the suit, by following it or by trumping.
func (m *memory) suitCanLose(v engine.View, seat int, suit engine.Suit) bool {
	for _, om := range m.remainingOpponents(v, seat) {
		if om.MightHold(suit) || om.MightHold(engine.TrumpSuit) {
			return true
		}
	}
	return false
}

// noGaps reports whether the legal cards all share one suit and the
// known cards of that suit form an unbroken rank run across them, so
// the choice carries no information and any pick is equivalent.
// legal must be sorted ascending.
func (m *memory) noGaps(legal []engine.Card) bool {
	suit := legal[0].Suit
	for _, c := range legal[1:] {
		if c.Suit != suit {
			return false
		}
	}
	low := legal[0].Rank
	high := legal[len(legal)-1].Rank
	gaps := int(high) - int(low) - len(legal) + 1
	if gaps == 0 {
		return true
	}
	seen := 0
	for c := range m.playedOut {
		if c.Suit == suit && c.Rank > low && c.Rank < high {
			seen++
		}
	}
	return seen == gaps
}
