package bot

import (
	"math"
	"math/rand"

	engine "github.com/michal-laska/nazdar-baby/engine"
)

// Strategy implements engine.Strategy. One instance serves every bot
// seat at a table; memories are kept per seat and rebuilt at each Set.
// All tie-breaks draw from the seeded rng, so runs are reproducible.
type Strategy struct {
	rng *rand.Rand
	mem map[int]*memory

	gameNum int
	setNum  int
}

var _ engine.Strategy = (*Strategy)(nil)

// New returns a strategy with a seeded tie-break stream.
func New(seed int64) *Strategy {
	return &Strategy{
		rng: rand.New(rand.NewSource(seed)),
		mem: make(map[int]*memory),
	}
}

// memoryFor returns the seat's memory of the current Set, creating or
// discarding memories as Set boundaries pass, and brings it up to date
// with the trick history.
func (s *Strategy) memoryFor(v engine.View, seat int) *memory {
	if v.GameNumber() != s.gameNum || v.SetNumber() != s.setNum {
		s.mem = make(map[int]*memory)
		s.gameNum = v.GameNumber()
		s.setNum = v.SetNumber()
	}
	m := s.mem[seat]
	if m == nil {
		m = newMemory(v, seat)
		s.mem[seat] = m
	}
	m.sync(v)
	return m
}

// DecideBid estimates the tricks the hand will take and rounds down,
// nudging off the forbidden last-bidder value when needed: up when the
// raw estimate exceeded the floor (or the floor is 0), down otherwise.
func (s *Strategy) DecideBid(v engine.View, seat int) int {
	m := s.memoryFor(v, seat)
	raw := s.estimate(v, seat, m)
	bid := int(raw)
	if forbidden, ok := v.ForbiddenBid(seat); ok && bid == forbidden {
		if raw > float64(bid) || bid == 0 {
			bid++
		} else {
			bid--
		}
	}
	return bid
}

// estimate scores each held card's chance of taking a trick and sums.
// The threshold is the rank above which a card is assumed to win
// outright: highest rank − cardsPerSuit/playerCount + 1.
func (s *Strategy) estimate(v engine.View, seat int, m *memory) float64 {
	hand := heldCards(v, seat)
	threshold := float64(engine.RankAce) - float64(v.CardsPerSuit())/float64(v.PlayerCount()) + 1

	var guess float64
	for _, c := range hand {
		diff := threshold - float64(c.Rank)
		switch {
		case float64(c.Rank) > threshold || m.isHighestRemaining(v, hand, c):
			guess++
		case c.Suit == engine.TrumpSuit:
			switch {
			case m.othersVoidOfTrump(v, seat, c):
				guess++
			case diff < 1:
				guess += math.Max(diff, 0.5)
			default:
				guess += 0.5
			}
		case diff < 1:
			guess += diff
		}
	}
	return guess
}

// DecideCard picks a legal card for the seat. With one legal card or a
// gap-free run the choice is forced or indifferent; otherwise the
// strategy compares a live re-estimate against the tricks still needed
// and hunts the trick or ducks it.
func (s *Strategy) DecideCard(v engine.View, seat int) engine.Card {
	m := s.memoryFor(v, seat)
	hand := heldCards(v, seat)
	m.noteExhausted(v, hand)

	legal := v.LegalCards(seat)
	if len(legal) == 1 {
		return legal[0]
	}
	if m.noGaps(legal) {
		return legal[s.rng.Intn(len(legal))]
	}

	bid, _ := v.Bid(seat)
	needed := bid - v.TricksWon(seat)
	switch {
	case needed < 0:
		return s.seekLoss(v, seat, m, hand, legal)
	case len(hand) < needed:
		return s.seekWin(v, seat, m, hand, legal)
	case s.estimate(v, seat, m) > float64(needed):
		return s.seekLoss(v, seat, m, hand, legal)
	default:
		return s.seekWin(v, seat, m, hand, legal)
	}
}

// seekWin plays for the trick: a provably highest remaining card if one
// is held, preferring suits no later opponent can trump, tie-broken
// toward the suit with the fewest known cards. Failing that, the last
// player to act takes the trick with the smallest card that beats the
// current winner; otherwise the lowest legal card is released.
func (s *Strategy) seekWin(v engine.View, seat int, m *memory, hand, legal []engine.Card) engine.Card {
	_, winner, hasWinner := v.ProvisionalWinner()

	var safe []engine.Card
	for _, c := range legal {
		if m.isHighestRemaining(v, hand, c) {
			safe = append(safe, c)
		}
	}
	if len(safe) > 0 {
		var viable []engine.Card
		for _, c := range safe {
			if m.suitCanWin(v, seat, c.Suit) {
				viable = append(viable, c)
			}
		}
		if len(viable) > 0 {
			safe = viable
		}
		return s.fewestKnownPick(m, hand, safe)
	}

	if hasWinner && lastToAct(v) {
		for _, c := range legal {
			if c.Beats(winner) {
				return c
			}
		}
	}
	return legal[0]
}

// seekLoss ducks the trick: the mirror of seekWin, targeting a provably
// lowest remaining card that does not beat the current winner. When
// leading it avoids suits every later opponent is void of (such a lead
// could only be taken by a trump the models rule out). With no safe
// card it sheds the biggest card that still loses, or when forced to
// win, the smallest winning card. Acting last is the exception: the
// trick is certain anyway, so the biggest card goes.
func (s *Strategy) seekLoss(v engine.View, seat int, m *memory, hand, legal []engine.Card) engine.Card {
	_, winner, hasWinner := v.ProvisionalWinner()

	var safe []engine.Card
	for _, c := range legal {
		if !m.isLowestRemaining(v, hand, c) {
			continue
		}
		if hasWinner && c.Beats(winner) {
			continue
		}
		safe = append(safe, c)
	}
	if len(safe) > 0 {
		if !hasWinner {
			var viable []engine.Card
			for _, c := range safe {
				if m.suitCanLose(v, seat, c.Suit) {
					viable = append(viable, c)
				}
			}
			if len(viable) > 0 {
				safe = viable
			}
		}
		return s.fewestKnownPick(m, hand, safe)
	}

	if hasWinner {
		for i := len(legal) - 1; i >= 0; i-- {
			if !legal[i].Beats(winner) {
				return legal[i]
			}
		}
		if lastToAct(v) {
			return legal[len(legal)-1]
		}
		for _, c := range legal {
			if c.Beats(winner) {
				return c
			}
		}
	}
	for _, c := range legal {
		if m.suitCanLose(v, seat, c.Suit) {
			return c
		}
	}
	return legal[0]
}

// fewestKnownPick chooses among candidates the suit the bot can account
// for the fewest cards of, the suit most likely to still be followed,
// breaking ties uniformly at random.
func (s *Strategy) fewestKnownPick(m *memory, hand, cands []engine.Card) engine.Card {
	best := math.MaxInt
	var pool []engine.Card
	for _, c := range cands {
		known := m.knownInSuit(hand, c.Suit)
		switch {
		case known < best:
			best = known
			pool = append(pool[:0], c)
		case known == best:
			pool = append(pool, c)
		}
	}
	return pool[s.rng.Intn(len(pool))]
}

// heldCards returns the seat's remaining cards, lowest first.
func heldCards(v engine.View, seat int) []engine.Card {
	var out []engine.Card
	for _, slot := range v.Hand(seat) {
		if c, ok := slot.Card(); ok {
			out = append(out, c)
		}
	}
	return out
}

// lastToAct reports whether the next card played completes the trick.
func lastToAct(v engine.View) bool {
	trick := v.Trick()
	played := 0
	for _, slot := range trick {
		if slot.HasCard() {
			played++
		}
	}
	return played == len(trick)-1
}
