package bot

import (
	"sort"

	engine "github.com/michal-laska/nazdar-baby/engine"
)

// fakeView is a hand-built engine.View for exercising deductions and
// decisions against exact positions without dealing real games.
type fakeView struct {
	players  int
	deckSize int
	low      engine.Rank
	gameNum  int
	setNum   int
	phase    engine.Phase

	hands     map[int][]engine.Card
	bids      map[int]int
	won       map[int]int
	forbidden map[int]int

	trick      []engine.Card // cards played so far, play order
	trickSeats []int
	history    []engine.TrickRecord
}

func smallDeckView(players int) *fakeView {
	return &fakeView{
		players:   players,
		deckSize:  32,
		low:       7,
		gameNum:   1,
		phase:     engine.PhaseBidding,
		hands:     make(map[int][]engine.Card),
		bids:      make(map[int]int),
		won:       make(map[int]int),
		forbidden: make(map[int]int),
	}
}

func fullDeckView(players int) *fakeView {
	v := smallDeckView(players)
	v.deckSize = 52
	v.low = 2
	return v
}

func (v *fakeView) PlayerCount() int  { return v.players }
func (v *fakeView) DeckSize() int     { return v.deckSize }
func (v *fakeView) CardsPerSuit() int { return v.deckSize / engine.NumSuits }
func (v *fakeView) GameNumber() int   { return v.gameNum }
func (v *fakeView) SetNumber() int    { return v.setNum }

func (v *fakeView) LowestRank() engine.Rank { return v.low }
func (v *fakeView) Phase() engine.Phase     { return v.phase }

func (v *fakeView) HandSize() int {
	max := 0
	for _, h := range v.hands {
		if len(h) > max {
			max = len(h)
		}
	}
	return max
}

func (v *fakeView) TurnOrder() []int {
	order := make([]int, v.players)
	for i := range order {
		order[i] = i
	}
	return order
}

func (v *fakeView) CurrentActor() (int, bool) {
	if v.phase == engine.PhasePlaying && len(v.trick) < len(v.trickSeats) {
		return v.trickSeats[len(v.trick)], true
	}
	return 0, false
}

func (v *fakeView) PlayerAt(seat int) engine.PlayerRef { return engine.PlayerRef{} }

func (v *fakeView) Hand(seat int) []engine.Slot {
	slots := make([]engine.Slot, len(v.hands[seat]))
	for i, c := range v.hands[seat] {
		slots[i] = engine.SlotOf(c)
	}
	return slots
}

func (v *fakeView) Bid(seat int) (int, bool) {
	bid, ok := v.bids[seat]
	return bid, ok
}

func (v *fakeView) TricksWon(seat int) int  { return v.won[seat] }
func (v *fakeView) Points(seat int) float64 { return 0 }

func (v *fakeView) Trick() []engine.Slot {
	if v.trickSeats == nil {
		return nil
	}
	slots := make([]engine.Slot, len(v.trickSeats))
	for i, c := range v.trick {
		slots[i] = engine.SlotOf(c)
	}
	return slots
}

func (v *fakeView) TrickSeats() []int { return v.trickSeats }

func (v *fakeView) ProvisionalWinner() (int, engine.Card, bool) {
	if v.phase != engine.PhasePlaying || len(v.trick) == 0 {
		return 0, engine.Card{}, false
	}
	pos := 0
	for i, c := range v.trick[1:] {
		if c.Beats(v.trick[pos]) {
			pos = i + 1
		}
	}
	return v.trickSeats[pos], v.trick[pos], true
}

func (v *fakeView) LegalCards(seat int) []engine.Card {
	hand := append([]engine.Card(nil), v.hands[seat]...)
	sort.Slice(hand, func(i, j int) bool {
		if hand[i].Rank != hand[j].Rank {
			return hand[i].Rank < hand[j].Rank
		}
		return hand[i].Suit < hand[j].Suit
	})
	if len(v.trick) == 0 {
		return hand
	}
	lead := v.trick[0].Suit
	for _, want := range []engine.Suit{lead, engine.TrumpSuit} {
		var out []engine.Card
		for _, c := range hand {
			if c.Suit == want {
				out = append(out, c)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return hand
}

func (v *fakeView) ForbiddenBid(seat int) (int, bool) {
	bid, ok := v.forbidden[seat]
	return bid, ok
}

func (v *fakeView) TrickHistory() []engine.TrickRecord { return v.history }

var _ engine.View = (*fakeView)(nil)
